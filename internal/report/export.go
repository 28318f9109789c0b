// Package report renders sunrise results for headless output: JSON exports
// and fixed-width text tables.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/solar"
)

// Event times are zone-local wall clock, so they are exported as "HH:MM"
// rather than as instants with a misleading UTC suffix.

// DayExport is the JSON-serializable representation of one day's result.
type DayExport struct {
	GeneratedAt      time.Time `json:"generated_at"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	TZOffsetHours    float64   `json:"tz_offset_hours"`
	Date             string    `json:"date"`
	Sunrise          string    `json:"sunrise,omitempty"`
	Sunset           string    `json:"sunset,omitempty"`
	SunUpAllDay      bool      `json:"sun_up_all_day"`
	SunDownAllDay    bool      `json:"sun_down_all_day"`
	DayLengthSeconds int64     `json:"day_length_seconds"`
	Instant          string    `json:"instant"`
	Daytime          bool      `json:"daytime"`
	Season           string    `json:"season,omitempty"`
}

// ExportDay converts a result to an exportable format.
func ExportDay(r solar.Result, generatedAt time.Time) *DayExport {
	q := r.Query()
	d := q.Date.UTC()

	export := &DayExport{
		GeneratedAt:      generatedAt,
		Latitude:         q.Lat,
		Longitude:        q.Lon,
		TZOffsetHours:    q.TZOffsetHours,
		Date:             d.Format(time.DateOnly),
		SunUpAllDay:      r.IsSunUp(),
		SunDownAllDay:    r.IsSunDown(),
		DayLengthSeconds: int64(solar.DayLength(r) / time.Second),
		Instant:          d.Format("15:04"),
		Daytime:          r.IsDaytime(),
	}
	if t, ok := r.Sunrise(); ok {
		export.Sunrise = t.Format("15:04")
	}
	if t, ok := r.Sunset(); ok {
		export.Sunset = t.Format("15:04")
	}
	if m, ok := astro.SeasonOn(d.Year(), d.Month(), d.Day()); ok {
		export.Season = m.Season.String()
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *DayExport) WriteJSON(w io.Writer) error {
	return writeJSON(w, e)
}

// YearExport is the JSON-serializable representation of a year series.
type YearExport struct {
	GeneratedAt   time.Time      `json:"generated_at"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	TZOffsetHours float64        `json:"tz_offset_hours"`
	Year          int            `json:"year"`
	Seasons       []SeasonExport `json:"seasons"`
	Days          []DayRow       `json:"days"`
}

// SeasonExport is one solstice or equinox.
type SeasonExport struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// DayRow is one day of a year series.
type DayRow struct {
	Date             string  `json:"date"`
	Sunrise          string  `json:"sunrise,omitempty"`
	Sunset           string  `json:"sunset,omitempty"`
	SunUpAllDay      bool    `json:"sun_up_all_day,omitempty"`
	SunDownAllDay    bool    `json:"sun_down_all_day,omitempty"`
	DayLengthSeconds int64   `json:"day_length_seconds"`
	Noon             float64 `json:"noon_fraction"`
}

// ExportYear converts a year series to an exportable format. The query
// fields are taken from the first day.
func ExportYear(days []solar.Day, markers []astro.SeasonMarker, generatedAt time.Time) *YearExport {
	export := &YearExport{GeneratedAt: generatedAt}
	if len(days) == 0 {
		return export
	}

	q := days[0].Result.Query()
	export.Latitude = q.Lat
	export.Longitude = q.Lon
	export.TZOffsetHours = q.TZOffsetHours
	export.Year = days[0].Date.Year()

	for _, m := range markers {
		export.Seasons = append(export.Seasons, SeasonExport{
			Name: m.Season.String(),
			Date: m.Time().Format(time.DateOnly),
		})
	}

	export.Days = make([]DayRow, 0, len(days))
	for _, d := range days {
		row := DayRow{
			Date:             d.Result.Query().Date.UTC().Format(time.DateOnly),
			SunUpAllDay:      d.Result.IsSunUp(),
			SunDownAllDay:    d.Result.IsSunDown(),
			DayLengthSeconds: int64(d.Length / time.Second),
			Noon:             d.NoonFraction,
		}
		if t, ok := d.Result.Sunrise(); ok {
			row.Sunrise = t.Format("15:04")
		}
		if t, ok := d.Result.Sunset(); ok {
			row.Sunset = t.Format("15:04")
		}
		export.Days = append(export.Days, row)
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *YearExport) WriteJSON(w io.Writer) error {
	return writeJSON(w, e)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
