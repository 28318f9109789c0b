package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/reference"
	"github.com/litescript/ls-daylight/internal/solar"
)

const ruleWidth = 60

// FormatClock formats an event as HH:MM, or "--:--" when absent.
func FormatClock(t time.Time, ok bool) string {
	if !ok {
		return "--:--"
	}
	return t.Format("15:04")
}

// FormatDuration formats a day length as hours and zero-padded minutes.
func FormatDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if neg {
		return fmt.Sprintf("-%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// FormatDelta formats a signed offset as "+1m30s" style text.
func FormatDelta(d time.Duration) string {
	if d >= 0 {
		return "+" + d.Round(time.Second).String()
	}
	return d.Round(time.Second).String()
}

// Status describes the day's polar state or "normal".
func Status(r solar.Result) string {
	switch {
	case r.IsSunUp():
		return "sun up all day"
	case r.IsSunDown():
		return "sun down all day"
	case r.IsSunrise() && r.IsSunset():
		return "normal"
	case r.IsSunrise():
		return "rise only"
	case r.IsSunset():
		return "set only"
	default:
		return "no events"
	}
}

// WriteDayTable writes a one-day summary to w.
func WriteDayTable(w io.Writer, r solar.Result) {
	q := r.Query()
	d := q.Date.UTC()

	fmt.Fprintf(w, "Sun @ %s  lat %.4f  lon %.4f  tz %+.1f\n", d.Format(time.DateOnly), q.Lat, q.Lon, q.TZOffsetHours)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	rise, hasRise := r.Sunrise()
	set, hasSet := r.Sunset()
	fmt.Fprintf(w, "%-12s %s\n", "Sunrise", FormatClock(rise, hasRise))
	fmt.Fprintf(w, "%-12s %s\n", "Sunset", FormatClock(set, hasSet))
	fmt.Fprintf(w, "%-12s %s\n", "Day length", FormatDuration(solar.DayLength(r)))
	fmt.Fprintf(w, "%-12s %s\n", "Status", Status(r))
	fmt.Fprintf(w, "%-12s %s at %s\n", "Daytime", yesNo(r.IsDaytime()), d.Format("15:04"))

	if m, ok := astro.SeasonOn(d.Year(), d.Month(), d.Day()); ok {
		fmt.Fprintf(w, "%-12s %s\n", "Season", m.Season)
	}
}

// WriteYearTable writes one row per day with season markers annotated.
func WriteYearTable(w io.Writer, days []solar.Day, markers []astro.SeasonMarker) {
	if len(days) == 0 {
		fmt.Fprintln(w, "No days")
		return
	}

	q := days[0].Result.Query()
	fmt.Fprintf(w, "Year %d  lat %.4f  lon %.4f  tz %+.1f\n", days[0].Date.Year(), q.Lat, q.Lon, q.TZOffsetHours)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "%-10s  %-5s  %-5s  %-7s  %s\n", "Date", "Rise", "Set", "Length", "Note")
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	seasons := make(map[string]astro.Season, len(markers))
	for _, m := range markers {
		seasons[m.Time().Format(time.DateOnly)] = m.Season
	}

	var total time.Duration
	for _, d := range days {
		date := d.Result.Query().Date.UTC().Format(time.DateOnly)
		rise, hasRise := d.Result.Sunrise()
		set, hasSet := d.Result.Sunset()

		var note string
		if !(hasRise && hasSet) {
			note = Status(d.Result)
		}
		if s, ok := seasons[date]; ok {
			if note != "" {
				note += ", "
			}
			note += s.String()
		}

		fmt.Fprintf(w, "%-10s  %-5s  %-5s  %7s  %s\n",
			date, FormatClock(rise, hasRise), FormatClock(set, hasSet), FormatDuration(d.Length), note)
		total += d.Length
	}

	fmt.Fprintf(w, "\nTotal: %d days, mean day length %s\n", len(days), FormatDuration(total/time.Duration(len(days))))
}

// WriteComparison writes the engine and reference events side by side.
func WriteComparison(w io.Writer, c reference.Comparison) {
	d := c.Query.Date.UTC()
	fmt.Fprintf(w, "Reference check @ %s  lat %.4f  lon %.4f  tz %+.1f\n", d.Format(time.DateOnly), c.Query.Lat, c.Query.Lon, c.Query.TZOffsetHours)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "%-8s  %-7s  %-9s  %s\n", "Event", "Engine", "Reference", "Delta")
	writeDelta(w, "Sunrise", c.Sunrise)
	writeDelta(w, "Sunset", c.Sunset)
}

func writeDelta(w io.Writer, name string, d reference.EventDelta) {
	delta := "n/a"
	if d.Comparable() {
		delta = FormatDelta(d.Delta)
	}
	fmt.Fprintf(w, "%-8s  %-7s  %-9s  %s\n", name,
		FormatClock(d.Engine, d.HasEngine), FormatClock(d.Reference, d.HasReference), delta)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
