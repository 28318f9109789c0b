package astro

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// Season identifies one of the four solstice/equinox events of a year.
type Season int

const (
	MarchEquinox Season = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

func (s Season) String() string {
	switch s {
	case MarchEquinox:
		return "March equinox"
	case JuneSolstice:
		return "June solstice"
	case SeptemberEquinox:
		return "September equinox"
	case DecemberSolstice:
		return "December solstice"
	default:
		return "unknown"
	}
}

// SeasonMarker is the calendar date of a solstice or equinox.
type SeasonMarker struct {
	Season Season
	Date   datetime.CalendarDate
}

// Time returns the marker's date at 00:00 UTC.
func (m SeasonMarker) Time() time.Time {
	return time.Date(m.Date.Year(), time.Month(m.Date.Month()), m.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// Seasons returns the equinoxes and solstices of year in calendar order.
// Dates are in dynamical time, which differs from UTC by about a minute.
func Seasons(year int) []SeasonMarker {
	return []SeasonMarker{
		{MarchEquinox, jdeToCalendar(solstice.March(year))},
		{JuneSolstice, jdeToCalendar(solstice.June(year))},
		{SeptemberEquinox, jdeToCalendar(solstice.September(year))},
		{DecemberSolstice, jdeToCalendar(solstice.December(year))},
	}
}

// SeasonOn returns the marker falling on the given civil date, if any.
func SeasonOn(year int, month time.Month, day int) (SeasonMarker, bool) {
	for _, m := range Seasons(year) {
		if time.Month(m.Date.Month()) == month && m.Date.Day() == day {
			return m, true
		}
	}
	return SeasonMarker{}, false
}

func jdeToCalendar(jde float64) datetime.CalendarDate {
	y, m, d := julian.JDToCalendar(jde)
	return datetime.NewCalendarDate(y, datetime.Month(m), int(d))
}
