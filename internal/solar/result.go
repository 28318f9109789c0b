package solar

import "time"

// Result holds the events computed for one Query. The zero sunrise or
// sunset time means the event did not occur; use Sunrise / Sunset or the
// Is* accessors rather than testing for zero.
//
// SunUpAllDay and SunDownAllDay are only ever set when neither event
// occurred, and never together.
type Result struct {
	query Query

	sunrise    time.Time
	sunset     time.Time
	hasSunrise bool
	hasSunset  bool

	sunUpAllDay   bool
	sunDownAllDay bool
}

// Query returns the query the result was computed for.
func (r Result) Query() Query { return r.query }

// Sunrise returns the sunrise instant and whether there was one.
func (r Result) Sunrise() (time.Time, bool) {
	if !r.hasSunrise {
		return time.Time{}, false
	}
	return r.sunrise, true
}

// Sunset returns the sunset instant and whether there was one.
func (r Result) Sunset() (time.Time, bool) {
	if !r.hasSunset {
		return time.Time{}, false
	}
	return r.sunset, true
}

// IsSunrise reports whether the Sun rose on the query date.
func (r Result) IsSunrise() bool { return r.hasSunrise }

// IsSunset reports whether the Sun set on the query date.
func (r Result) IsSunset() bool { return r.hasSunset }

// IsSunUp reports whether the Sun stayed up all day (polar day).
func (r Result) IsSunUp() bool { return r.sunUpAllDay }

// IsSunDown reports whether the Sun stayed down all day (polar night).
func (r Result) IsSunDown() bool { return r.sunDownAllDay }

// IsDaytime reports whether the query instant itself falls in daytime.
func (r Result) IsDaytime() bool {
	return r.IsDaytimeAt(r.query.Date)
}

// IsDaytimeAt reports whether t falls between sunrise (inclusive) and sunset
// (exclusive). t must use the same zone-local-as-UTC convention as the event
// instants.
//
// When sunset comes before sunrise within the day, which happens when the
// zone offset is far from the longitude's solar time, daytime wraps across
// midnight and the test becomes t >= sunrise OR t < sunset.
func (r Result) IsDaytimeAt(t time.Time) bool {
	switch {
	case r.hasSunrise && r.hasSunset:
		afterRise := !t.Before(r.sunrise)
		beforeSet := t.Before(r.sunset)
		if r.sunrise.Before(r.sunset) {
			return afterRise && beforeSet
		}
		return afterRise || beforeSet
	case r.sunUpAllDay:
		return true
	case r.sunDownAllDay:
		return false
	case r.hasSunrise:
		return !t.Before(r.sunrise)
	case r.hasSunset:
		return t.Before(r.sunset)
	default:
		return false
	}
}

// WithInstant returns a copy of r whose query instant is t. The events are
// unchanged; only IsDaytime is affected.
func (r Result) WithInstant(t time.Time) Result {
	r.query.Date = t
	return r
}
