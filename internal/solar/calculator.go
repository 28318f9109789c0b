package solar

import (
	"math"
	"time"
)

// Query is the input to Compute.
//
// Lon is east-positive, as reported by GPS and geolocation APIs, in either
// [0, 360) or (-180, 180]; the two forms give identical results because the
// longitude is reduced to a fraction of a circle. TZOffsetHours is hours east
// of Greenwich (EST is -5). Internally the engine negates the zone exactly
// once to match the west-positive convention of the SUNUP.BAS equations; do
// not pre-negate it.
//
// Only the UTC year, month and day of Date are used to compute events. The
// full instant is kept for Result.IsDaytime.
type Query struct {
	Lat           float64
	Lon           float64
	Date          time.Time
	TZOffsetHours float64
}

// Compute runs the sunrise/sunset search for q. Inputs are not range
// checked; out-of-range values yield meaningless or NaN-derived results but
// never panic. Compute is pure and safe for concurrent use.
func Compute(q Query) Result {
	d := q.Date.UTC()
	year, month, day := d.Year(), int(d.Month()), d.Day()

	zone := -(q.TZOffsetHours / 24)
	lon := q.Lon / 360

	jd := julianDay(year, month, day)

	t := jd - j2000 + 0.5
	tt := t/daysPerCentury + 1 // centuries since 1900
	lst0 := localSiderealTime(t, zone, lon)
	t += zone

	start := sunAt(t, tt)
	end := sunAt(t+1, tt)
	if end.ra < start.ra {
		end.ra += twoPi
	}

	scan := newHorizon(q.Lat).scan(start, end, lst0)

	res := Result{query: q}
	switch {
	case scan.hasRise || scan.hasSet:
	case scan.lastAltitude < 0:
		res.sunDownAllDay = true
	default:
		res.sunUpAllDay = true
	}

	if scan.hasRise {
		res.sunrise = eventTime(year, month, day, scan.rise)
		res.hasSunrise = true
	}
	if scan.hasSet {
		res.sunset = eventTime(year, month, day, scan.set)
		res.hasSunset = true
	}

	return res
}

// eventTime builds the instant of an event. The clock fields hold zone-local
// wall time but the instant is labelled UTC, so callers compare results
// against query instants expressed the same way.
func eventTime(year, month, day int, c crossing) time.Time {
	return time.Date(year, time.Month(month), day, c.hour, c.minute, 0, 0, time.UTC)
}

// ClampCoordinates limits latitude to [-90, 90] and longitude to
// [-180, 180]. Compute itself never clamps; this is for callers that take
// free-form input.
func ClampCoordinates(lat, lon float64) (float64, float64) {
	return math.Max(-90, math.Min(90, lat)), math.Max(-180, math.Min(180, lon))
}
