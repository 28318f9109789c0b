package solar

import "math"

// Epoch and rate constants for the low-order solar series.
const (
	j2000            = 2451545.0
	daysPerCentury   = 36525.0
	secondsPerDay    = 86400.0
	twoPi            = 2 * math.Pi
	siderealPerSolar = 1.0027379
)

// equatorial is an apparent right ascension / declination pair in radians.
type equatorial struct {
	ra  float64
	dec float64
}

// sunAt returns the Sun's apparent equatorial position t days after J2000.0
// (0h zone time). tt is the number of Julian centuries since 1900.
func sunAt(t, tt float64) equatorial {
	// Mean longitude and mean anomaly, as fractions of a revolution.
	l := frac(0.779072+0.00273790931*t) * twoPi
	g := frac(0.993126+0.0027377785*t) * twoPi

	v := 0.39785*math.Sin(l) -
		0.01000*math.Sin(l-g) +
		0.00333*math.Sin(l+g) -
		0.00021*math.Sin(l)*tt

	u := 1 -
		0.03349*math.Cos(g) -
		0.00014*math.Cos(2*l) +
		0.00008*math.Cos(l)

	w := -0.00010 -
		0.04129*math.Sin(2*l) +
		0.03211*math.Sin(g) -
		0.00104*math.Sin(2*l-g) -
		0.00035*math.Sin(2*l+g) -
		0.00008*math.Sin(g)*tt

	s := w / math.Sqrt(u-v*v)
	ra := l + math.Atan(s/math.Sqrt(1-s*s))

	s = v / math.Sqrt(u)
	dec := math.Atan(s / math.Sqrt(1-s*s))

	return equatorial{ra: ra, dec: dec}
}

// localSiderealTime returns the local sidereal time in radians at 0h zone
// time. zone and lon are fractions of a day and of a circle respectively.
func localSiderealTime(t, zone, lon float64) float64 {
	t0 := (t*8640184.813/daysPerCentury +
		24110.5 +
		zone*86636.6 +
		lon*secondsPerDay) / secondsPerDay
	return frac(t0) * twoPi
}
