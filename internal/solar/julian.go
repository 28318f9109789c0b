// Package solar computes sunrise, sunset and day/night classification for a
// location, calendar date and fixed time-zone offset.
//
// The engine follows the SUNUP.BAS horizon-crossing method (Sinnott, Sky &
// Telescope, August 1994): the Sun's position is sampled at the start and end
// of the day, interpolated hour by hour, and each hour in which the altitude
// crosses the rise/set threshold is refined with a quadratic fit.
package solar

import "math"

// gregorianStartYear is the first full year of the Gregorian calendar used by
// the day-number correction.
const gregorianStartYear = 1583

// julianDay returns the Julian day number of a civil date less one, i.e. the
// Julian date of 0h minus one half. Callers add 0.5 to get days since 0h.
func julianDay(year, month, day int) float64 {
	y := float64(year)
	m := float64(month)
	d := float64(day)

	j := -math.Floor(7*(math.Floor((m+9)/12)+y)/4) +
		math.Floor(m*275/9) +
		d +
		1721027 +
		y*367

	if year >= gregorianStartYear {
		sign := 1.0
		if m-9 < 0 {
			sign = -1
		}
		a := math.Abs(m - 9)
		j3 := -math.Floor((math.Floor(math.Floor(y+sign*math.Floor(a/7))/100) + 1) * 0.75)
		j += j3 + 2
	}

	return math.Floor(j) - 1
}

// frac returns the fractional part of x in [0, 1).
func frac(x float64) float64 {
	return x - math.Floor(x)
}
