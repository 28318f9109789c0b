// Package astro provides instantaneous Sun geometry for an observer: apparent
// position, horizontal coordinates, a sampled daylight window and the dates
// of the solstices and equinoxes.
package astro

import (
	"math"
	"time"
)

// Observer is a ground location.
type Observer struct {
	LatDeg float64 // north positive
	LonDeg float64 // east positive
	Name   string
}

// Horizontal holds observer-relative coordinates.
type Horizontal struct {
	AzDeg float64 // 0=N, 90=E, 180=S, 270=W
	ElDeg float64 // 0=horizon, 90=zenith
}

// ToHorizontal converts an equatorial position (degrees) into azimuth and
// elevation for obs at t.
func ToHorizontal(raDeg, decDeg float64, obs Observer, t time.Time) Horizontal {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(decDeg)

	// Hour angle = LST - RA
	ha := degToRad(localSiderealTime(t, obs.LonDeg) - raDeg)

	sinEl := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	el := math.Asin(clamp(sinEl, -1, 1))

	cosAz := (math.Sin(dec) - math.Sin(el)*math.Sin(lat)) / (math.Cos(el) * math.Cos(lat))
	az := math.Acos(clamp(cosAz, -1, 1))

	// West of the meridian
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{AzDeg: radToDeg(az), ElDeg: radToDeg(el)}
}

// localSiderealTime returns LST in degrees [0, 360).
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime returns GMST in degrees (IAU 1982).
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// julianDate returns the Julian Date of t including the time of day.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January and February count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
