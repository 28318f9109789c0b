package astro

import (
	"math"
	"time"
)

// RiseSetElevation is the Sun's apparent center elevation at sunrise and
// sunset, matching the 90.833° zenith used by the sunrise engine.
const RiseSetElevation = -0.833

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac,
// good to ~0.01° which is far below what the rise/set threshold needs.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	jd := julianDate(t)

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// Apparent longitude (aberration and nutation)
	omega := 125.04 - 1934.136*T
	lambda := degToRad(L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega)))

	// Obliquity of the ecliptic, corrected
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := degToRad(eps0 + 0.00256*math.Cos(degToRad(omega)))

	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda))
	raDeg = normalizeAngle360(radToDeg(ra))
	decDeg = radToDeg(math.Asin(math.Sin(eps) * math.Sin(lambda)))

	return raDeg, decDeg
}

// SunHorizontal returns the Sun's azimuth and elevation for obs at t.
func SunHorizontal(obs Observer, t time.Time) Horizontal {
	ra, dec := SunPosition(t)
	return ToHorizontal(ra, dec, obs, t)
}

// SunElevation returns the Sun's elevation in degrees for obs at t.
func SunElevation(obs Observer, t time.Time) float64 {
	return SunHorizontal(obs, t).ElDeg
}

// IsSunAboveHorizon reports whether the Sun is above the rise/set elevation.
func IsSunAboveHorizon(obs Observer, t time.Time) bool {
	return SunElevation(obs, t) > RiseSetElevation
}

// ElevationTier categorizes Sun elevation for display.
type ElevationTier int

const (
	ElevationNight    ElevationTier = iota // below -18°
	ElevationTwilight                      // -18° to rise/set
	ElevationLow                           // up to 15°
	ElevationHigh                          // 15° and above
)

// GetElevationTier returns the tier for a Sun elevation.
func GetElevationTier(elDeg float64) ElevationTier {
	switch {
	case elDeg < -18:
		return ElevationNight
	case elDeg <= RiseSetElevation:
		return ElevationTwilight
	case elDeg < 15:
		return ElevationLow
	default:
		return ElevationHigh
	}
}

func (t ElevationTier) String() string {
	switch t {
	case ElevationNight:
		return "night"
	case ElevationTwilight:
		return "twilight"
	case ElevationLow:
		return "low sun"
	case ElevationHigh:
		return "high sun"
	default:
		return "unknown"
	}
}
