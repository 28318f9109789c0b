package solar

import "math"

// ZenithDegrees is the rise/set zenith angle. The extra 0.833° over the
// geometric horizon accounts for refraction and the Sun's apparent radius.
const ZenithDegrees = 90.833

// hourNudge is added before truncating an event to whole minutes.
const hourNudge = 1.0 / 120.0

// hourAngleStep is the sidereal hour angle swept in one solar hour, radians.
const hourAngleStep = 15 * siderealPerSolar * math.Pi / 180

// crossing is a horizon crossing found during the hourly scan.
type crossing struct {
	hour   int
	minute int
}

// scanResult is the outcome of a full 24 hour horizon scan.
type scanResult struct {
	rise, set       crossing
	hasRise, hasSet bool

	// lastAltitude is the threshold function at the end of the final hour.
	lastAltitude float64
}

// horizon evaluates the rise/set threshold function for one observer.
type horizon struct {
	sinLat float64
	cosLat float64
	cosZen float64
}

func newHorizon(latDeg float64) horizon {
	lat := latDeg * math.Pi / 180
	return horizon{
		sinLat: math.Sin(lat),
		cosLat: math.Cos(lat),
		cosZen: math.Cos(math.Pi * ZenithDegrees / 180),
	}
}

// altitude returns the threshold function: positive above the rise/set
// altitude, negative below.
func (h horizon) altitude(hourAngle, dec float64) float64 {
	return h.sinLat*math.Sin(dec) + h.cosLat*math.Cos(dec)*math.Cos(hourAngle) - h.cosZen
}

// scan walks the day hour by hour looking for horizon crossings. start and
// end are the Sun's positions at 0h and 24h zone time, with end.ra already
// unwrapped past start.ra. lst0 is the local sidereal time at 0h.
func (h horizon) scan(start, end equatorial, lst0 float64) scanResult {
	var res scanResult

	dRA := end.ra - start.ra
	dDec := end.dec - start.dec
	k1 := hourAngleStep

	prev := start
	var v0, v2 float64

	for hr := 0; hr < 24; hr++ {
		c0 := float64(hr)
		p := (c0 + 1) / 24

		next := equatorial{
			ra:  start.ra + p*dRA,
			dec: start.dec + p*dDec,
		}

		l0 := lst0 + c0*k1
		l2 := l0 + k1
		h0 := l0 - prev.ra
		h2 := l2 - next.ra
		h1 := (h2 + h0) / 2
		d1 := (next.dec + prev.dec) / 2

		if hr == 0 {
			v0 = h.altitude(h0, prev.dec)
		} else {
			v0 = v2
		}
		v2 = h.altitude(h2, next.dec)

		if sameSide(v0, v2) {
			prev = next
			continue
		}

		v1 := h.altitude(h1, d1)

		e, ok := quadraticRoot(v0, v1, v2)
		if !ok {
			prev = next
			continue
		}

		if v0 < 0 && v2 > 0 {
			res.rise = toClock(c0 + e)
			res.hasRise = true
		}
		if v0 > 0 && v2 < 0 {
			res.set = toClock(c0 + e)
			res.hasSet = true
		}

		prev = next
	}

	res.lastAltitude = v2
	return res
}

// sameSide reports whether v0 and v2 lie on the same side of the threshold.
// Zero counts as above, so an hour that starts or ends exactly on the
// threshold is never classified as a rise or a set.
func sameSide(v0, v2 float64) bool {
	return (v0 >= 0 && v2 >= 0) || (v0 < 0 && v2 < 0)
}

// quadraticRoot fits a parabola through (0,v0), (0.5,v1), (1,v2) and returns
// the fraction of the hour at which it crosses zero. ok is false when the
// discriminant is negative.
func quadraticRoot(v0, v1, v2 float64) (e float64, ok bool) {
	a := 2*v2 - 4*v1 + 2*v0
	b := 4*v1 - 3*v0 - v2
	disc := b*b - 4*a*v0
	if disc < 0 {
		return 0, false
	}
	disc = math.Sqrt(disc)

	e = (disc - b) / (2 * a)
	if e > 1 || e < 0 {
		e = (-disc - b) / (2 * a)
	}
	return e, true
}

// toClock converts fractional hours into whole hours and minutes, nudged by
// half a minute before truncation.
func toClock(hours float64) crossing {
	t := hours + hourNudge
	hr := math.Floor(t)
	mins := math.Floor((t - hr) * 60)
	return crossing{hour: int(hr), minute: int(mins)}
}
