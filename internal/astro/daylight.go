package astro

import (
	"errors"
	"math"
	"time"
)

// ElevationSample is the Sun's elevation at one instant.
type ElevationSample struct {
	Time  time.Time
	ElDeg float64
}

// DaylightWindow is the sampled rise-transit-set cycle of the Sun over a
// span of time. Rise and Set are zero when no crossing was found.
type DaylightWindow struct {
	Rise         time.Time
	Transit      time.Time
	Set          time.Time
	MaxElevation float64
	AlwaysUp     bool // never crossed below the rise/set elevation
	AlwaysDown   bool // never crossed above it
}

// HasRise reports whether an upward crossing was found.
func (w DaylightWindow) HasRise() bool { return !w.Rise.IsZero() }

// HasSet reports whether a downward crossing was found.
func (w DaylightWindow) HasSet() bool { return !w.Set.IsZero() }

// ErrInsufficientSamples is returned when a trace is too short to locate
// crossings.
var ErrInsufficientSamples = errors.New("insufficient samples for daylight window")

// SunTrace samples the Sun's elevation from start for span at step intervals.
// Both endpoints are included.
func SunTrace(obs Observer, start time.Time, span, step time.Duration) []ElevationSample {
	if step <= 0 || span < 0 {
		return nil
	}
	n := int(span/step) + 1
	samples := make([]ElevationSample, 0, n)
	for i := 0; i < n; i++ {
		t := start.Add(time.Duration(i) * step)
		samples = append(samples, ElevationSample{Time: t, ElDeg: SunElevation(obs, t)})
	}
	return samples
}

// Daylight samples the 24 hours from start and returns the Sun's first
// rise, transit and first set after that rise.
func Daylight(obs Observer, start time.Time, step time.Duration) (DaylightWindow, error) {
	return FindWindow(SunTrace(obs, start, 24*time.Hour, step))
}

// FindWindow locates rise and set crossings of RiseSetElevation in a
// chronological trace using linear interpolation between samples.
func FindWindow(samples []ElevationSample) (DaylightWindow, error) {
	if len(samples) < 3 {
		return DaylightWindow{}, ErrInsufficientSamples
	}

	minEl, maxEl := 90.0, -90.0
	maxIdx := 0
	for i, s := range samples {
		if s.ElDeg < minEl {
			minEl = s.ElDeg
		}
		if s.ElDeg > maxEl {
			maxEl = s.ElDeg
			maxIdx = i
		}
	}

	transit, transitEl := refinePeak(samples, maxIdx)
	w := DaylightWindow{Transit: transit, MaxElevation: transitEl}

	if minEl > RiseSetElevation {
		w.AlwaysUp = true
		return w, nil
	}
	if maxEl <= RiseSetElevation {
		w.AlwaysDown = true
		return w, nil
	}

	riseIdx := 0
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.ElDeg <= RiseSetElevation && curr.ElDeg > RiseSetElevation {
			w.Rise = interpolateCrossing(prev, curr, RiseSetElevation)
			riseIdx = i
			break
		}
	}

	for i := riseIdx + 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.ElDeg > RiseSetElevation && curr.ElDeg <= RiseSetElevation {
			w.Set = interpolateCrossing(prev, curr, RiseSetElevation)
			break
		}
	}

	return w, nil
}

// refinePeak fits a parabola through the samples around idx.
func refinePeak(samples []ElevationSample, idx int) (time.Time, float64) {
	peak := samples[idx]
	if idx == 0 || idx == len(samples)-1 {
		return peak.Time, peak.ElDeg
	}

	// y = at^2 + bt + c with t = -1, 0, +1
	y0, y1, y2 := samples[idx-1].ElDeg, peak.ElDeg, samples[idx+1].ElDeg
	c := y1
	a := (y0+y2)/2 - c
	b := (y2 - y0) / 2

	if a >= 0 {
		return peak.Time, peak.ElDeg
	}

	tMax := clamp(-b/(2*a), -1, 1)
	dt := peak.Time.Sub(samples[idx-1].Time)
	return peak.Time.Add(time.Duration(float64(dt) * tMax)), a*tMax*tMax + b*tMax + c
}

// interpolateCrossing finds the instant between two samples where the
// elevation equals threshold.
func interpolateCrossing(s1, s2 ElevationSample, threshold float64) time.Time {
	if math.Abs(s2.ElDeg-s1.ElDeg) < 0.0001 {
		return s1.Time
	}

	fraction := clamp((threshold-s1.ElDeg)/(s2.ElDeg-s1.ElDeg), 0, 1)
	dt := s2.Time.Sub(s1.Time)
	return s1.Time.Add(time.Duration(float64(dt) * fraction))
}
