// Package reference cross-checks the sunrise engine against the NOAA
// algorithm implemented by github.com/nathan-osman/go-sunrise.
package reference

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/litescript/ls-daylight/internal/solar"
)

// EventDelta pairs one event from the engine with the reference value.
// Reference is shifted into the query's zone so both carry local wall-clock
// time.
type EventDelta struct {
	Engine       time.Time
	Reference    time.Time
	HasEngine    bool
	HasReference bool
	Delta        time.Duration // Engine - Reference, wrapped into (-12h, 12h]
}

// Comparable reports whether both sides produced the event.
func (d EventDelta) Comparable() bool {
	return d.HasEngine && d.HasReference
}

// Comparison is the result of Compare.
type Comparison struct {
	Query   solar.Query
	Result  solar.Result
	Sunrise EventDelta
	Sunset  EventDelta
}

// MaxDelta returns the larger absolute delta of the comparable events.
func (c Comparison) MaxDelta() time.Duration {
	var m time.Duration
	for _, d := range []EventDelta{c.Sunrise, c.Sunset} {
		if !d.Comparable() {
			continue
		}
		if a := abs(d.Delta); a > m {
			m = a
		}
	}
	return m
}

// Agrees reports whether every comparable event is within tol and both
// sides agree on which events exist.
func (c Comparison) Agrees(tol time.Duration) bool {
	if c.Sunrise.HasEngine != c.Sunrise.HasReference || c.Sunset.HasEngine != c.Sunset.HasReference {
		return false
	}
	return c.MaxDelta() <= tol
}

// Compare computes q with the engine and with go-sunrise.
func Compare(q solar.Query) Comparison {
	return CompareResult(solar.Compute(q))
}

// CompareResult compares an already computed result with go-sunrise.
func CompareResult(r solar.Result) Comparison {
	q := r.Query()
	d := q.Date.UTC()
	rise, set := sunrise.SunriseSunset(q.Lat, q.Lon, d.Year(), d.Month(), d.Day())

	shift := time.Duration(q.TZOffsetHours * float64(time.Hour))
	c := Comparison{Query: q, Result: r}
	c.Sunrise = pair(r.Sunrise, rise, shift)
	c.Sunset = pair(r.Sunset, set, shift)
	return c
}

func pair(engine func() (time.Time, bool), ref time.Time, shift time.Duration) EventDelta {
	e, ok := engine()
	d := EventDelta{Engine: e, HasEngine: ok}
	// go-sunrise reports polar days and nights as zero times.
	if !ref.IsZero() {
		d.Reference = ref.Add(shift)
		d.HasReference = true
	}
	if d.Comparable() {
		d.Delta = wrap(d.Engine.Sub(d.Reference))
	}
	return d
}

// wrap folds a delta into (-12h, 12h] so events landing on neighbouring
// civil dates still compare by time of day.
func wrap(d time.Duration) time.Duration {
	const day = 24 * time.Hour
	d %= day
	if d > day/2 {
		d -= day
	} else if d <= -day/2 {
		d += day
	}
	return d
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
