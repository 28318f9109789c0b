package solar

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"cloudeng.io/datetime"
	"golang.org/x/sync/errgroup"
)

// Day is one day of a year series. The fractions locate events on a 24 hour
// dial in zone-local time: 0 is local midnight, 0.5 local noon. A missing
// sunrise or sunset is placed at 1.
type Day struct {
	Date   datetime.CalendarDate
	Result Result

	RiseFraction float64
	SetFraction  float64
	NoonFraction float64
	Length       time.Duration
}

// YearOptions configures ComputeYear.
type YearOptions struct {
	Lat           float64
	Lon           float64
	Year          int
	TZOffsetHours float64

	// Workers bounds concurrent computations; <= 0 uses GOMAXPROCS.
	Workers int

	// Cache is optional.
	Cache *Cache
}

// ComputeYear computes every day of a calendar year. Days are independent so
// they are computed concurrently; the returned slice is in date order.
func ComputeYear(ctx context.Context, opts YearOptions) ([]Day, error) {
	first := time.Date(opts.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(1, 0, 0).Sub(first).Hours() / 24
	days := make([]Day, int(n))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	compute := Compute
	if opts.Cache != nil {
		compute = opts.Cache.Compute
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range days {
		date := first.AddDate(0, 0, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("compute %s: %w", date.Format(time.DateOnly), err)
			}
			res := compute(Query{
				Lat:           opts.Lat,
				Lon:           opts.Lon,
				Date:          date,
				TZOffsetHours: opts.TZOffsetHours,
			})
			days[i] = NewDay(res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return days, nil
}

// NewDay derives the dial fractions and day length for a result.
func NewDay(r Result) Day {
	q := r.Query()
	d := q.Date.UTC()
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	riseAt, hasRise := r.Sunrise()
	setAt, hasSet := r.Sunset()
	rise := dialFraction(riseAt, hasRise, midnight)
	set := dialFraction(setAt, hasSet, midnight)

	return Day{
		Date:         datetime.NewCalendarDate(d.Year(), datetime.Month(d.Month()), d.Day()),
		Result:       r,
		RiseFraction: rise,
		SetFraction:  set,
		NoonFraction: ApparentNoon(rise, set),
		Length:       DayLength(r),
	}
}

// dialFraction returns the event offset from local midnight as a fraction
// of a day in [0, 1), or 1 when the event is absent. Event instants already
// carry zone-local clock time so no offset is applied. A 24:00 event wraps
// to 0.
func dialFraction(t time.Time, ok bool, midnight time.Time) float64 {
	if !ok {
		return 1
	}
	return frac(t.Sub(midnight).Hours() / 24)
}

// ApparentNoon returns the midpoint of the rise and set fractions, wrapping
// across midnight when set precedes rise.
func ApparentNoon(rise, set float64) float64 {
	noon := rise + (set-rise)/2
	if set < rise {
		noon = rise + (set+1-rise)/2
	}
	if noon > 1 {
		noon -= 1
	}
	return noon
}

// DayLength returns how long the Sun is up on the result's day.
func DayLength(r Result) time.Duration {
	rise, hasRise := r.Sunrise()
	set, hasSet := r.Sunset()

	switch {
	case hasRise && hasSet:
		d := set.Sub(rise)
		if d < 0 {
			d += 24 * time.Hour
		}
		return d
	case r.IsSunUp():
		return 24 * time.Hour
	case r.IsSunDown():
		return 0
	case hasRise:
		return endOfDay(rise).Sub(rise)
	case hasSet:
		return set.Sub(startOfDay(set))
	default:
		return 0
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24 * time.Hour)
}
