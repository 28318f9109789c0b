package solar

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2024, 5, 10, h, m, 0, 0, time.UTC)
}

func TestResult_IsDaytimeAt(t *testing.T) {
	normal := Result{sunrise: at(6, 0), sunset: at(18, 0), hasSunrise: true, hasSunset: true}
	wrapped := Result{sunrise: at(18, 0), sunset: at(6, 0), hasSunrise: true, hasSunset: true}
	equal := Result{sunrise: at(9, 0), sunset: at(9, 0), hasSunrise: true, hasSunset: true}
	riseOnly := Result{sunrise: at(1, 30), hasSunrise: true}
	setOnly := Result{sunset: at(22, 45), hasSunset: true}
	up := Result{sunUpAllDay: true}
	down := Result{sunDownAllDay: true}
	none := Result{}

	tests := []struct {
		name string
		r    Result
		t    time.Time
		want bool
	}{
		{"normal: before sunrise", normal, at(5, 59), false},
		{"normal: at sunrise", normal, at(6, 0), true},
		{"normal: midday", normal, at(12, 0), true},
		{"normal: just before sunset", normal, at(17, 59), true},
		{"normal: at sunset", normal, at(18, 0), false},
		{"normal: late evening", normal, at(23, 0), false},

		{"wrapped: after sunrise", wrapped, at(20, 0), true},
		{"wrapped: at sunrise", wrapped, at(18, 0), true},
		{"wrapped: early morning", wrapped, at(3, 0), true},
		{"wrapped: at sunset", wrapped, at(6, 0), false},
		{"wrapped: midday", wrapped, at(12, 0), false},

		// rise == set falls into the OR branch: everything but none is day.
		{"equal events: at event", equal, at(9, 0), true},
		{"equal events: before", equal, at(8, 0), true},

		{"rise only: before", riseOnly, at(1, 0), false},
		{"rise only: at", riseOnly, at(1, 30), true},
		{"rise only: after", riseOnly, at(23, 0), true},

		{"set only: before", setOnly, at(10, 0), true},
		{"set only: at", setOnly, at(22, 45), false},

		{"sun up all day", up, at(0, 0), true},
		{"sun down all day", down, at(12, 0), false},
		{"no classification", none, at(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsDaytimeAt(tt.t); got != tt.want {
				t.Errorf("IsDaytimeAt(%s) = %v, want %v", tt.t.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestResult_Accessors(t *testing.T) {
	r := Result{sunrise: at(6, 0), hasSunrise: true}

	if got, ok := r.Sunrise(); !ok || !got.Equal(at(6, 0)) {
		t.Errorf("Sunrise() = %v, %v", got, ok)
	}
	if got, ok := r.Sunset(); ok || !got.IsZero() {
		t.Errorf("Sunset() = %v, %v, want zero, false", got, ok)
	}
	if !r.IsSunrise() || r.IsSunset() || r.IsSunUp() || r.IsSunDown() {
		t.Errorf("flags = rise:%v set:%v up:%v down:%v",
			r.IsSunrise(), r.IsSunset(), r.IsSunUp(), r.IsSunDown())
	}
}

func TestResult_WithInstant(t *testing.T) {
	r := Compute(Query{Lat: 48.85, Lon: 2.35, Date: time.Date(2024, 8, 1, 3, 0, 0, 0, time.UTC), TZOffsetHours: 2})
	if r.IsDaytime() {
		t.Fatal("03:00 in Paris should be night")
	}

	noon := r.WithInstant(time.Date(2024, 8, 1, 13, 0, 0, 0, time.UTC))
	if !noon.IsDaytime() {
		t.Error("13:00 in Paris should be daytime")
	}

	a, _ := r.Sunrise()
	b, _ := noon.Sunrise()
	if !a.Equal(b) {
		t.Error("WithInstant changed the events")
	}
	if !r.Query().Date.Equal(time.Date(2024, 8, 1, 3, 0, 0, 0, time.UTC)) {
		t.Error("WithInstant modified the receiver")
	}
}
