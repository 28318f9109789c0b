package reference

import (
	"testing"
	"time"

	"github.com/litescript/ls-daylight/internal/solar"
)

func TestCompare_Agreement(t *testing.T) {
	tests := []struct {
		name string
		q    solar.Query
	}{
		{"New York new year", solar.Query{Lat: 40.7128, Lon: -74.006, Date: day(2024, 1, 1), TZOffsetHours: -5}},
		{"London midsummer", solar.Query{Lat: 51.5074, Lon: -0.1278, Date: day(2024, 6, 21), TZOffsetHours: 1}},
		{"Sydney December", solar.Query{Lat: -33.8688, Lon: 151.2093, Date: day(2024, 12, 1), TZOffsetHours: 11}},
		{"Tokyo equinox", solar.Query{Lat: 35.6762, Lon: 139.6503, Date: day(2024, 3, 20), TZOffsetHours: 9}},
		{"Null Island", solar.Query{Lat: 0, Lon: 0, Date: day(2024, 9, 22)}},
		{"Quito", solar.Query{Lat: -0.1807, Lon: -78.4678, Date: day(2024, 7, 4), TZOffsetHours: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(tt.q)
			if !c.Sunrise.Comparable() || !c.Sunset.Comparable() {
				t.Fatalf("expected both events on both sides: %+v", c)
			}
			if !c.Agrees(5 * time.Minute) {
				t.Errorf("sunrise delta %v, sunset delta %v, want within 5m", c.Sunrise.Delta, c.Sunset.Delta)
			}
		})
	}
}

func TestCompare_Polar(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"midnight sun", day(2024, 6, 21)},
		{"polar night", day(2024, 12, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(solar.Query{Lat: 75, Lon: 0, Date: tt.date})
			if c.Sunrise.HasEngine || c.Sunrise.HasReference || c.Sunset.HasEngine || c.Sunset.HasReference {
				t.Errorf("polar case should have no events: %+v", c)
			}
			if !c.Agrees(0) {
				t.Error("both sides report no events, want agreement")
			}
			if c.MaxDelta() != 0 {
				t.Errorf("MaxDelta() = %v, want 0", c.MaxDelta())
			}
		})
	}
}

func TestAgrees_Disagreement(t *testing.T) {
	c := Comparison{
		Sunrise: EventDelta{HasEngine: true, HasReference: false},
		Sunset:  EventDelta{HasEngine: true, HasReference: true, Delta: time.Minute},
	}
	if c.Agrees(time.Hour) {
		t.Error("one-sided sunrise should not agree")
	}

	c.Sunrise.HasReference = true
	c.Sunrise.Delta = -10 * time.Minute
	if c.MaxDelta() != 10*time.Minute {
		t.Errorf("MaxDelta() = %v, want 10m", c.MaxDelta())
	}
	if c.Agrees(5 * time.Minute) {
		t.Error("10m delta should exceed 5m tolerance")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{0, 0},
		{90 * time.Second, 90 * time.Second},
		{-90 * time.Second, -90 * time.Second},
		{24*time.Hour - time.Minute, -time.Minute},
		{-24*time.Hour + time.Minute, time.Minute},
		{12 * time.Hour, 12 * time.Hour},
		{-12 * time.Hour, 12 * time.Hour},
		{48*time.Hour + 2*time.Minute, 2 * time.Minute},
	}
	for _, tt := range tests {
		if got := wrap(tt.in); got != tt.want {
			t.Errorf("wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
