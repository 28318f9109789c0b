package solar

import (
	"math"
	"testing"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             float64
	}{
		// Julian date at noon minus one.
		{"J2000 epoch", 2000, 1, 1, 2451544},
		{"2024 equinox", 2024, 3, 20, 2460389},
		{"last Julian-calendar day", 1582, 10, 4, 2299159},
		{"leap day", 2024, 2, 29, 2460369},
		{"new year 2024", 2024, 1, 1, 2460310},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := julianDay(tt.year, tt.month, tt.day)
			if got != tt.want {
				t.Errorf("julianDay(%d, %d, %d) = %.1f, want %.1f",
					tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestJulianDay_Consecutive(t *testing.T) {
	// Month and year boundaries must advance by exactly one day.
	pairs := [][2][3]int{
		{{2023, 12, 31}, {2024, 1, 1}},
		{{2024, 2, 29}, {2024, 3, 1}},
		{{2023, 2, 28}, {2023, 3, 1}},
		{{1999, 8, 31}, {1999, 9, 1}},
		{{1900, 2, 28}, {1900, 3, 1}},
	}
	for _, p := range pairs {
		a := julianDay(p[0][0], p[0][1], p[0][2])
		b := julianDay(p[1][0], p[1][1], p[1][2])
		if b-a != 1 {
			t.Errorf("julianDay(%v) - julianDay(%v) = %.0f, want 1", p[1], p[0], b-a)
		}
	}
}

func TestFrac(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
	}
	for _, tt := range tests {
		if got := frac(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("frac(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSunAt_Declination(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantMin, wantMax float64 // degrees
	}{
		{"March equinox", 2024, 3, 20, -1, 1},
		{"June solstice", 2024, 6, 21, 23, 24},
		{"December solstice", 2024, 12, 21, -24, -23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := julianDay(tt.year, tt.month, tt.day) - j2000 + 0.5 + 0.5 // noon
			pos := sunAt(d, d/daysPerCentury+1)
			dec := pos.dec * 180 / math.Pi
			if dec < tt.wantMin || dec > tt.wantMax {
				t.Errorf("declination = %.2f°, want between %.2f° and %.2f°", dec, tt.wantMin, tt.wantMax)
			}
		})
	}
}
