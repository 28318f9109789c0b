package astro

import (
	"testing"
	"time"
)

func TestSunPosition(t *testing.T) {
	tests := []struct {
		name                   string
		time                   time.Time
		wantRAMin, wantRAMax   float64
		wantDecMin, wantDecMax float64
	}{
		{"March equinox", time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), 359, 2, -1, 1},
		{"June solstice", time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), 88, 92, 23, 24},
		{"September equinox", time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC), 178, 182, -1, 1},
		{"December solstice", time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC), 268, 272, -24, -23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec := SunPosition(tt.time)

			var raOK bool
			if tt.wantRAMin > tt.wantRAMax {
				raOK = ra >= tt.wantRAMin || ra <= tt.wantRAMax
			} else {
				raOK = ra >= tt.wantRAMin && ra <= tt.wantRAMax
			}
			if !raOK {
				t.Errorf("RA = %.2f°, want between %.2f° and %.2f°", ra, tt.wantRAMin, tt.wantRAMax)
			}
			if dec < tt.wantDecMin || dec > tt.wantDecMax {
				t.Errorf("Dec = %.2f°, want between %.2f° and %.2f°", dec, tt.wantDecMin, tt.wantDecMax)
			}
		})
	}
}

func TestSunElevation(t *testing.T) {
	tests := []struct {
		name             string
		obs              Observer
		time             time.Time
		wantMin, wantMax float64
	}{
		{"equator at noon on equinox", Observer{LatDeg: 0, LonDeg: 0}, time.Date(2024, 3, 20, 12, 7, 0, 0, time.UTC), 88, 90},
		{"equator at midnight", Observer{LatDeg: 0, LonDeg: 0}, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), -90, -85},
		{"Tropic of Cancer June noon", Observer{LatDeg: 23.44, LonDeg: 0}, time.Date(2024, 6, 20, 12, 2, 0, 0, time.UTC), 89, 90},
		{"New York winter noon", Observer{LatDeg: 40.7, LonDeg: -74}, time.Date(2024, 12, 21, 16, 55, 0, 0, time.UTC), 25, 27},
		{"midnight sun at 75N", Observer{LatDeg: 75, LonDeg: 0}, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), 6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := SunElevation(tt.obs, tt.time)
			if el < tt.wantMin || el > tt.wantMax {
				t.Errorf("SunElevation() = %.2f°, want between %.2f° and %.2f°", el, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestSunHorizontal_Azimuth(t *testing.T) {
	// Morning sun is east, evening sun is west.
	obs := Observer{LatDeg: 40.7, LonDeg: -74}
	morning := SunHorizontal(obs, time.Date(2024, 3, 20, 13, 0, 0, 0, time.UTC))
	evening := SunHorizontal(obs, time.Date(2024, 3, 20, 21, 0, 0, 0, time.UTC))

	if morning.AzDeg < 90 || morning.AzDeg > 180 {
		t.Errorf("morning Az = %.1f, want between 90 and 180", morning.AzDeg)
	}
	if evening.AzDeg < 180 || evening.AzDeg > 270 {
		t.Errorf("evening Az = %.1f, want between 180 and 270", evening.AzDeg)
	}
}

func TestIsSunAboveHorizon(t *testing.T) {
	obs := Observer{LatDeg: 51.5, LonDeg: -0.1}
	if !IsSunAboveHorizon(obs, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Error("London should be sunlit at midday")
	}
	if IsSunAboveHorizon(obs, time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC)) {
		t.Error("London should be dark at 01:00 UTC")
	}
}

func TestGetElevationTier(t *testing.T) {
	tests := []struct {
		elDeg float64
		want  ElevationTier
	}{
		{-30, ElevationNight},
		{-18.1, ElevationNight},
		{-10, ElevationTwilight},
		{-0.833, ElevationTwilight},
		{0, ElevationLow},
		{14.9, ElevationLow},
		{15, ElevationHigh},
		{80, ElevationHigh},
	}

	for _, tt := range tests {
		if got := GetElevationTier(tt.elDeg); got != tt.want {
			t.Errorf("GetElevationTier(%.3f) = %v, want %v", tt.elDeg, got, tt.want)
		}
	}
}
