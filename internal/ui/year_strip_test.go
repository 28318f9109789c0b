package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/solar"
)

func polarYear(t *testing.T) []solar.Day {
	t.Helper()
	days, err := solar.ComputeYear(context.Background(), solar.YearOptions{
		Lat: 75, Lon: 15, Year: 2024, TZOffsetHours: 1,
	})
	if err != nil {
		t.Fatalf("ComputeYear() error = %v", err)
	}
	return days
}

func column(c yearCanvas, x, rows int) string {
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.WriteRune(c.cells[y][x])
	}
	return b.String()
}

func TestBuildYearCanvas(t *testing.T) {
	days := polarYear(t)
	markers := astro.Seasons(2024)
	const height = 25
	rows := height - 1
	// One column per day.
	width := axisWidth + len(days)
	selected := 40

	c := buildYearCanvas(days, markers, selected, width, height)

	if len(c.cells) != height {
		t.Fatalf("rows = %d, want %d", len(c.cells), height)
	}
	for y, row := range c.cells {
		if len(row) != width {
			t.Fatalf("row %d width = %d, want %d", y, len(row), width)
		}
	}

	tests := []struct {
		name string
		day  int
		want rune
	}{
		{"midnight sun", 171, glyphDay},
		{"polar night", 344, glyphNight},
		{"selected", selected, glyphSelected},
		{"december solstice", 355, glyphSeason},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := column(c, axisWidth+tt.day, rows)
			if want := strings.Repeat(string(tt.want), rows); got != want {
				t.Errorf("column %d = %q, want all %q", tt.day, got, tt.want)
			}
		})
	}

	// The day before the equinox has night, day and a noon dot.
	equinox := column(c, axisWidth+78, rows)
	for _, r := range []rune{glyphNight, glyphDay, glyphNoon} {
		if !strings.ContainsRune(equinox, r) {
			t.Errorf("equinox column %q missing %q", equinox, r)
		}
	}
	if []rune(equinox)[0] != glyphNight {
		t.Errorf("equinox midnight should be night, got %q", equinox)
	}
}

func TestBuildYearCanvas_Labels(t *testing.T) {
	days := polarYear(t)
	const height = 25
	c := buildYearCanvas(days, nil, -1, axisWidth+len(days), height)

	if got := string(c.cells[0][:3]); got != "00h" {
		t.Errorf("top label = %q, want 00h", got)
	}
	if got := string(c.cells[12][:3]); got != "12h" {
		t.Errorf("noon label = %q, want 12h", got)
	}

	months := c.cells[height-1]
	for idx, want := range map[int]rune{0: 'J', 31: 'F', 60: 'M', 335: 'D'} {
		if got := months[axisWidth+idx]; got != want {
			t.Errorf("month label at day %d = %q, want %q", idx, got, want)
		}
	}
}

func TestBuildYearCanvas_Empty(t *testing.T) {
	c := buildYearCanvas(nil, nil, 0, 40, 10)
	for _, row := range c.cells {
		if strings.TrimSpace(string(row)) != "" {
			t.Fatalf("empty year should leave a blank canvas, got %q", string(row))
		}
	}

	// Too narrow for the axis.
	c = buildYearCanvas(polarYear(t), nil, 0, axisWidth, 10)
	if len(c.cells) != 10 {
		t.Errorf("rows = %d, want 10", len(c.cells))
	}
}

func TestRenderYearStrip(t *testing.T) {
	out := renderYearStrip(polarYear(t), astro.Seasons(2024), 0, 80, 12)
	if lines := strings.Count(out, "\n") + 1; lines != 12 {
		t.Errorf("lines = %d, want 12", lines)
	}
}
