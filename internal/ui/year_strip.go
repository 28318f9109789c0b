package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/solar"
)

const (
	// Strip glyphs
	glyphDay      = '█'
	glyphNight    = '·'
	glyphNoon     = '•'
	glyphSeason   = '┆'
	glyphSelected = '│'

	// Strip colors
	colorDay      = "220"
	colorNight    = "17"
	colorNoon     = "196"
	colorSeason   = "171"
	colorSelected = "255"
	colorAxis     = "244"

	// Width of the hour labels left of the plot
	axisWidth = 4
)

// yearCanvas holds the glyph and color of every strip cell.
type yearCanvas struct {
	cells  [][]rune
	colors [][]lipgloss.Color
}

func newYearCanvas(width, height int) yearCanvas {
	c := yearCanvas{
		cells:  make([][]rune, height),
		colors: make([][]lipgloss.Color, height),
	}
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = "236"
		}
	}
	return c
}

func (c yearCanvas) set(x, y int, r rune, color lipgloss.Color) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

func (c yearCanvas) text(x, y int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, color)
	}
}

func (c yearCanvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		for x, r := range row {
			b.WriteString(lipgloss.NewStyle().Foreground(c.colors[y][x]).Render(string(r)))
		}
		if y < len(c.cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// buildYearCanvas lays out the year as columns of days and rows of local
// hours, midnight at the top. The last row carries month initials.
func buildYearCanvas(days []solar.Day, markers []astro.SeasonMarker, selected, width, height int) yearCanvas {
	c := newYearCanvas(width, height)
	plotW := width - axisWidth
	rows := height - 1
	if plotW <= 0 || rows <= 0 || len(days) == 0 {
		return c
	}

	dayAt := func(x int) int { return x * len(days) / plotW }
	colOf := func(idx int) int { return idx * plotW / len(days) }

	seasonCols := make(map[int]bool, len(markers))
	for _, m := range markers {
		seasonCols[colOf(m.Time().YearDay()-1)] = true
	}
	selCol := -1
	if selected >= 0 && selected < len(days) {
		selCol = colOf(selected)
	}

	rowSpan := 24 * time.Hour / time.Duration(rows)
	for x := 0; x < plotW; x++ {
		d := days[dayAt(x)]
		midnight := d.Result.Query().Date.UTC().Truncate(24 * time.Hour)
		noonRow := -1
		if d.Result.IsSunrise() && d.Result.IsSunset() {
			noonRow = int(d.NoonFraction * float64(rows))
		}

		for y := 0; y < rows; y++ {
			at := midnight.Add(time.Duration(y)*rowSpan + rowSpan/2)
			lit := d.Result.IsDaytimeAt(at)

			switch {
			case x == selCol:
				c.set(axisWidth+x, y, glyphSelected, colorSelected)
			case y == noonRow:
				c.set(axisWidth+x, y, glyphNoon, colorNoon)
			case lit:
				c.set(axisWidth+x, y, glyphDay, colorDay)
			case seasonCols[x]:
				c.set(axisWidth+x, y, glyphSeason, colorSeason)
			default:
				c.set(axisWidth+x, y, glyphNight, colorNight)
			}
		}
	}

	for _, h := range []int{0, 6, 12, 18} {
		c.text(0, h*rows/24, fmt.Sprintf("%02dh", h), colorAxis)
	}

	for i, d := range days {
		if d.Date.Day() == 1 {
			name := time.Month(d.Date.Month()).String()
			c.text(axisWidth+colOf(i), rows, name[:1], colorAxis)
		}
	}

	return c
}

// renderYearStrip renders the year canvas with the selected day highlighted.
func renderYearStrip(days []solar.Day, markers []astro.SeasonMarker, selected, width, height int) string {
	return buildYearCanvas(days, markers, selected, width, height).String()
}
