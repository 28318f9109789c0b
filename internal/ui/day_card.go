package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/report"
	"github.com/litescript/ls-daylight/internal/solar"
)

// SparklineWidth is the number of cells in the elevation sparkline.
const SparklineWidth = 48

var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline gradient endpoints (RGB)
var (
	elevColorLow  = [3]uint8{0xB4, 0x3F, 0x2A} // ember
	elevColorMid  = [3]uint8{0xF5, 0x9E, 0x0B} // amber
	elevColorHigh = [3]uint8{0xFD, 0xE6, 0x8A} // pale gold
)

var (
	cardHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dayStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	nightStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	activeTabStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 2)
)

// dayCard is everything the day view shows for one date.
type dayCard struct {
	result   solar.Result
	observer astro.Observer
	instant  time.Time     // real instant the card is evaluated at
	zone     time.Duration // offset east of UTC
	samples  []astro.ElevationSample
	isToday  bool
}

func renderDayCard(c dayCard) string {
	r := c.result
	rise, hasRise := r.Sunrise()
	set, hasSet := r.Sunset()

	var b strings.Builder
	b.WriteString(cardHeaderStyle.Render("Sun"))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("Sunrise", report.FormatClock(rise, hasRise))
	row("Sunset", report.FormatClock(set, hasSet))
	row("Day length", report.FormatDuration(solar.DayLength(r)))
	if hasRise && hasSet {
		noon := solar.NewDay(r).NoonFraction
		row("Solar noon", fractionClock(noon))
	} else {
		row("Status", report.Status(r))
	}

	local := c.instant.Add(c.zone)
	when := "at " + local.Format("15:04")
	if c.isToday {
		when = "now (" + local.Format("15:04") + ")"
	}
	b.WriteString(labelStyle.Render("Daytime"))
	if r.IsDaytime() {
		b.WriteString(dayStyle.Render("yes"))
	} else {
		b.WriteString(nightStyle.Render("no"))
	}
	b.WriteString(dimStyle.Render(" " + when))
	b.WriteString("\n")

	hz := astro.SunHorizontal(c.observer, c.instant)
	row("Elevation", fmt.Sprintf("%+.1f°  az %.0f°  %s", hz.ElDeg, hz.AzDeg, astro.GetElevationTier(hz.ElDeg)))

	if m, ok := astro.SeasonOn(local.Year(), local.Month(), local.Day()); ok {
		row("Season", m.Season.String())
	}

	b.WriteString("\n")
	b.WriteString(renderSparkline(c.samples, c.instant))
	if w, err := astro.FindWindow(c.samples); err == nil && !w.AlwaysDown {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("transit %s  max %.1f°", w.Transit.Add(c.zone).Format("15:04"), w.MaxElevation)))
	}

	return cardStyle.Render(b.String())
}

// fractionClock formats a fraction of a day as HH:MM.
func fractionClock(f float64) string {
	mins := int(f*24*60+0.5) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// renderSparkline draws the day's sun elevation, one cell per bucket.
// Cells below the rise/set elevation use the dim night block.
func renderSparkline(samples []astro.ElevationSample, now time.Time) string {
	buckets := resampleElevation(samples, SparklineWidth)
	if len(buckets) == 0 {
		return dimStyle.Render("No elevation data")
	}

	nowIdx := -1
	if n := len(samples); n > 1 {
		span := samples[n-1].Time.Sub(samples[0].Time)
		if off := now.Sub(samples[0].Time); off >= 0 && off < span {
			nowIdx = int(float64(off) / float64(span) * float64(SparklineWidth))
		}
	}

	var sb strings.Builder
	for i, elev := range buckets {
		if i == nowIdx {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Render("│"))
			continue
		}
		if elev <= astro.RiseSetElevation {
			sb.WriteString(nightStyle.Render("▁"))
			continue
		}

		t := elev / 90.0
		idx := int(t * 7.0)
		if idx < 0 {
			idx = 0
		}
		if idx > 7 {
			idx = 7
		}
		r, g, b := interpolateElevColor(t)
		color := fmt.Sprintf("#%02x%02x%02x", r, g, b)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(sparklineBlocks[idx])))
	}
	return sb.String()
}

// interpolateElevColor returns RGB color for elevation value t in [0, 1].
func interpolateElevColor(t float64) (uint8, uint8, uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	lo, hi, s := elevColorLow, elevColorMid, t*2
	if t >= 0.5 {
		lo, hi, s = elevColorMid, elevColorHigh, (t-0.5)*2
	}
	mix := func(i int) uint8 {
		return uint8(float64(lo[i])*(1-s) + float64(hi[i])*s)
	}
	return mix(0), mix(1), mix(2)
}

// resampleElevation averages samples into a fixed number of buckets.
func resampleElevation(samples []astro.ElevationSample, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}

	result := make([]float64, width)
	perBucket := float64(len(samples)) / float64(width)

	for i := 0; i < width; i++ {
		start := int(float64(i) * perBucket)
		end := int(float64(i+1) * perBucket)
		if end <= start {
			end = start + 1
		}
		if end > len(samples) {
			end = len(samples)
		}
		if start >= end {
			start = end - 1
		}

		sum := 0.0
		for j := start; j < end; j++ {
			sum += samples[j].ElDeg
		}
		if n := end - start; n > 0 {
			result[i] = sum / float64(n)
		}
	}
	return result
}
