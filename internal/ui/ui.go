// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/config"
	"github.com/litescript/ls-daylight/internal/logging"
	"github.com/litescript/ls-daylight/internal/report"
	"github.com/litescript/ls-daylight/internal/solar"
	"github.com/litescript/ls-daylight/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewYear
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic clock updates.
	TickMsg time.Time

	// yearComputedMsg carries a finished year series.
	yearComputedMsg struct {
		year int
		days []solar.Day
		err  error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	ctx   context.Context
	cfg   *config.Config
	cache *solar.Cache
	log   *logging.Logger
	clock func() time.Time

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// date is the selected civil date at 00:00 UTC; now is the real instant.
	date time.Time
	now  time.Time

	// Year series for date's year
	year        int
	days        []solar.Day
	markers     []astro.SeasonMarker
	yearLoading bool
	yearErr     error
}

// New creates a new root UI model. ctx bounds background year computations.
func New(ctx context.Context, cfg *config.Config, cache *solar.Cache, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	m := Model{
		ctx:   ctx,
		cfg:   cfg,
		cache: cache,
		log:   log.With("ui"),
		clock: time.Now,
	}
	m.now = m.clock()
	m.date = m.localToday()
	// Init starts the first year computation.
	m.yearLoading = true
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.computeYearCmd(m.date.Year()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.date = m.date.AddDate(0, 0, -1)
		case "right", "l":
			m.date = m.date.AddDate(0, 0, 1)
		case "up", "k":
			m.date = m.date.AddDate(0, 0, -7)
		case "down", "j":
			m.date = m.date.AddDate(0, 0, 7)
		case "t":
			m.date = m.localToday()
		case "y", "tab":
			m.viewMode = (m.viewMode + 1) % 2
		}
		if m.date.Year() != m.year && !m.yearLoading {
			cmds = append(cmds, m.computeYearCmd(m.date.Year()))
			m.yearLoading = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, m.tickCmd())

	case yearComputedMsg:
		m.yearLoading = false
		if msg.err != nil {
			m.log.Error("year %d: %v", msg.year, msg.err)
			m.yearErr = msg.err
			break
		}
		m.log.Debug("year %d computed, %d days", msg.year, len(msg.days))
		m.year = msg.year
		m.days = msg.days
		m.markers = astro.Seasons(msg.year)
		m.yearErr = nil
		// The selection may have moved on while this year was computing.
		if m.date.Year() != m.year {
			cmds = append(cmds, m.computeYearCmd(m.date.Year()))
			m.yearLoading = true
		}
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewYear:
		content = m.renderYearView()
	default:
		content = m.renderDayView()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

// Query returns the query for the selected date, evaluated at the current
// local clock time.
func (m Model) Query() solar.Query {
	local := m.localNow()
	instant := m.date.Add(time.Duration(local.Hour())*time.Hour + time.Duration(local.Minute())*time.Minute)
	return solar.Query{
		Lat:           m.cfg.Location.Latitude,
		Lon:           m.cfg.Location.Longitude,
		Date:          instant,
		TZOffsetHours: m.cfg.Location.TZOffsetHours,
	}
}

// Date returns the selected date.
func (m Model) Date() time.Time {
	return m.date
}

func (m Model) compute(q solar.Query) solar.Result {
	if m.cache != nil {
		return m.cache.Compute(q)
	}
	return solar.Compute(q)
}

func (m Model) observer() astro.Observer {
	return astro.Observer{
		LatDeg: m.cfg.Location.Latitude,
		LonDeg: m.cfg.Location.Longitude,
		Name:   m.cfg.Location.Name,
	}
}

func (m Model) zoneOffset() time.Duration {
	return time.Duration(m.cfg.Location.TZOffsetHours * float64(time.Hour))
}

// localNow returns the zone-local wall clock as a UTC-labelled time.
func (m Model) localNow() time.Time {
	return m.now.UTC().Add(m.zoneOffset())
}

func (m Model) localToday() time.Time {
	l := m.localNow()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.UTC)
}

func (m Model) renderDayView() string {
	r := m.compute(m.Query())
	// Local midnight of the selected date as a real instant.
	start := m.date.Add(-m.zoneOffset())
	samples := astro.SunTrace(m.observer(), start, 24*time.Hour, m.cfg.Compute.TraceStep)
	return renderDayCard(dayCard{
		result:   r,
		observer: m.observer(),
		instant:  m.Query().Date.Add(-m.zoneOffset()),
		zone:     m.zoneOffset(),
		samples:  samples,
		isToday:  m.date.Equal(m.localToday()),
	})
}

func (m Model) renderYearView() string {
	if m.yearErr != nil {
		return errorStyle.Render("  Year unavailable: " + m.yearErr.Error())
	}
	if len(m.days) == 0 || m.year != m.date.Year() {
		return dimStyle.Render("  Computing year...")
	}

	selected := m.date.YearDay() - 1
	height := m.height - 8
	if height < 8 {
		height = 8
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(renderYearStrip(m.days, m.markers, selected, width, height))
	b.WriteString("\n")

	d := m.days[selected]
	rise, hasRise := d.Result.Sunrise()
	set, hasSet := d.Result.Sunset()
	b.WriteString(fmt.Sprintf("  %s  rise %s  set %s  length %s",
		m.date.Format("Mon 02 Jan"), report.FormatClock(rise, hasRise), report.FormatClock(set, hasSet), report.FormatDuration(d.Length)))
	return b.String()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n  ")
	title := "ls-daylight"
	runes := []rune(title)
	for i, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(i, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  v%s", version.Version)))
	b.WriteString("\n")

	loc := m.cfg.Location
	where := fmt.Sprintf("  %s  %.4f, %.4f  UTC%+.1f  ·  %s", loc.Name, loc.Latitude, loc.Longitude, loc.TZOffsetHours, m.date.Format("Monday 2 January 2006"))
	b.WriteString(mutedStyle.Render(where))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Day", "Year"}
	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeTabStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	status := dimStyle.Render("local " + m.localNow().Format("15:04"))
	if m.yearLoading {
		status += accentStyle.Render("  computing " + fmt.Sprint(m.date.Year()) + "...")
	}
	help := dimStyle.Render("←/→: day | ↑/↓: week | t: today | y: year view | q: quit")
	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.UI.Refresh, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) computeYearCmd(year int) tea.Cmd {
	opts := solar.YearOptions{
		Lat:           m.cfg.Location.Latitude,
		Lon:           m.cfg.Location.Longitude,
		Year:          year,
		TZOffsetHours: m.cfg.Location.TZOffsetHours,
		Workers:       m.cfg.Compute.Workers,
		Cache:         m.cache,
	}
	ctx := m.ctx
	return func() tea.Msg {
		days, err := solar.ComputeYear(ctx, opts)
		return yearComputedMsg{year: year, days: days, err: err}
	}
}

// gradientColor returns a hex color along a dawn gradient:
// indigo -> rose -> amber.
func gradientColor(col, width int) string {
	x := 0.0
	if width > 1 {
		x = float64(col) / float64(width-1)
	}

	var r, g, b float64
	if x < 0.5 {
		t := x / 0.5
		r = 76 + t*(236-76)
		g = 29 + t*(72-29)
		b = 149 + t*(153-149)
	} else {
		t := (x - 0.5) / 0.5
		r = 236 + t*(251-236)
		g = 72 + t*(191-72)
		b = 153 + t*(36-153)
	}
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return int(v)
	}
}
