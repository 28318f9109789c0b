// Command ls-daylight shows sunrise, sunset and daylight for a location,
// either as a terminal UI or as headless text and JSON output.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-daylight/internal/astro"
	"github.com/litescript/ls-daylight/internal/config"
	"github.com/litescript/ls-daylight/internal/logging"
	"github.com/litescript/ls-daylight/internal/reference"
	"github.com/litescript/ls-daylight/internal/report"
	"github.com/litescript/ls-daylight/internal/solar"
	"github.com/litescript/ls-daylight/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode bool
	jsonMode    bool
	yearMode    bool
	compareMode bool
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Config file (default $LS_DAYLIGHT_CONFIG or ~/.config/ls-daylight/config.yaml)")
	lat := flag.Float64("lat", 0, "Latitude in degrees, north positive")
	lon := flag.Float64("lon", 0, "Longitude in degrees, east positive")
	tz := flag.Float64("tz", 0, "Zone offset in hours east of UTC (e.g. -5, 5.5)")
	date := flag.String("date", "", "Date as YYYY-MM-DD, optionally with a time (default today)")
	at := flag.String("at", "", "Local wall clock time HH:MM (default now)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print day table instead of TUI")
	flag.BoolVar(&jsonMode, "json", false, "Print JSON export instead of TUI")
	flag.BoolVar(&yearMode, "year", false, "Print the whole year of the selected date")
	flag.BoolVar(&compareMode, "compare", false, "Compare events against the go-sunrise reference")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override config only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.Location.Latitude = *lat
			cfg.Location.Name = ""
		case "lon":
			cfg.Location.Longitude = *lon
			cfg.Location.Name = ""
		case "tz":
			cfg.Location.TZOffsetHours = *tz
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(cfg.Log.Level))
	if cfg.Path != "" {
		logger.Debug("Loaded config from %s", cfg.Path)
	}

	cache := solar.NewCache(cfg.Compute.CacheSize)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless mode: no TUI
	headless := summaryMode || jsonMode || yearMode || compareMode
	if headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		q, err := buildQuery(cfg.Location, *date, *at, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if !headless {
			summaryMode = true
		}
		if err := runHeadless(ctx, os.Stdout, cfg, cache, q, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The alt screen owns the terminal; logs go to a file or nowhere.
	tuiLog := logging.Discard()
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		tuiLog = logging.NewWithOutput(logging.ParseLevel(cfg.Log.Level), f)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(ui.New(ctx, cfg, cache, tuiLog), tea.WithAltScreen(), tea.WithContext(ctx))

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	stats := cache.Stats()
	tuiLog.Debug("Cache: %d hits, %d misses", stats.Hits, stats.Misses)
}

// buildQuery resolves the -date and -at flags against the location's zone.
// Missing parts default to the zone-local wall clock at now. A date with a
// non-zero UTC offset names an instant and is moved onto the location's wall
// clock; without one it already is wall-clock time.
func buildQuery(loc config.LocationConfig, date, at string, now time.Time) (solar.Query, error) {
	zone := time.Duration(loc.TZOffsetHours * float64(time.Hour))
	instant := now.UTC().Add(zone).Truncate(time.Minute)

	if date != "" {
		d, err := solar.ParseDate(date)
		if err != nil {
			return solar.Query{}, err
		}
		switch {
		case len(strings.TrimSpace(date)) == len(time.DateOnly):
			// Date only: keep the current wall clock.
			h, m, _ := instant.Clock()
			d = d.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		case d.Location() != time.UTC:
			d = d.UTC().Add(zone)
		}
		instant = d
	}

	if at != "" {
		clock, err := time.Parse("15:04", at)
		if err != nil {
			return solar.Query{}, &solar.InvalidInputError{Field: "at", Value: at, Err: err}
		}
		y, mo, d := instant.Date()
		instant = time.Date(y, mo, d, clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	}

	return solar.Query{
		Lat:           loc.Latitude,
		Lon:           loc.Longitude,
		Date:          instant,
		TZOffsetHours: loc.TZOffsetHours,
	}, nil
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, w io.Writer, cfg *config.Config, cache *solar.Cache, q solar.Query, logger *logging.Logger) error {
	log := logger.With("headless")
	now := time.Now().UTC()

	if yearMode {
		days, err := solar.ComputeYear(ctx, solar.YearOptions{
			Lat:           q.Lat,
			Lon:           q.Lon,
			Year:          q.Date.Year(),
			TZOffsetHours: q.TZOffsetHours,
			Workers:       cfg.Compute.Workers,
			Cache:         cache,
		})
		if err != nil {
			return fmt.Errorf("compute year %d: %w", q.Date.Year(), err)
		}
		markers := astro.Seasons(q.Date.Year())
		log.Debug("Computed %d days for %d", len(days), q.Date.Year())

		if jsonMode {
			if err := report.ExportYear(days, markers, now).WriteJSON(w); err != nil {
				return fmt.Errorf("write JSON: %w", err)
			}
		} else {
			report.WriteYearTable(w, days, markers)
		}
		return nil
	}

	r := cache.Compute(q)

	// Export JSON if requested
	if jsonMode {
		if err := report.ExportDay(r, now).WriteJSON(w); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	}

	// Print summary table if requested
	if summaryMode {
		report.WriteDayTable(w, r)
	}

	if compareMode {
		if summaryMode {
			fmt.Fprintln(w)
		}
		c := reference.CompareResult(r)
		report.WriteComparison(w, c)
		if !c.Agrees(cfg.Compute.ReferenceTolerance) {
			log.Warn("Events differ from reference by %s (tolerance %s)",
				report.FormatDelta(c.MaxDelta()), cfg.Compute.ReferenceTolerance)
		}
	}
	return nil
}
