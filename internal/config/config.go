// Package config loads ls-daylight settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-daylight/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LS_DAYLIGHT_"

// Config aggregates runtime configuration.
type Config struct {
	Location LocationConfig `yaml:"location"`
	Log      LogConfig      `yaml:"log"`
	Compute  ComputeConfig  `yaml:"compute"`
	UI       UIConfig       `yaml:"ui"`

	// Path is the file the config was read from, empty when none was found.
	Path string `yaml:"-"`
}

// LocationConfig is the default observer.
type LocationConfig struct {
	Name          string  `yaml:"name"`
	Latitude      float64 `yaml:"latitude"`
	Longitude     float64 `yaml:"longitude"`
	TZOffsetHours float64 `yaml:"tzOffsetHours"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives logs in TUI mode; empty discards them.
	File string `yaml:"file"`
}

// ComputeConfig tunes the sunrise engine wrappers.
type ComputeConfig struct {
	Workers            int           `yaml:"workers"`
	CacheSize          int           `yaml:"cacheSize"`
	TraceStep          time.Duration `yaml:"traceStep"`
	ReferenceTolerance time.Duration `yaml:"referenceTolerance"`
}

// UIConfig controls the TUI.
type UIConfig struct {
	Refresh time.Duration `yaml:"refresh"`
}

// Default returns the built-in configuration: Greenwich at UTC.
func Default() *Config {
	return &Config{
		Location: LocationConfig{
			Name:      "Greenwich",
			Latitude:  51.4769,
			Longitude: -0.0005,
		},
		Log: LogConfig{Level: "info"},
		Compute: ComputeConfig{
			CacheSize:          4096,
			TraceStep:          10 * time.Minute,
			ReferenceTolerance: 5 * time.Minute,
		},
		UI: UIConfig{Refresh: time.Minute},
	}
}

// Load builds the configuration from defaults, then the YAML file, then
// environment overrides. An explicit path must exist; otherwise
// LS_DAYLIGHT_CONFIG is tried, then ~/.config/ls-daylight/config.yaml if
// present.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if p, ok := defaultPath(); ok {
		if err := hydrateFromFile(cfg, p); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/ls-daylight/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ls-daylight", "config.yaml")
}

func defaultPath() (string, bool) {
	p := DefaultPath()
	if p == "" {
		return "", false
	}
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.Path = path
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	floats := []struct {
		name string
		dst  *float64
	}{
		{"LAT", &cfg.Location.Latitude},
		{"LON", &cfg.Location.Longitude},
		{"TZ", &cfg.Location.TZOffsetHours},
	}
	for _, f := range floats {
		if v := os.Getenv(EnvPrefix + f.name); v != "" {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, f.name, err)
			}
			*f.dst = parsed
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"WORKERS", &cfg.Compute.Workers},
		{"CACHE_SIZE", &cfg.Compute.CacheSize},
	}
	for _, f := range ints {
		if v := os.Getenv(EnvPrefix + f.name); v != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, f.name, err)
			}
			*f.dst = parsed
		}
	}

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvPrefix + "NAME"); v != "" {
		cfg.Location.Name = v
	}
	return nil
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	loc := c.Location
	if !finite(loc.Latitude) || loc.Latitude < -90 || loc.Latitude > 90 {
		return errors.New("location.latitude must be within [-90, 90]")
	}
	if !finite(loc.Longitude) || loc.Longitude < -180 || loc.Longitude > 360 {
		return errors.New("location.longitude must be within [-180, 360]")
	}
	if !finite(loc.TZOffsetHours) || loc.TZOffsetHours < -14 || loc.TZOffsetHours > 14 {
		return errors.New("location.tzOffsetHours must be within [-14, 14]")
	}
	if _, ok := logging.LookupLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if c.Compute.Workers < 0 {
		return errors.New("compute.workers cannot be negative")
	}
	if c.Compute.CacheSize < 0 {
		return errors.New("compute.cacheSize cannot be negative")
	}
	if c.Compute.TraceStep <= 0 || c.Compute.TraceStep > time.Hour {
		return errors.New("compute.traceStep must be in (0, 1h]")
	}
	if c.Compute.ReferenceTolerance < 0 {
		return errors.New("compute.referenceTolerance cannot be negative")
	}
	if c.UI.Refresh < time.Second {
		return errors.New("ui.refresh must be at least 1s")
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
