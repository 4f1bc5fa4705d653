// Package config loads and validates randommarch configuration.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/randommarch/internal/world"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all randommarch options.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Seed      int64           `yaml:"seed"` // 0 means a time-based seed is picked at startup
	Walkers   WalkerConfig    `yaml:"walkers"`
	Palette   PaletteConfig   `yaml:"palette"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig sets the cave dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WalkerConfig sets how many walkers run and how each one carves.
type WalkerConfig struct {
	Count                int     `yaml:"count"`
	Steps                int     `yaml:"steps"`
	MaxStepLength        int     `yaml:"max_step_length"`
	BacktrackProbability float64 `yaml:"backtrack_probability"`
}

// PaletteConfig holds hex colours per tile kind.
type PaletteConfig struct {
	Solid  string `yaml:"solid"`
	Floor  string `yaml:"floor"`
	Edge   string `yaml:"edge"`
	Island string `yaml:"island"`
}

// LogConfig configures the logger and optional rotating log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty logs to stderr only
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// TelemetryConfig toggles OpenTelemetry export.
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dataset string `yaml:"dataset"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  world.DefaultWidth,
			Height: world.DefaultHeight,
		},
		Seed: 0,
		Walkers: WalkerConfig{
			Count:                4,
			Steps:                120,
			MaxStepLength:        2,
			BacktrackProbability: 0.2,
		},
		Palette: PaletteConfig{
			Solid:  "#000000",
			Floor:  "#FFFFFF",
			Edge:   "#808080",
			Island: "#00FF00",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			Dataset: "randommarch",
		},
	}
}

// Validate checks that the configuration can drive a generation run.
func (c Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid size %dx%d must not be negative", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Walkers.Count < 0 {
		return fmt.Errorf("%w: walker count %d must not be negative", ErrInvalidConfig, c.Walkers.Count)
	}
	if c.Walkers.Steps < 0 {
		return fmt.Errorf("%w: walker steps %d must not be negative", ErrInvalidConfig, c.Walkers.Steps)
	}
	if c.Walkers.MaxStepLength < 1 {
		return fmt.Errorf("%w: max_step_length %d must be at least 1", ErrInvalidConfig, c.Walkers.MaxStepLength)
	}
	if p := c.Walkers.BacktrackProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: backtrack_probability %g must be within [0,1]", ErrInvalidConfig, p)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, c.Log.Level, err)
	}

	colors := map[string]string{
		"solid":  c.Palette.Solid,
		"floor":  c.Palette.Floor,
		"edge":   c.Palette.Edge,
		"island": c.Palette.Island,
	}
	for _, name := range []string{"solid", "floor", "edge", "island"} {
		if !isHexColor(colors[name]) {
			return fmt.Errorf("%w: palette %s color %q is not #RRGGBB", ErrInvalidConfig, name, colors[name])
		}
	}
	return nil
}

// ResolveSeed returns the configured seed, or one derived from now when it is 0.
func (c Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}

// Params converts the configuration into generator parameters using the given seed.
func (c Config) Params(seed int64) world.Params {
	return world.Params{
		Width:       c.Grid.Width,
		Height:      c.Grid.Height,
		Seed:        seed,
		WalkerCount: c.Walkers.Count,
		Walker: world.WalkerParams{
			Steps:                c.Walkers.Steps,
			MaxStepLength:        c.Walkers.MaxStepLength,
			BacktrackProbability: c.Walkers.BacktrackProbability,
		},
	}
}

// isHexColor reports whether s is a 6-digit hex colour with an optional leading '#'.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}
