package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Backend names a window implementation
type Backend string

const (
	BackendSDL      Backend = "sdl"
	BackendTerminal Backend = "terminal"
)

// Config holds the startup configuration for the game
type Config struct {
	Title          string  `json:"title"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	CellSize       int     `json:"cell_size"`
	TickIntervalMs int     `json:"tick_interval_ms"`
	Backend        Backend `json:"backend"`
	Pattern        string  `json:"pattern"`
	RandomDensity  float64 `json:"random_density"`
	StrictBounds   bool    `json:"strict_bounds"`
	Workers        int     `json:"workers"`
	Sound          bool    `json:"sound"`
	LogFile        string  `json:"log_file"`
}

// DefaultConfig returns the classic 800x800 window with 20 pixel cells
func DefaultConfig() Config {
	return Config{
		Title:          "Conway's Game of Life",
		Width:          800,
		Height:         800,
		CellSize:       20,
		TickIntervalMs: 250,
		Backend:        BackendSDL,
		Pattern:        "empty",
		RandomDensity:  0.15,
		StrictBounds:   false,
		Workers:        1,
		Sound:          false,
	}
}

// TickInterval returns the generation interval as a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Validate rejects configurations the game cannot start with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] screen size must be positive, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	case c.CellSize > c.Width || c.CellSize > c.Height:
		return errors.Errorf("[Validate] cell size %d does not fit a %dx%d screen", c.CellSize, c.Width, c.Height)
	case c.TickIntervalMs <= 0:
		return errors.Errorf("[Validate] tick interval must be positive, got %dms", c.TickIntervalMs)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.Workers < 0:
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}

	switch c.Backend {
	case BackendSDL, BackendTerminal:
	default:
		return errors.Errorf("[Validate] unknown backend %q", c.Backend)
	}

	switch c.Pattern {
	case "empty", "random", "demo":
	default:
		return errors.Errorf("[Validate] unknown pattern %q", c.Pattern)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
