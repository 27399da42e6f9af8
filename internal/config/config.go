// Package config provides YAML-based configuration loading for gridwalk,
// with environment overrides on top of the file values.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridwalk/internal/game"
)

// ErrInvalid is returned by Validate for settings the game cannot run with.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete gridwalk configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Assets  AssetsConfig  `yaml:"assets"`
	Input   InputConfig   `yaml:"input"`
	Loop    LoopConfig    `yaml:"loop"`
	Log     LogConfig     `yaml:"log"`
	Journal JournalConfig `yaml:"journal"`
}

// GridConfig defines the grid growth cycle.
type GridConfig struct {
	StartCells int `yaml:"start_cells" env:"GRIDWALK_START_CELLS"`
	MinCells   int `yaml:"min_cells" env:"GRIDWALK_MIN_CELLS"`
	MaxCells   int `yaml:"max_cells" env:"GRIDWALK_MAX_CELLS"`
	Step       int `yaml:"step" env:"GRIDWALK_GROWTH_STEP"`
}

// AssetsConfig defines where sprites are looked up.
type AssetsConfig struct {
	Dir    string `yaml:"dir" env:"GRIDWALK_ASSET_DIR"`
	Player string `yaml:"player" env:"GRIDWALK_PLAYER_SPRITE"`
	Point  string `yaml:"point" env:"GRIDWALK_POINT_SPRITE"`
}

// InputConfig defines key repeat filtering.
type InputConfig struct {
	RepeatWindow time.Duration `yaml:"repeat_window" env:"GRIDWALK_REPEAT_WINDOW"`
}

// LoopConfig defines the frame clock.
type LoopConfig struct {
	FPS int `yaml:"fps" env:"GRIDWALK_FPS"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" env:"GRIDWALK_LOG_LEVEL"`
	File  string `yaml:"file" env:"GRIDWALK_LOG_FILE"`
}

// JournalConfig defines where completed rounds are recorded.
type JournalConfig struct {
	Path string `yaml:"path" env:"GRIDWALK_JOURNAL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			StartCells: 3,
			MinCells:   3,
			MaxCells:   9,
			Step:       game.DefaultGrowthStep,
		},
		Input: InputConfig{RepeatWindow: 100 * time.Millisecond},
		Loop:  LoopConfig{FPS: 30},
		Log:   LogConfig{Level: "info"},
	}
}

// Validate checks everything that does not depend on the sprite size.
// Grid settings are checked again against the cell size by the game.
func (c Config) Validate() error {
	g := c.Grid
	switch {
	case g.MinCells < 2:
		// A 1x1 grid is full on arrival and has no legal move to finish it.
		return fmt.Errorf("%w: grid.min_cells %d below 2", ErrInvalid, g.MinCells)
	case g.MinCells > g.MaxCells:
		return fmt.Errorf("%w: grid.min_cells %d > grid.max_cells %d", ErrInvalid, g.MinCells, g.MaxCells)
	case g.StartCells < g.MinCells || g.StartCells > g.MaxCells:
		return fmt.Errorf("%w: grid.start_cells %d outside [%d, %d]", ErrInvalid, g.StartCells, g.MinCells, g.MaxCells)
	case g.Step < 0:
		return fmt.Errorf("%w: grid.step %d", ErrInvalid, g.Step)
	case c.Loop.FPS < 1 || c.Loop.FPS > 240:
		return fmt.Errorf("%w: loop.fps %d", ErrInvalid, c.Loop.FPS)
	case c.Input.RepeatWindow < 0:
		return fmt.Errorf("%w: input.repeat_window %s", ErrInvalid, c.Input.RepeatWindow)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// GridSettings converts the grid section into the game's settings.
func (c Config) GridSettings() game.GridSettings {
	return game.GridSettings{
		CellsPerSide:    c.Grid.StartCells,
		MinCellsPerSide: c.Grid.MinCells,
		MaxCellsPerSide: c.Grid.MaxCells,
		Step:            c.Grid.Step,
	}
}

// TickInterval is the time between frames.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.FPS)
}

// LogLevel returns the parsed log level, Info if it cannot be parsed.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
