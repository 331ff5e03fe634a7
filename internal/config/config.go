// Package config provides YAML-based configuration loading and validation
// for the snake arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Limits enforced by Validate. The grid limits are the game's own.
const (
	MinGridWidth  = snake.MinGridWidth
	MinGridHeight = snake.MinGridHeight
	MaxTickRate   = 120
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Window   WindowConfig  `yaml:"window"`
	CellSize int           `yaml:"cell_size"`
	TickRate int           `yaml:"tick_rate"` // Simulation ticks per second
	Scoring  ScoringConfig `yaml:"scoring"`
}

// WindowConfig is the playfield size in pixels. Together with CellSize it
// fixes the grid dimensions.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// GridSize returns the grid dimensions in cells.
func (c SnakeConfig) GridSize() (w, h int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	return c.Window.Width / c.CellSize, c.Window.Height / c.CellSize
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if w, h := c.GridSize(); w < MinGridWidth || h < MinGridHeight {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, w, h, MinGridWidth, MinGridHeight)
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d must be within 1..%d", ErrInvalidConfig, c.TickRate, MaxTickRate)
	}
	if c.Scoring.FoodPoints <= 0 {
		return fmt.Errorf("%w: food_points %d must be positive", ErrInvalidConfig, c.Scoring.FoodPoints)
	}
	return nil
}

// Runtime converts the config into the runtime parameters handed to the game.
func (c SnakeConfig) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	w, h := c.GridSize()
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		GridW:      w,
		GridH:      h,
		TickRate:   c.TickRate,
		FoodPoints: c.Scoring.FoodPoints,
		Seed:       seed,
	}
}
