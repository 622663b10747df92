// Package config provides YAML-based game configuration loading and
// validation for the arcade.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MemoryConfig contains all configuration for the memory match game.
type MemoryConfig struct {
	Board   MemoryBoard  `yaml:"board"`
	Symbols []string     `yaml:"symbols"`
	Timing  MemoryTiming `yaml:"timing"`
}

// MemoryBoard defines the card grid.
type MemoryBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MemoryTiming defines the delays of the memory game.
type MemoryTiming struct {
	MatchDelay    time.Duration `yaml:"match_delay"`    // Pair shown before it locks in
	MismatchDelay time.Duration `yaml:"mismatch_delay"` // Pair shown before it flips back
}

// Cards returns the number of cards on the board.
func (c MemoryConfig) Cards() int {
	return c.Board.Rows * c.Board.Cols
}

// Validate checks that the board can be filled with symbol pairs.
func (c MemoryConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("%w: memory board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	}
	if c.Cards()%2 != 0 {
		return fmt.Errorf("%w: memory board needs an even number of cards, got %d",
			ErrInvalidConfig, c.Cards())
	}
	if len(c.Symbols) != c.Cards()/2 {
		return fmt.Errorf("%w: memory board of %d cards needs %d symbols, got %d",
			ErrInvalidConfig, c.Cards(), c.Cards()/2, len(c.Symbols))
	}

	seen := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: memory symbol %q must be a single character", ErrInvalidConfig, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: memory symbol %q is listed twice", ErrInvalidConfig, s)
		}
		seen[s] = true
	}

	if c.Timing.MatchDelay <= 0 || c.Timing.MismatchDelay <= 0 {
		return fmt.Errorf("%w: memory timings must be positive", ErrInvalidConfig)
	}
	return nil
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   SnakeGrid   `yaml:"grid"`
	Start  SnakeStart  `yaml:"start"`
	Timing SnakeTiming `yaml:"timing"`
}

// SnakeGrid defines the playfield size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines where a new snake spawns.
type SnakeStart struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // up, down, left, right
}

// SnakeTiming defines the movement speed.
type SnakeTiming struct {
	MoveInterval time.Duration `yaml:"move_interval"`
}

// Validate checks the grid, the spawn point and the speed.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		return fmt.Errorf("%w: snake grid must be at least 2x2, got %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Start.X < 0 || c.Start.X >= c.Grid.Width || c.Start.Y < 0 || c.Start.Y >= c.Grid.Height {
		return fmt.Errorf("%w: snake start (%d, %d) is outside the %dx%d grid",
			ErrInvalidConfig, c.Start.X, c.Start.Y, c.Grid.Width, c.Grid.Height)
	}
	switch c.Start.Direction {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: unknown snake direction %q", ErrInvalidConfig, c.Start.Direction)
	}
	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("%w: snake move interval must be positive", ErrInvalidConfig)
	}
	return nil
}
