package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultMemoryConfig returns the built-in memory match configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board: MemoryBoard{
			Rows: 4,
			Cols: 4,
		},
		Symbols: []string{"♠", "♥", "♦", "♣", "★", "●", "▲", "■"},
		Timing: MemoryTiming{
			MatchDelay:    500 * time.Millisecond,
			MismatchDelay: time.Second,
		},
	}
}

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  20,
			Height: 20,
		},
		Start: SnakeStart{
			X:         10,
			Y:         10,
			Direction: "right",
		},
		Timing: SnakeTiming{
			MoveInterval: 150 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "memory":
		return defaultMemoryYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
