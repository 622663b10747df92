package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/games/memory"
	"github.com/vovakirdan/pocket-arcade/internal/games/snake"
)

// runtimeConfig builds the game runtime config from the global flags and
// the current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setConfigPath points a game at a custom config file before it is created.
func setConfigPath(gameID, path string) {
	switch gameID {
	case "memory":
		memory.SetConfigPath(path)
	case "snake":
		snake.SetConfigPath(path)
	}
}

// checkConfig loads a custom config file once so a bad file is reported
// before the game takes over the terminal.
func checkConfig(gameID, path string) error {
	if path == "" {
		return nil
	}
	var err error
	switch gameID {
	case "memory":
		_, err = config.LoadMemory(path)
	case "snake":
		_, err = config.LoadSnake(path)
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
