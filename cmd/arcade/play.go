package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move the cursor / steer the snake
  Enter/Space  - Flip a card (memory)
  Mouse click  - Flip the card under the pointer (memory)
  Space/P      - Pause (snake)
  R            - Reset
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots

Examples:
  arcade play memory
  arcade play snake --seed 42
  arcade play memory --config ./my-memory.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	if err := checkConfig(gameID, flagConfig); err != nil {
		return err
	}
	setConfigPath(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Results only live for this run
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open results log", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		logger.Debug("session started", "session", store.Session())
	}

	if _, err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
