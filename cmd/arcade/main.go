// arcade is a terminal arcade with casual games: memory match and snake.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade rules <game>      - Show how to play a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (default: discarded)
//
// Flags fall back to ARCADE_FPS, ARCADE_SEED, ARCADE_LOG_LEVEL and
// ARCADE_LOG_FILE, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/games/memory"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Set up by the root command before any subcommand runs
	logger    *log.Logger
	closeLogs func() error
)

func main() {
	err := rootCmd.Execute()
	if closeLogs != nil {
		closeLogs() //nolint:errcheck
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Arcade - casual games in your terminal",
	Long: `Pocket Arcade is a terminal arcade with two casual games:
a memory-matching tile game and snake.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  rules    - Show how to play a game

Examples:
  arcade list
  arcade play memory
  arcade play snake --seed 42
  arcade menu --log-file arcade.log --log-level debug
  arcade rules memory`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyEnvDefaults(cmd.Flags()); err != nil {
			return err
		}

		l, closer, err := newLogger(flagLogLevel, flagLogFile)
		if err != nil {
			return err
		}
		logger, closeLogs = l, closer
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (empty = discard)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(rulesCmd)
}
