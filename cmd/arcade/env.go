package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// envFlags maps environment variables to the global flags they default.
var envFlags = map[string]string{
	"ARCADE_FPS":       "fps",
	"ARCADE_SEED":      "seed",
	"ARCADE_LOG_LEVEL": "log-level",
	"ARCADE_LOG_FILE":  "log-file",
}

// applyEnvDefaults loads ./.env, if present, and uses the ARCADE_*
// variables for every global flag not set on the command line. Variables
// already in the environment win over the file.
func applyEnvDefaults(flags *pflag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("env: cannot read .env: %w", err)
	}

	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("env: invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// newLogger builds the application logger. The TUI owns the terminal, so
// logs go to a file or nowhere.
func newLogger(level, path string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})
	return logger, closer, nil
}
