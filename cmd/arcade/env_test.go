package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", 60, "")
	fs.Int64("seed", 0, "")
	fs.String("log-level", "info", "")
	fs.String("log-file", "", "")
	return fs
}

func TestApplyEnvDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ARCADE_FPS", "30")
	t.Setenv("ARCADE_SEED", "42")

	fs := testFlags()
	if err := fs.Parse([]string{"--seed", "7"}); err != nil {
		t.Fatal(err)
	}
	if err := applyEnvDefaults(fs); err != nil {
		t.Fatalf("applyEnvDefaults() failed: %v", err)
	}

	if got, _ := fs.GetInt("fps"); got != 30 {
		t.Errorf("fps = %d, expected 30 from the environment", got)
	}
	if got, _ := fs.GetInt64("seed"); got != 7 {
		t.Errorf("seed = %d, expected the command line to win", got)
	}
}

func TestApplyEnvDefaultsFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ARCADE_LOG_LEVEL", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ARCADE_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that already exist
	os.Unsetenv("ARCADE_LOG_LEVEL")

	fs := testFlags()
	if err := applyEnvDefaults(fs); err != nil {
		t.Fatalf("applyEnvDefaults() failed: %v", err)
	}
	if got, _ := fs.GetString("log-level"); got != "debug" {
		t.Errorf("log-level = %q, expected debug from .env", got)
	}
	os.Unsetenv("ARCADE_LOG_LEVEL")
}

func TestApplyEnvDefaultsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ARCADE_FPS", "fast")

	if err := applyEnvDefaults(testFlags()); err == nil {
		t.Error("expected an error for a non-numeric ARCADE_FPS")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.log")

	logger, closer, err := newLogger("debug", path)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "game", "snake")
	if err := closer(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("expected a log line in the file")
	}

	if _, _, err := newLogger("loud", ""); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
