package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadMemory loads the memory match configuration.
// Search order: customPath -> ~/.arcade/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
func LoadMemory(customPath string) (MemoryConfig, error) {
	return load(customPath, "memory.yaml", defaultMemoryYAML, DefaultMemoryConfig)
}

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load(customPath, "snake.yaml", defaultSnakeYAML, DefaultSnakeConfig)
}

// ParseMemory decodes a memory config document on top of the defaults.
func ParseMemory(data []byte) (MemoryConfig, error) {
	return parse(data, DefaultMemoryConfig)
}

// ParseSnake decodes a snake config document on top of the defaults.
func ParseSnake(data []byte) (SnakeConfig, error) {
	return parse(data, DefaultSnakeConfig)
}

// load walks the search order. A custom path must exist and be valid;
// unreadable or invalid files in the other locations are skipped.
func load[T validator](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, fallback)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, fallback); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(embedded, fallback); err == nil {
		return cfg, nil
	}
	return fallback(), nil // Fallback to hardcoded if embed fails
}

// parse decodes data over the hardcoded defaults, so a document only has to
// name the fields it changes, then validates the result.
func parse[T validator](data []byte, fallback func() T) (T, error) {
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
