package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds wmctl's settings. All fields are optional; the zero config
// resolves to usable defaults.
type Config struct {
	// ToolPath overrides the wmctrl executable location. Empty means
	// resolve "wmctrl" via PATH.
	ToolPath string `yaml:"tool_path"`
	// TimeoutMS bounds each wmctrl invocation in milliseconds. Zero
	// disables the timeout, matching wmctrl's own blocking behavior.
	TimeoutMS int `yaml:"timeout_ms"`
	// LogLevel is one of debug, info, warn, error. Default: warn.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TimeoutMS: 0,
		LogLevel:  "warn",
	}
}

// DefaultConfigPath returns the standard config location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "wmctl", "config.yaml"), nil
}

// Load reads configuration from the standard location. A missing file is
// not an error and yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads configuration from an explicit path. A missing file
// yields the defaults; a present but invalid file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and vocabularies.
func (c *Config) Validate() error {
	if c.TimeoutMS < 0 {
		return fmt.Errorf("timeout_ms must not be negative, got %d", c.TimeoutMS)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// SlogLevel maps LogLevel onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
