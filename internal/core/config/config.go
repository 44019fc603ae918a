// Package config handles configuration loading and validation for dispatch.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/core/todo"
)

// Config holds the application configuration.
type Config struct {
	// Theme selects the TUI color palette.
	Theme string `yaml:"theme"`

	// Operator is the display name stamped on to-dos created in this
	// session (the "current user" label).
	Operator string `yaml:"operator"`

	// DefaultCategory is the composer's initial category selection.
	DefaultCategory todo.Category `yaml:"default_category"`

	// PinnedCases holds glob patterns matched against case IDs; matching
	// cases are marked in the case list.
	PinnedCases []string `yaml:"pinned_cases"`

	// Log controls file logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:           styles.DefaultTheme,
		Operator:        "duty operator",
		DefaultCategory: todo.CategoryRecord,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given path. A missing or empty path
// returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values so a sparse config file behaves like the
// default one.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.Operator == "" {
		c.Operator = def.Operator
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = def.DefaultCategory
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
