// Package commands implements the dispatch CLI command groups.
package commands

import (
	"os"
	"path/filepath"
)

// Flags holds global CLI flags plus state initialized in the Before hook.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Theme      string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dispatch", "config.yaml")
}
