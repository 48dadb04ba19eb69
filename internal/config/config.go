// Package config handles configuration loading and defaults.
//
// Configuration is loaded from TOML files in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todolist/todolist.toml or the OS config directory)
// 3. Project config file (todolist.toml or .todolist.toml in the working directory)
//
// The program deliberately reads no command-line flags and no environment
// variables; the defaults reproduce the historical behavior (save file
// "save.csv" next to the binary's working directory).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultSaveFile  = "save.csv"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for the task manager.
type Config struct {
	// SaveFile is the path of the persisted task list. A leading ~ is
	// expanded to the user's home directory.
	SaveFile string `toml:"save_file"`

	// Logging configuration (diagnostics on stderr).
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// ClearScreen controls whether the menu loop clears the terminal
	// between actions. Only takes effect when stdout is a TTY.
	ClearScreen bool `toml:"clear_screen"`
}

// Load loads configuration from the default file locations.
func Load() (*Config, error) {
	return load(findUserConfigFile(), findProjectConfigFile())
}

func load(userFile, projectFile string) (*Config, error) {
	cfg := &Config{
		SaveFile:    DefaultSaveFile,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		ClearScreen: true,
	}

	if userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}
	if projectFile != "" {
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	if cfg.SaveFile == "" {
		cfg.SaveFile = DefaultSaveFile
	}
	cfg.SaveFile = expandPath(cfg.SaveFile)

	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// findUserConfigFile returns the first existing user-level config file,
// or "" if none exists.
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".todolist", "todolist.toml")
		if fileExists(p) {
			return p
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "todolist", "todolist.toml")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

// findProjectConfigFile returns the first existing config file in the
// working directory, or "" if none exists.
func findProjectConfigFile() string {
	for _, name := range []string{"todolist.toml", ".todolist.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
