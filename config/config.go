// Package config loads optional player settings from a YAML file.
// Flags on the command line override anything set here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the player-tunable settings.
type Config struct {
	// SaveDir is where save slots are written.
	SaveDir string `yaml:"save_dir"`
	// GameDir points at an external world directory. Empty means the
	// embedded game data.
	GameDir string `yaml:"game_dir"`
	// Plain disables the TUI in favor of plain terminal output.
	Plain bool `yaml:"plain"`
	// Seed fixes the RNG seed. 0 means time-based.
	Seed int64 `yaml:"seed"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		SaveDir: filepath.Join(home, ".sintown", "saves"),
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sintown", "config.yaml")
}

// Load reads settings from the given path. A missing file is not an
// error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.SaveDir == "" {
		cfg.SaveDir = Default().SaveDir
	}
	return cfg, nil
}
