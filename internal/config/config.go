// Package config loads the tracker's YAML configuration file.
//
// Everything in the file has a working default, and every field can be
// overridden by a command-line flag; the file exists so a user can pin
// a database location once instead of passing --db everywhere.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`
}

// Default returns the configuration used when no file exists:
// the database lives under the user config dir.
func Default() Config {
	base, err := os.UserConfigDir()
	if err != nil {
		// No resolvable config dir; fall back to the working directory.
		base = "."
	}
	return Config{
		DBPath: filepath.Join(base, "trainstreak", "training.db"),
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "trainstreak", "config.yaml")
}

// Load reads the config file at path, filling unset fields from
// Default. A missing file is not an error - defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default().DBPath
	}
	return cfg, nil
}
