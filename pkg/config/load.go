package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file names searched for in the working directory and its parents.
var defaultConfigFiles = []string{
	".ctxpack.yaml",
	".ctxpack.yml",
}

// Load reads and validates the configuration at the given path. Fields the
// file leaves at their zero value keep the defaults where that is safe.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed for %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault searches for a configuration file and loads the first hit.
// Search order:
// 1. The starting directory and its parents, up to the filesystem root
// 2. $HOME/.config/ctxpack/config.yaml
// When nothing is found, the built-in defaults are returned.
func LoadDefault(startDir string) (*Config, error) {
	if path, ok := findInParents(startDir); ok {
		return Load(path)
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(homeDir, ".config", "ctxpack", "config.yaml")
		if _, err := os.Stat(userPath); err == nil {
			return Load(userPath)
		}
	}

	return Default(), nil
}

// findInParents walks from dir toward the filesystem root looking for a
// config file.
func findInParents(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range defaultConfigFiles {
			candidate := filepath.Join(current, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}
