// Package config handles loading and validation of the .ctxpack.yaml
// configuration file.
package config

import (
	"fmt"

	"ctxpack/pkg/export"
)

// Config holds the persisted defaults for an export run. Command-line flags
// override individual fields.
type Config struct {
	Format        string   `yaml:"format"`           // plain, markdown or xml
	Budget        int      `yaml:"budget"`           // budget units per segment; 0 = unbounded
	Output        string   `yaml:"output"`           // output base path for segment files
	Tree          bool     `yaml:"tree"`             // prepend the tree rendering
	Copy          bool     `yaml:"copy"`             // send output to the clipboard instead of files
	MaxFileSizeKB int      `yaml:"max-file-size-kb"` // discovery-time size cap; 0 disables
	Prefetch      int      `yaml:"prefetch"`         // bounded read-ahead window
	Ignore        []string `yaml:"ignore"`           // extra ignore patterns
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Format:        string(export.FormatPlain),
		Budget:        0,
		Output:        "ctxpack",
		Tree:          true,
		MaxFileSizeKB: 1024,
		Prefetch:      4,
		Ignore:        []string{".git/", ".ctxpackignore"},
	}
}

// Validate checks field values that cannot be repaired by defaulting.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Budget < 0 {
		return fmt.Errorf("budget must be >= 0, got %d", c.Budget)
	}
	if c.MaxFileSizeKB < 0 {
		return fmt.Errorf("max-file-size-kb must be >= 0, got %d", c.MaxFileSizeKB)
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	return nil
}
