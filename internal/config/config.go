// Package config loads the optional YAML configuration file holding
// default asset paths, so a project can pin its atlas pair instead of
// repeating them on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the annotator's file configuration. Command-line flags
// override any value set here.
type Config struct {
	Atlas struct {
		// Document is the path to the sprite-sheet JSON document.
		Document string `yaml:"document"`
		// Image is the atlas image path. Empty means inferred from
		// the document stem.
		Image string `yaml:"image,omitempty"`
		// Output is where the annotated document is written. Empty
		// means in place.
		Output string `yaml:"output,omitempty"`
	} `yaml:"atlas"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified config path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for required fields.
func (c *Config) Validate() error {
	if c.Atlas.Document == "" {
		return fmt.Errorf("atlas document path is required")
	}
	return nil
}
