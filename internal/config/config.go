// Package config loads wordfigure settings from YAML.
//
// Values start from the defaults embedded in the data package, are
// overlaid by an optional YAML file, and are validated before use.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/wordfigure/data"
)

// DefaultFile is the configuration file looked up in the working directory
// when no explicit path is given.
const DefaultFile = "wordfigure.yaml"

// Output formats for batch results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the root configuration.
type Config struct {
	Workers int       `yaml:"workers"`
	Output  string    `yaml:"output"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig controls the logger built by the command line.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data.DefaultConfig, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w: %v", ErrInvalidYAML, err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the YAML file at path and
// validates the result. A missing file is not an error; an empty path
// means DefaultFile.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultFile
	}
	if err := loadYAMLFile(path, cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAMLFile reads a YAML file and unmarshals it into target.
// A missing file leaves target untouched and is not an error.
func loadYAMLFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	return nil
}
