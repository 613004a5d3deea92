// Package config loads the application-level configuration: logging
// behavior and output defaults. Model coefficients are not configured
// here; they live in the screening package and are overridden per run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output format names accepted by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// LoggingConfig controls CLI logging.
type LoggingConfig struct {
	// Level is a zerolog level name. Defaults to info.
	Level string `yaml:"level"`

	// Format is "console" or "json". Defaults to console.
	Format string `yaml:"format"`
}

// OutputConfig controls result rendering defaults.
type OutputConfig struct {
	// DefaultFormat is used when --output is not given: table or json.
	DefaultFormat string `yaml:"default_format"`
}

// Config is the application configuration, loaded from an optional YAML
// file and overridable by CLI flags.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{DefaultFormat: OutputTable},
	}
}

// DefaultPath returns the per-user config file location
// ($HOME/.klimatkalk/config.yaml), or empty when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".klimatkalk", "config.yaml")
}

// Load reads the config file at path and overlays it on the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown output formats. Logging values are not
// validated here; unparseable levels fall back to info at logger
// construction.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case OutputTable, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)",
			c.Output.DefaultFormat, OutputTable, OutputJSON)
	}
}
