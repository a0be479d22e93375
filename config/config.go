// Package config provides configuration loading and management for
// Semsketch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Semsketch configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Raw    RawConfig    `yaml:"raw"`
	Watch  WatchConfig  `yaml:"watch"`
}

// OutputConfig configures the compiled output
type OutputConfig struct {
	// Format is the default export format: block or ntriples
	Format string `yaml:"format"`
}

// RawConfig configures raw statement handling
type RawConfig struct {
	// Unresolved selects the policy for absolute identifiers with no
	// matching prefix: "keep" passes them through unexpanded, "error"
	// rejects the document
	Unresolved string `yaml:"unresolved"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is the quiet period after a file event before recompiling
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "block",
		},
		Raw: RawConfig{
			Unresolved: "keep",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "block", "ntriples":
	default:
		return fmt.Errorf("output.format must be block or ntriples")
	}
	switch c.Raw.Unresolved {
	case "keep", "error":
	default:
		return fmt.Errorf("raw.unresolved must be keep or error")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// Strict reports whether unresolved raw identifiers reject the document.
func (c *Config) Strict() bool {
	return c.Raw.Unresolved == "error"
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Raw.Unresolved != "" {
		c.Raw.Unresolved = other.Raw.Unresolved
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
