// Package config loads and saves the rainbow settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/rainbow"
)

// Config mirrors ~/.config/rainbow/config.yaml. Unset fields fall back to
// rainbow.DefaultOptions.
type Config struct {
	// Enabled turns colorizing on or off. Nil means on.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Number of column colors before they repeat (5-20).
	PaletteSize int `yaml:"palette_size,omitempty"`

	// Lines kept from inputs longer than 1000 lines (100-2000).
	MaxRows int `yaml:"max_rows,omitempty"`

	// Custom hex colors replacing the default palette.
	Palette []string `yaml:"palette,omitempty"`

	// Default output format (ansi, html, table, ...)
	Format string `yaml:"format,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Default table border (rounded, none, ascii, heavy, double)
	Border string `yaml:"border,omitempty"`
}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rainbow", "config.yaml"), nil
}

// DefaultConfigPath returns the settings file location, normally
// ~/.config/rainbow/config.yaml.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// IsEnabled reports whether colorizing is on.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// SetEnabled records the enabled state.
func (c *Config) SetEnabled(on bool) {
	c.Enabled = &on
}

// Options merges the file settings onto rainbow.DefaultOptions and
// validates the result.
func (c *Config) Options() (rainbow.Options, error) {
	opts := rainbow.DefaultOptions()
	opts.Enabled = c.IsEnabled()
	if c.PaletteSize != 0 {
		opts.PaletteSize = c.PaletteSize
	}
	if c.MaxRows != 0 {
		opts.MaxRows = c.MaxRows
	}
	if len(c.Palette) > 0 {
		opts.Palette = c.Palette
	}
	if c.Border != "" {
		b, err := rainbow.ParseBorder(c.Border)
		if err != nil {
			return opts, fmt.Errorf("config border: %w", err)
		}
		opts.Border = b
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}
