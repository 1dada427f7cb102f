// Package config loads and saves user configuration from the XDG config
// directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"glimpse/internal/logging"
)

const appName = "glimpse"

// DefaultTheme is the highlighting theme used when none is configured.
const DefaultTheme = "nord"

const defaultUIScale = 90

// Config holds user configuration.
type Config struct {
	// Theme is the syntax highlighting theme name.
	Theme string `yaml:"theme"`
	// UIScale is the percentage of the terminal the interface occupies.
	UIScale int `yaml:"ui_scale"`
	// ShowHelpBar toggles the key-hint bar at the bottom of the screen.
	ShowHelpBar bool `yaml:"show_help_bar"`
}

// ConfigPath returns the standard config file path for the current platform.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// FindConfigFile returns the path to the config file and whether it exists.
func FindConfigFile() (string, bool) {
	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		logging.Debug("Config found", "path", path)
		return path, true
	}
	return path, false
}

// Load reads the config from the standard location, falling back to
// defaults when no config file exists yet.
func Load() (*Config, error) {
	path, exists := FindConfigFile()
	if !exists {
		logging.Debug("No config file, using defaults", "path", path)
		cfg := DefaultConfig()
		return &cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific path.
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.UIScale <= 0 || cfg.UIScale > 100 {
		cfg.UIScale = defaultUIScale
	}

	return &cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:       DefaultTheme,
		UIScale:     defaultUIScale,
		ShowHelpBar: true,
	}
}

// Save writes the config to the standard location, creating the config
// directory if needed.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logging.Debug("Saved config", "path", path)
	return nil
}
