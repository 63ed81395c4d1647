// Package config loads settings from a YAML file with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for the aj binary.
type Config struct {
	// Database file holding contacts and journal entries
	DBPath string `yaml:"db_path" env:"AJ_DB_PATH"`

	// Logging level: debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"AJ_LOG_LEVEL"`

	// Listen address for `aj serve`
	ServeAddr string `yaml:"serve_addr" env:"AJ_SERVE_ADDR"`

	// Save after every successful mutating command
	Autosave bool `yaml:"autosave" env:"AJ_AUTOSAVE"`
}

// DefaultDir is where the database and config file live unless overridden.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aj"
	}
	return filepath.Join(home, ".aj")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:    filepath.Join(DefaultDir(), "aj.db"),
		LogLevel:  "warn",
		ServeAddr: "127.0.0.1:8080",
		Autosave:  true,
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
