// Package config provides configuration loading and validation for the CLI
// and the serving surfaces.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values applied when neither the config file nor flags provide one.
const (
	DefaultPort = 8480
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	AuthSecret string `json:"auth_secret,omitempty"` // HS256 secret guarding mutating endpoints

	// Catalog overrides. When set, these JSON files replace the embedded
	// catalogs and must pass the same schema and invariant validation.
	RoleCatalog      string `json:"role_catalog,omitempty"`
	TermDatabase     string `json:"term_database,omitempty"`
	FrameworkCatalog string `json:"framework_catalog,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed score breakdowns
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	// Validate override paths exist (if specified)
	for _, override := range []struct {
		field string
		path  string
	}{
		{"role_catalog", c.RoleCatalog},
		{"term_database", c.TermDatabase},
		{"framework_catalog", c.FrameworkCatalog},
	} {
		if override.path == "" {
			continue
		}
		if _, err := os.Stat(override.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", override.field, override.path)
		}
	}

	return nil
}

// EffectivePort returns the configured port or the default.
func (c *Config) EffectivePort() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}
