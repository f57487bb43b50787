package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/daniel/expert-panel/internal/config"
	"github.com/daniel/expert-panel/internal/reasoning"
	"github.com/daniel/expert-panel/internal/taxonomy"
	"github.com/daniel/expert-panel/internal/terms"
)

// loadAppConfig loads the optional config file named by --config. With no
// flag it returns an empty config, so every setting falls back to defaults.
func loadAppConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{Verbose: verbose}, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// The flag wins over the file.
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// loadComponents builds the catalog, term store, and reasoning engine,
// honoring any override files from the config. Overrides go through the
// same schema and invariant validation as the embedded catalogs.
func loadComponents(cfg *config.Config) (*taxonomy.Catalog, *terms.Store, *reasoning.Engine, error) {
	catalog, err := loadCatalog(cfg.RoleCatalog)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := loadTerms(cfg.TermDatabase)
	if err != nil {
		return nil, nil, nil, err
	}

	engine, err := loadEngine(cfg.FrameworkCatalog)
	if err != nil {
		return nil, nil, nil, err
	}

	return catalog, store, engine, nil
}

func loadCatalog(override string) (*taxonomy.Catalog, error) {
	if override == "" {
		return taxonomy.LoadDefault()
	}
	data, err := os.ReadFile(override)
	if err != nil {
		return nil, fmt.Errorf("failed to read role catalog %s: %w", override, err)
	}
	return taxonomy.Load(data)
}

func loadTerms(override string) (*terms.Store, error) {
	if override == "" {
		return terms.LoadDefault()
	}
	data, err := os.ReadFile(override)
	if err != nil {
		return nil, fmt.Errorf("failed to read term database %s: %w", override, err)
	}
	return terms.Load(data)
}

func loadEngine(override string) (*reasoning.Engine, error) {
	if override == "" {
		return reasoning.LoadDefault()
	}
	data, err := os.ReadFile(override)
	if err != nil {
		return nil, fmt.Errorf("failed to read framework catalog %s: %w", override, err)
	}
	return reasoning.Load(data)
}

// parseKeyValues parses repeated "key=value" flag values into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid key=value pair: %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
