// Package config loads persistent hindsight settings.
//
// Settings live in a JSON file, by default ~/.hindsight/config.json,
// overridable with the --config flag or the HINDSIGHT_CONFIG environment
// variable. Command-line flags always win over file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/hindsight/internal/storage"
)

// Config holds persistent settings that seed command defaults.
type Config struct {
	OutDir      string `json:"out_dir,omitempty"`
	SeasonStart string `json:"season_start,omitempty"`
	SeasonEnd   string `json:"season_end,omitempty"`
	DMax        int    `json:"dmax,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutDir: ".",
		DMax:   4,
	}
}

// Load reads configuration from path. A missing file yields defaults.
// File values overlay the defaults, so absent keys keep their default.
func Load(path string) (*Config, error) {
	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to path, creating parent directories.
func Save(path string, cfg *Config) error {
	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := storage.EnsureDir(filepath.Dir(expanded)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(expanded, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate rejects settings no command could use.
func (c *Config) Validate() error {
	if c.DMax < 0 {
		return fmt.Errorf("dmax cannot be negative: %d", c.DMax)
	}

	for _, field := range []struct{ name, value string }{
		{"season_start", c.SeasonStart},
		{"season_end", c.SeasonEnd},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", field.value); err != nil {
			return fmt.Errorf("invalid %s %q (want YYYY-MM-DD)", field.name, field.value)
		}
	}

	return nil
}
