package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Year is the calendar year retained by the parser. Matches the
	// parser default when no config file overrides it.
	Year int `toml:"year"`

	// Authors are seeded into the participant list ahead of the names
	// found in the export. No de-duplication is performed.
	Authors []string `toml:"authors"`

	// Timezones adds abbreviation -> UTC offset (seconds) entries to the
	// builtin table, e.g. IST = 19800 for exports from India.
	Timezones map[string]int `toml:"timezones"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Year: 2017,
	}

	cfgPath := filepath.Join(home, ".config", "threadstat", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	return cfg, nil
}
