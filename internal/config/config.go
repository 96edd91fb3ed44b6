// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional eppids configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds run settings. Flags override file values, which override the
// built-in defaults.
type Config struct {
	// URL of the registry CSV.
	URL string `toml:"url"`
	// Output is the path of the published database file. Empty means the
	// default per-user data directory.
	Output string `toml:"output"`
	// Timeout bounds the registry fetch, in time.ParseDuration syntax.
	Timeout string `toml:"timeout"`
	// Progress shows a progress bar while validating records.
	Progress bool `toml:"progress"`
	// Verbose additionally logs every accepted identifier, not just the
	// rejected ones.
	Verbose bool `toml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Timeout: "20m"}
}

// DefaultPath returns the conventional location of the config file.
func DefaultPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "eppids", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving config path")
	}
	return filepath.Join(home, ".config", "eppids", "config.toml"), nil
}

// Load reads the config file at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// FetchTimeout parses the configured fetch timeout.
func (c Config) FetchTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid timeout %q", c.Timeout)
	}
	if d <= 0 {
		return 0, errors.Errorf("invalid timeout %q: must be positive", c.Timeout)
	}
	return d, nil
}
