// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package datadir resolves the per-user directory holding generated data
// files.
package datadir

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Resolve returns the data directory for this user. EPPIDS_DATA_HOME wins
// when set; otherwise the XDG data home convention applies.
func Resolve() (string, error) {
	if dir := os.Getenv("EPPIDS_DATA_HOME"); dir != "" {
		return dir, nil
	}
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "eppids"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving data directory")
	}
	return filepath.Join(home, ".local", "share", "eppids"), nil
}
