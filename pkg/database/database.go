// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package database renders and publishes the epp-repo-ids.txt database file.
package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/epptools/eppids/internal/sanitize"
	"github.com/epptools/eppids/pkg/repoid"
)

// FileName is the name of the published database file.
const FileName = "epp-repo-ids.txt"

// Sentinel is the final line of every complete database file. Consumers use
// it to detect truncation.
const Sentinel = "# END-OF-FILE"

// Render writes the full database text: a generation banner, one line per
// record in registry order, and the end-of-file sentinel. Every line passes
// through the output sanitizer so the file never contains anything outside
// printable ASCII and the legal identifier character set.
func Render(w io.Writer, recs []repoid.Record, now time.Time) error {
	banner := fmt.Sprintf(
		"# This file was automatically generated at %s.\n#\n# Do not edit manually. Regenerate it using eppids.\n#\n",
		now.Format("2006-01-02 15:04:05 MST"))
	if _, err := io.WriteString(w, banner); err != nil {
		return errors.Wrap(err, "writing banner")
	}
	for _, rec := range recs {
		if _, err := fmt.Fprintln(w, sanitize.String(rec.Line())); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}
	if _, err := io.WriteString(w, Sentinel+"\n"); err != nil {
		return errors.Wrap(err, "writing sentinel")
	}
	return nil
}

// Publish atomically replaces path with the content produced by render. The
// content is written to a temp file in the destination directory and renamed
// into place only after a clean sync and close. On any failure the temp file
// is removed and the previously published file is left untouched.
func Publish(path string, render func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating data directory")
	}
	tmp, err := os.CreateTemp(dir, "."+FileName+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := tmp.Name()
	if err := render(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "writing database")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "closing temp file")
	}
	// CreateTemp makes the file 0600; the database is read by other tools.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "setting file mode")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "renaming temp file to final path")
	}
	return nil
}
