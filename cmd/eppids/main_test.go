// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

const sampleRegistry = "EPP Repository ID,Change Controller,Reference/Contact,Registration Date\n" +
	"\"MX,#x004D #x0058\",ICANN,[contact],2014-03-18\n" +
	"\"ENUMAT,#x0045 #x004E #x0055 #x004D #x0041\",ICANN,[contact],2006-01-01\n" +
	"\"NGTLD,#x004E #x0047 #x0054 #x004C #x0044\",ICANN,[contact],2013-09-12\n"

func TestValidateAll(t *testing.T) {
	recs, err := validateAll(strings.NewReader(sampleRegistry), false, false, io.Discard)
	if err != nil {
		t.Fatalf("validateAll: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	if !recs[0].Accepted() || recs[0].ID != "MX" {
		t.Errorf("record 0 = %+v, want accepted MX", recs[0])
	}
	if recs[1].Accepted() {
		t.Errorf("record 1 accepted, want rejection for representation mismatch")
	}
	if !recs[2].Accepted() || recs[2].ID != "NGTLD" {
		t.Errorf("record 2 = %+v, want accepted NGTLD", recs[2])
	}
}

func TestValidateAllVerbose(t *testing.T) {
	recs, err := validateAll(strings.NewReader(sampleRegistry), false, true, io.Discard)
	if err != nil {
		t.Fatalf("validateAll: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
}

func TestValidateAllBadHeader(t *testing.T) {
	in := "EPP Repository ID,Change Controller,Reference/Contact\nMX,ICANN,x\n"
	if _, err := validateAll(strings.NewReader(in), false, false, io.Discard); err == nil {
		t.Fatal("validateAll succeeded on bad header, want error")
	}
}

// Boolean settings come from the config file unless the flag was set on the
// command line, in which case the flag wins.
func TestLoadConfigBoolLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("progress = true\nverbose = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	*cfgFlag = path
	t.Cleanup(func() {
		*cfgFlag = ""
		*progress = false
		*verbose = false
	})
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.AddGoFlag(flag.Lookup("progress"))
	flags.AddGoFlag(flag.Lookup("verbose"))

	cfg, err := loadConfig(flags)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Progress || cfg.Verbose {
		t.Errorf("file-only layering: Progress=%v Verbose=%v, want true false", cfg.Progress, cfg.Verbose)
	}

	if err := flags.Set("verbose", "true"); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(flags)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Progress || !cfg.Verbose {
		t.Errorf("flag override: Progress=%v Verbose=%v, want true true", cfg.Progress, cfg.Verbose)
	}
}
