// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Command eppids regenerates the epp-repo-ids.txt database from the IANA
// EPP Repository IDs registry.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/epptools/eppids/internal/config"
	"github.com/epptools/eppids/internal/datadir"
	"github.com/epptools/eppids/internal/httpx"
	"github.com/epptools/eppids/pkg/database"
	"github.com/epptools/eppids/pkg/registry/iana"
	"github.com/epptools/eppids/pkg/repoid"
)

const userAgent = "eppids (+https://github.com/epptools/eppids)"

var (
	urlFlag  = flag.String("url", "", "Registry CSV URL. Defaults to the IANA assignments location.")
	output   = flag.String("output", "", "Path of the generated database file. Defaults to epp-repo-ids.txt under the per-user data directory.")
	cfgFlag  = flag.String("config", "", "Config file path. Defaults to $XDG_CONFIG_HOME/eppids/config.toml.")
	timeout  = flag.String("timeout", "", "Bound on the registry fetch, e.g. 20m.")
	progress = flag.Bool("progress", false, "Show a progress bar while validating records.")
	verbose  = flag.Bool("verbose", false, "Log every accepted identifier, not just the rejected ones.")
)

var yellow = color.New(color.FgYellow).SprintFunc()

var rootCmd = &cobra.Command{
	Use:   "eppids [-url <url>] [-output <path>] [-config <path>] [-timeout <duration>] [-progress] [-verbose]",
	Short: "Regenerate the EPP Repository ID database from the IANA registry",
	Long: `eppids downloads the IANA EPP Repository IDs registry, validates every
entry against the repository identifier rules, and atomically rewrites the
epp-repo-ids.txt database. Invalid entries are skipped and recorded as
comments in the output.`,
	Args: cobra.NoArgs,
	// Silence errors because we will print the error ourselves in main.
	SilenceErrors: true,
	// Don't show usage for every error.
	SilenceUsage: true,
	// RunE because we want errors to affect the return status.
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.Flags(), cmd.ErrOrStderr())
	},
}

// loadConfig layers flag values over the config file over the defaults. For
// the boolean flags only an explicitly set flag overrides the file value.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	path := *cfgFlag
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if *urlFlag != "" {
		cfg.URL = *urlFlag
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *timeout != "" {
		cfg.Timeout = *timeout
	}
	if flags.Changed("progress") {
		cfg.Progress = *progress
	}
	if flags.Changed("verbose") {
		cfg.Verbose = *verbose
	}
	return cfg, nil
}

func run(ctx context.Context, flags *pflag.FlagSet, errOut io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	fetchTimeout, err := cfg.FetchTimeout()
	if err != nil {
		return err
	}
	reg := iana.HTTPRegistry{Client: &httpx.WithUserAgent{BasicClient: http.DefaultClient, UserAgent: userAgent}}
	srcURL := iana.DefaultURL()
	if cfg.URL != "" {
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return errors.Wrap(err, "invalid registry URL")
		}
		reg.URL = u
		srcURL = cfg.URL
	}
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	log.Printf("fetching registry from %s", srcURL)
	body, err := reg.RepositoryIDs(ctx)
	if err != nil {
		return err
	}
	defer body.Close()
	recs, err := validateAll(body, cfg.Progress, cfg.Verbose, errOut)
	if err != nil {
		return err
	}
	outPath := cfg.Output
	if outPath == "" {
		dir, err := datadir.Resolve()
		if err != nil {
			return err
		}
		outPath = filepath.Join(dir, database.FileName)
	}
	err = database.Publish(outPath, func(w io.Writer) error {
		return database.Render(w, recs, time.Now())
	})
	if err != nil {
		return err
	}
	accepted := 0
	for _, rec := range recs {
		if rec.Accepted() {
			accepted++
		}
	}
	if rejected := len(recs) - accepted; rejected > 0 {
		fmt.Fprintln(errOut, yellow("NOTE:"), fmt.Sprintf("%d registry entries were rejected; see comments in %s", rejected, outPath))
	}
	log.Printf("wrote %d identifiers to %s", accepted, outPath)
	return nil
}

// validateAll reads every registry record and validates its identifier,
// preserving registry order. Rejections always reach the log; verbose adds a
// line per accepted identifier.
func validateAll(r io.Reader, showProgress, verbose bool, errOut io.Writer) ([]repoid.Record, error) {
	rd := iana.NewReader(r)
	if err := rd.ReadHeader(); err != nil {
		return nil, err
	}
	type entry struct {
		field string
		num   int
	}
	var entries []entry
	for {
		field, num, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{field: field, num: num})
	}
	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.New(len(entries))
		bar.Output = errOut
		bar.Start()
	}
	recs := make([]repoid.Record, 0, len(entries))
	for _, e := range entries {
		rec := repoid.Validate(e.field, e.num)
		if verbose && rec.Accepted() {
			log.Printf("record %d: accepted %q", e.num, rec.ID)
		}
		recs = append(recs, rec)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return recs, nil
}

func init() {
	rootCmd.Flags().AddGoFlag(flag.Lookup("url"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("output"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("config"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("timeout"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("progress"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("verbose"))
}

func main() {
	// A .env file in the working directory may supply EPPIDS_DATA_HOME and friends.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded .env file")
	}
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
