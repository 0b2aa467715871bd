// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/tomtom215/cinemetrics/docs" // registers the OpenAPI document served at /docs
	"github.com/tomtom215/cinemetrics/internal/config"
	"github.com/tomtom215/cinemetrics/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cinemetrics",
		Short: "Cinemetrics serves the TMDB movie analysis results over HTTP",
		Long: `Cinemetrics loads the CSV files written by the movie analysis notebook
and exposes them as a read-only JSON API with sorting, filtering and row limits.

Running without a subcommand is the same as "cinemetrics serve".`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $CONFIG_PATH, config.yaml or /etc/cinemetrics/config.yaml)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig loads configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithKoanf(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.Logging.LoggingOptions())
	return cfg, nil
}
