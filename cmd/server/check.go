// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinemetrics/internal/config"
	"github.com/tomtom215/cinemetrics/internal/dataset"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every configured dataset and report its status",
		Long: `Check loads every dataset the way serve would, prints one line per dataset
and exits non-zero if any of them failed. Use it after regenerating the
notebook output to confirm the files are where the API expects them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runCheck(cfg, cmd.OutOrStdout())
		},
	}
}

// runCheck always loads with the isolate policy so every failure is
// reported, not just the first.
func runCheck(cfg *config.Config, out io.Writer) error {
	registry, err := dataset.LoadRegistry(cfg.Sources(), dataset.PolicyIsolate)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATASET\tEJE\tSTATUS\tROWS\tCOLUMNS\tPATH")
	failed := 0
	for _, st := range registry.Status() {
		status := "ok"
		if !st.Available {
			status = "error: " + st.Error
			failed++
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%s\n", st.Name, st.Eje, status, st.Rows, len(st.Columns), st.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d datasets failed to load", failed, registry.Len())
	}
	fmt.Fprintf(out, "all %d datasets loaded\n", registry.Len())
	return nil
}
