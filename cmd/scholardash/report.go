// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholardash/internal/report"
	"github.com/pdiddy/scholardash/internal/view"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a terminal report for the filtered dataset",
	Long: `Report computes the same view as the browser dashboard and renders it
as colored tables and narrative findings on stdout.`,
	RunE: runReport,
}

func init() {
	addFilterFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	params, err := filterParams(cmd)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	report.Render(os.Stdout, view.Compute(ds, params, cfg.Analysis))
	return nil
}
