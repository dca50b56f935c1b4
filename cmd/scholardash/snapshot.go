// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholardash/internal/analysis"
	"github.com/pdiddy/scholardash/internal/store"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write filtered records and aggregates to a SQLite database",
	Long: `Snapshot applies the given filters and writes the matching records plus
their per-country and per-year aggregates to a SQLite file, replacing any
previous snapshot, so the numbers behind the dashboard can be queried with
plain SQL.`,
	RunE: runSnapshot,
}

func init() {
	addFilterFlags(snapshotCmd)
	snapshotCmd.Flags().String("out", "", "SQLite file to write (overrides config)")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	params, err := filterParams(cmd)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Snapshot.Path = out
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	records := ds.Filter(params)
	summary, err := store.Snapshot(cmd.Context(), cfg.Snapshot.Path,
		records,
		analysis.AggregateByCountry(records),
		analysis.AggregateByYear(records),
	)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot %s: %d records, %d countries, %d years\n",
		cfg.Snapshot.Path, summary.Records, summary.Countries, summary.Years)
	return nil
}
