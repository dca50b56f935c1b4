// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholardash/internal/view"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Emit the computed view as JSON or YAML",
	Long: `Export computes the view for the given filters and writes the full
ViewModel (metrics, tables, insights, chart specifications) to stdout or a
file, for consumption by other tooling.`,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("format", "json", "output format: json or yaml")
	exportCmd.Flags().String("out", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	params, err := filterParams(cmd)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	vm := view.Compute(ds, params, cfg.Analysis)

	var w io.Writer = os.Stdout
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vm)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(vm)
	default:
		return fmt.Errorf("unknown format %q: use json or yaml", format)
	}
}
