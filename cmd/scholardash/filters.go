// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholardash/pkg/types"
)

// addFilterFlags registers the shared filter flags on a command that
// computes a view (report, export, snapshot).
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("country", "", "restrict to a single country (default: all)")
	cmd.Flags().Int("from-year", 0, "inclusive lower year bound (default: data minimum)")
	cmd.Flags().Int("to-year", 0, "inclusive upper year bound (default: data maximum)")
	cmd.Flags().Float64("min-cnci", 0, "minimum CNCI threshold")
}

// filterParams reads the shared filter flags back into FilterParams.
func filterParams(cmd *cobra.Command) (types.FilterParams, error) {
	var params types.FilterParams
	params.Country, _ = cmd.Flags().GetString("country")
	params.MinYear, _ = cmd.Flags().GetInt("from-year")
	params.MaxYear, _ = cmd.Flags().GetInt("to-year")
	params.MinCNCI, _ = cmd.Flags().GetFloat64("min-cnci")

	if params.MinCNCI < 0 {
		return params, fmt.Errorf("--min-cnci must not be negative")
	}
	if params.MaxYear > 0 && params.MinYear > params.MaxYear {
		return params, fmt.Errorf("--from-year %d exceeds --to-year %d", params.MinYear, params.MaxYear)
	}
	return params, nil
}
