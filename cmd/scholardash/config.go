// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholardash/internal/dataset"
	"github.com/pdiddy/scholardash/pkg/types"
)

// loadConfig assembles the runtime configuration from the viper sources
// (config file, environment, defaults) plus the persistent --data override.
func loadConfig(cmd *cobra.Command) types.Config {
	viper.SetDefault("dataset.path", types.DefaultDatasetPath)
	viper.SetDefault("server.addr", types.DefaultServerAddr)
	viper.SetDefault("snapshot.path", types.DefaultSnapshotPath)

	cfg := types.Config{
		Dataset: types.DatasetConfig{
			Path: viper.GetString("dataset.path"),
		},
		Analysis: types.AnalysisConfig{
			ConsistencyEpsilon:    viper.GetFloat64("analysis.consistency_epsilon"),
			ConsistencyMinRecords: viper.GetInt("analysis.consistency_min_records"),
			EliteTop1Threshold:    viper.GetFloat64("analysis.elite_top1_threshold"),
			EarlyPeriodEnd:        viper.GetInt("analysis.early_period_end"),
			RecentPeriodStart:     viper.GetInt("analysis.recent_period_start"),
			TopN:                  viper.GetInt("analysis.top_n"),
			ExcellenceTopN:        viper.GetInt("analysis.excellence_top_n"),
		},
		Server: types.ServerConfig{
			Addr:         viper.GetString("server.addr"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
		},
		Snapshot: types.SnapshotConfig{
			Path: viper.GetString("snapshot.path"),
		},
	}
	cfg.Analysis = cfg.Analysis.Normalized()

	if override, _ := cmd.Root().PersistentFlags().GetString("data"); override != "" {
		cfg.Dataset.Path = override
	}
	return cfg
}

// loadDataset loads the publications CSV named by the configuration.
func loadDataset(cfg types.Config) (*dataset.Dataset, error) {
	return dataset.Load(cfg.Dataset.Path)
}
