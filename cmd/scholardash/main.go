// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholardash CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scholardash CLI.
var rootCmd = &cobra.Command{
	Use:   "scholardash",
	Short: "Analytical dashboard over national research-publication metrics",
	Long: `scholardash loads a Web of Science publications CSV (one row per country
and year), applies filters, and computes descriptive aggregations: volume and
quality rankings, collaboration advantage, excellence concentration, and
consistency of performance.

Each surface is a subcommand: serve runs the browser dashboard, report prints
a terminal report, export emits the computed view as JSON or YAML, and
snapshot writes records and aggregates to a SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholardash.yaml or ~/.config/scholardash/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "publications CSV path (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholardash")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholardash"))
		}
	}

	viper.SetEnvPrefix("SCHOLARDASH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
