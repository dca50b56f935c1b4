// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/scholardash/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser dashboard",
	Long: `Serve loads the publications CSV once and serves the interactive
dashboard: an HTML page with charts plus a JSON API (/api/view,
/api/filters). The dataset is held read-only for the process lifetime; every
filter change recomputes the view from the cached records.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().Bool("dev-log", false, "use human-readable development logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	var log *zap.Logger
	var err error
	if dev, _ := cmd.Flags().GetBool("dev-log"); dev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	defer log.Sync()

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	minYear, maxYear := ds.YearBounds()
	log.Info("dataset loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("records", ds.Len()),
		zap.Int("countries", len(ds.Countries())),
		zap.Int("min_year", minYear),
		zap.Int("max_year", maxYear),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(ds, cfg, log).Run(ctx)
}
