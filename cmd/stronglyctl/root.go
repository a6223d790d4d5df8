// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/taibuivan/strongly/internal/platform/config"
	"github.com/taibuivan/strongly/internal/platform/constants"
	pgstore "github.com/taibuivan/strongly/internal/platform/postgres"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "stronglyctl",
	Short: "Operator tools for the Strongly API",
	Long: `stronglyctl runs maintenance tasks against the Strongly database.

It reads the same environment (or .env file) as the API server.

COMMANDS:

  migrate up|down    Apply or roll back schema migrations
  seed               Create a demo account with two workouts
  token <username>   Mint a bearer token without a password
  export <format>    Dump every account as json or yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
			With(slog.String("app", constants.AppName+"-ctl"))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// openPool connects to the configured database. Callers close the pool.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return pool, nil
}
