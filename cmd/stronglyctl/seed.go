// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/taibuivan/strongly/internal/admin/seed"
	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/database"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/users/auth"
)

var seedAccount seed.Account

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo account with two workouts",
	Long: `Create a demo account holding two workouts, four exercises and
nine sets. Everything is written in one transaction; if the username is
taken nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		hasher := sec.NewPasswordHasher(cfg.BcryptCost)

		var summary *seed.Summary
		err = database.InTx(ctx, pool, func(tx pgx.Tx) error {
			workouts := workout.NewService(workout.NewPostgresRepository(tx), logger)
			exercises := exercise.NewService(exercise.NewPostgresRepository(tx), workouts, logger)

			var runErr error
			summary, runErr = seed.Run(ctx, seed.Services{
				Auth:      auth.NewService(auth.NewUserRepository(tx), hasher, nil, nil, logger),
				Workouts:  workouts,
				Exercises: exercises,
				Sets:      set.NewService(set.NewPostgresRepository(tx), exercises, logger),
			}, seedAccount)
			return runErr
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}

		color.Green("✓ Seeded user %s (id %d)", seedAccount.Username, summary.UserID)
		fmt.Printf("  %d workouts, %d exercises, %d sets\n", summary.Workouts, summary.Exercises, summary.Sets)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAccount.Username, "username", "demo", "username of the demo account")
	seedCmd.Flags().StringVar(&seedAccount.Password, "password", "Demo!pass1", "password of the demo account")
	seedCmd.Flags().StringVar(&seedAccount.FullName, "full-name", "Demo Lifter", "display name of the demo account")

	rootCmd.AddCommand(seedCmd)
}
