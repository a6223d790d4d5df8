// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/strongly/internal/admin/export"
	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/users/auth"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export every account and its training log",
	Long: `Export every account with its workouts, exercises and sets.

FORMATS:

  json   Indented JSON
  yaml   YAML

EXAMPLES:

  stronglyctl export json
  stronglyctl export yaml -o backup.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{export.FormatJSON, export.FormatYAML},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		workouts := workout.NewService(workout.NewPostgresRepository(pool), logger)
		exercises := exercise.NewService(exercise.NewPostgresRepository(pool), workouts, logger)

		document, err := export.Collect(ctx, export.Sources{
			Users:     auth.NewUserRepository(pool),
			Workouts:  workouts,
			Exercises: exercises,
			Sets:      set.NewService(set.NewPostgresRepository(pool), exercises, logger),
		}, time.Now())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		data, err := document.Encode(args[0])
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported %d users to %s", len(document.Users), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
