// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/users/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token <username>",
	Short: "Mint a bearer token for an existing user",
	Long: `Mint a bearer token for an existing user without checking a password.
The token is printed alone on stdout so it can be captured by scripts:

  TOKEN=$(stronglyctl token demo)
  curl -H "Authorization: Bearer $TOKEN" localhost:8080/api/workouts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTExpiry)
		if err != nil {
			return err
		}

		service := auth.NewService(auth.NewUserRepository(pool), sec.NewPasswordHasher(cfg.BcryptCost), tokens, nil, logger)
		token, err := service.IssueToken(ctx, args[0])
		if err != nil {
			return fmt.Errorf("issue token for %s: %w", args[0], err)
		}

		if cfg.AuthScheme != constants.AuthSchemeBearer {
			color.Yellow("AUTH_SCHEME is %q; the API will not accept this token", cfg.AuthScheme)
		}
		fmt.Println(token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
