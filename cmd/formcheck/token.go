package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/formcheck-backend/internal/auth"
	"github.com/heartmarshall/formcheck-backend/internal/config"
)

func newTokenCmd() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an author access token (reads AUTH_* environment variables)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authorID, err := uuid.Parse(author)
			if err != nil {
				return fmt.Errorf("invalid --author: %w", err)
			}

			var cfg config.AuthConfig
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return fmt.Errorf("read auth config: %w", err)
			}

			token, err := auth.NewJWTManagerFromConfig(cfg).GenerateAccessToken(authorID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "author id (UUID)")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
