package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/formcheck-backend/internal/app"
	"github.com/heartmarshall/formcheck-backend/internal/config"
)

// errRejected signals that the evaluated answers were rejected.
var errRejected = errors.New("submission rejected")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate form answers offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newLintCmd())
	root.AddCommand(newTokenCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func commandLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return app.NewLogger(config.LogConfig{Level: level, Format: "text"})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return err
		},
	}
}
