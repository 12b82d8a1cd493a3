package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/formfile"
)

func newLintCmd() *cobra.Command {
	var formPath string

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check a form definition file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := formfile.LoadForm(formPath)
			if err != nil {
				var ve *domain.ValidationError
				if errors.As(err, &ve) {
					for _, fe := range ve.Errors {
						cmd.PrintErrf("%s: %s: %s\n", formPath, fe.Field, fe.Message)
					}
					return fmt.Errorf("%s: %d problems", formPath, len(ve.Errors))
				}
				return err
			}

			quiz := 0
			for _, f := range input.Fields {
				if f.Quiz != nil {
					quiz++
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d fields, %d quiz)\n", formPath, len(input.Fields), quiz)
			return err
		},
	}

	cmd.Flags().StringVar(&formPath, "form", "", "path to the form definition (YAML)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}
