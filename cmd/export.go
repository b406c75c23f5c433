package cmd

import (
	"fmt"
	"os"

	tomlrepo "github.com/bnema/callbook/internal/adapters/repo/toml"
	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a TOML snapshot of the whole contact book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := tomlrepo.Encode(app.service.Book())
			if err != nil {
				return fmt.Errorf("encode contact book: %w", err)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			app.logger.Info("contact book exported", "file", output, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")

	return cmd
}
