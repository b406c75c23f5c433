package cmd

import (
	"fmt"

	bookview "github.com/bnema/callbook/internal/adapters/render/book"
	"github.com/spf13/cobra"
)

func newAddCmd(app *app) *cobra.Command {
	var name string
	var phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long:  "Add a contact. Missing --name or --phone values are asked for on the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if !cmd.Flags().Changed("name") {
				if name, err = app.lines.Ask(cmd.Context(), "Enter name: "); err != nil {
					return fmt.Errorf("read name: %w", err)
				}
			}
			if !cmd.Flags().Changed("phone") {
				if phone, err = app.lines.Ask(cmd.Context(), "Enter phone number: "); err != nil {
					return fmt.Errorf("read phone number: %w", err)
				}
			}

			return addContact(cmd, app, name, phone)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "contact name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")

	return cmd
}

func newSearchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find a contact by name, offering to call close matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return searchContact(cmd, app, args[0])
		},
	}
}

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), bookview.Contacts(app.service.Contacts()))
			return err
		},
	}
}

func addContact(cmd *cobra.Command, app *app, name, phone string) error {
	if _, err := app.service.AddContact(cmd.Context(), name, phone); err != nil {
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), "Contact saved.")
	return err
}

func searchContact(cmd *cobra.Command, app *app, query string) error {
	result, err := app.service.SearchContact(cmd.Context(), query)
	if err != nil {
		return err
	}

	if result.Found() {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), bookview.Contact(*result.Match))
		return err
	}

	app.logger.Debug("contact search missed", "query", query, "suggestions", len(result.Suggestions))
	return nil
}
