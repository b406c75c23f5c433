package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	bookview "github.com/bnema/callbook/internal/adapters/render/book"
	"github.com/spf13/cobra"
)

const (
	choiceAdd        = "1"
	choiceSearch     = "2"
	choiceCall       = "3"
	choiceMostTalked = "4"
	choiceFavourites = "5"
	choiceRecent     = "6"
	choiceExit       = "7"
)

func newMenuCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive numbered menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}
}

// runMenu loops until the exit choice or the end of input.
func runMenu(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()

	for {
		if _, err := fmt.Fprintf(out, "\n%s\n", bookview.Menu); err != nil {
			return err
		}

		choice, err := app.lines.Ask(cmd.Context(), "Enter choice: ")
		if err != nil {
			return endOfInput(out, err)
		}

		switch strings.TrimSpace(choice) {
		case choiceAdd:
			name, err := app.lines.Ask(cmd.Context(), "Enter name: ")
			if err != nil {
				return endOfInput(out, err)
			}
			phone, err := app.lines.Ask(cmd.Context(), "Enter phone number: ")
			if err != nil {
				return endOfInput(out, err)
			}
			if err := addContact(cmd, app, name, phone); err != nil {
				return err
			}
		case choiceSearch:
			query, err := app.lines.Ask(cmd.Context(), "Enter name to search: ")
			if err != nil {
				return endOfInput(out, err)
			}
			if err := searchContact(cmd, app, query); err != nil {
				return err
			}
		case choiceCall:
			name, err := app.lines.Ask(cmd.Context(), "Enter name to call: ")
			if err != nil {
				return endOfInput(out, err)
			}
			if err := callContact(cmd, app, name); err != nil {
				return err
			}
		case choiceMostTalked:
			if err := showMostTalked(out, app); err != nil {
				return err
			}
		case choiceFavourites:
			if err := showFavourites(out, app); err != nil {
				return err
			}
		case choiceRecent:
			if err := showRecent(out, app); err != nil {
				return err
			}
		case choiceExit:
			return nil
		default:
			if _, err := fmt.Fprintln(out, "Invalid choice."); err != nil {
				return err
			}
		}
	}
}

// endOfInput ends the menu quietly when the input is closed.
func endOfInput(out io.Writer, err error) error {
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("read menu input: %w", err)
	}

	_, _ = fmt.Fprintln(out)
	return nil
}
