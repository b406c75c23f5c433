package cmd

import (
	"fmt"
	"io"

	bookview "github.com/bnema/callbook/internal/adapters/render/book"
	"github.com/spf13/cobra"
)

func newCallCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <name>",
		Short: "Start a timed call with a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callContact(cmd, app, args[0])
		},
	}
}

func newMostTalkedCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "most-talked",
		Short: "Show the contact with the most talk time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showMostTalked(cmd.OutOrStdout(), app)
		},
	}
}

func newFavouritesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "favourites",
		Aliases: []string{"favorites"},
		Short:   "List favourite contacts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showFavourites(cmd.OutOrStdout(), app)
		},
	}
}

func newRecentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently contacted name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showRecent(cmd.OutOrStdout(), app)
		},
	}
}

func callContact(cmd *cobra.Command, app *app, name string) error {
	result, err := app.service.SimulateCall(cmd.Context(), name)
	if err != nil {
		return err
	}

	app.logger.Debug("call recorded",
		"name", result.Name,
		"seconds", result.Seconds,
		"long_call", result.LongCall,
		"favourited", result.Favourited,
	)
	return nil
}

func showMostTalked(out io.Writer, app *app) error {
	top, err := app.service.MostTalked()
	if err != nil {
		return printEmptyState(out, err)
	}

	_, err = fmt.Fprintln(out, bookview.MostTalked(top))
	return err
}

func showFavourites(out io.Writer, app *app) error {
	names, err := app.service.Favourites()
	if err != nil {
		return printEmptyState(out, err)
	}

	_, err = fmt.Fprintln(out, bookview.Favourites(names))
	return err
}

func showRecent(out io.Writer, app *app) error {
	name, err := app.service.RecentlyContacted()
	if err != nil {
		return printEmptyState(out, err)
	}

	_, err = fmt.Fprintln(out, bookview.Recent(name))
	return err
}

// printEmptyState reports empty collections as a message rather than a
// failure. Any other error is returned unchanged.
func printEmptyState(out io.Writer, err error) error {
	msg, ok := bookview.Empty(err)
	if !ok {
		return err
	}

	_, writeErr := fmt.Fprintln(out, msg)
	return writeErr
}
