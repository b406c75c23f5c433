package cmd

import (
	"github.com/bnema/callbook/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	app := &app{}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "cb",
		Short:         "callbook (cb): a personal contact book with timed calls",
		Long:          "cb keeps your contacts, simulates timed phone calls, tracks talk time per contact, offers long calls for your favourites and remembers who you contacted last.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, cfg, configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/callbook/config.toml)")
	flags.String("data-dir", "", "directory holding the contact book files")
	flags.String("storage", "", "storage format: text or toml")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")

	_ = cfg.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir"))
	_ = cfg.BindPFlag(config.KeyStorageFormat, flags.Lookup("storage"))
	_ = cfg.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = cfg.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newAddCmd(app),
		newSearchCmd(app),
		newCallCmd(app),
		newMostTalkedCmd(app),
		newFavouritesCmd(app),
		newRecentCmd(app),
		newListCmd(app),
		newExportCmd(app),
		newMenuCmd(app),
	)

	return rootCmd
}
