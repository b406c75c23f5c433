package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bnema/callbook/internal/adapters/prompt/line"
	"github.com/bnema/callbook/internal/adapters/prompt/tui"
	textrepo "github.com/bnema/callbook/internal/adapters/repo/text"
	tomlrepo "github.com/bnema/callbook/internal/adapters/repo/toml"
	"github.com/bnema/callbook/internal/application"
	"github.com/bnema/callbook/internal/config"
	"github.com/bnema/callbook/internal/logger"
	"github.com/bnema/callbook/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	config  config.Config
	logger  *slog.Logger
	service *application.Service
	// lines owns the command input; menu reads and call prompts share it.
	lines *line.Prompter
}

func (a *app) wire(cmd *cobra.Command, cfg *viper.Viper, configFile string) error {
	loaded, err := config.Load(cfg, configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(loaded.Log, cmd.ErrOrStderr())

	repos, err := openRepositories(loaded, log)
	if err != nil {
		return fmt.Errorf("wire %s repositories: %w", loaded.StorageFormat, err)
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	lines := line.New(in, out)

	var prompter ports.Prompter = lines
	if isTerminal(in) && isTerminal(out) {
		prompter = tui.New(lines, in, out)
	}

	service := application.NewService(repos, prompter, ports.SystemClock{})
	if err := service.Load(cmd.Context()); err != nil {
		return fmt.Errorf("load contact book: %w", err)
	}

	log.Debug("contact book loaded",
		"dir", loaded.DataDir,
		"storage", loaded.StorageFormat,
		"contacts", len(service.Contacts()),
	)

	a.config = loaded
	a.logger = log
	a.service = service
	a.lines = lines
	return nil
}

func openRepositories(cfg config.Config, log *slog.Logger) (ports.Repositories, error) {
	switch cfg.StorageFormat {
	case config.StorageTOML:
		return tomlrepo.NewRepositories(filepath.Join(cfg.DataDir, tomlrepo.BookFile), log)
	default:
		return textrepo.NewRepositories(cfg.DataDir, log)
	}
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
