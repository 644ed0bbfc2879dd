// localedemo is a terminal demo of resource-bundle-driven localization: a
// country picker and a detail screen whose every label and value comes from
// the message file of the active locale.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/localedemo/internal/catalog"
	"github.com/jask/localedemo/internal/config"
	"github.com/jask/localedemo/internal/database"
	"github.com/jask/localedemo/internal/database/repository"
	"github.com/jask/localedemo/internal/logging"
	"github.com/jask/localedemo/internal/resources"
	"github.com/jask/localedemo/internal/tui"
)

var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("localedemo", pflag.ContinueOnError)
	flags.SetOutput(stdout)
	config.AddFlags(flags)
	showVersion := flags.Bool("version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flags: %w", err)
	}
	if *showVersion {
		fmt.Fprintln(stdout, "localedemo", version)
		return nil
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	bundle, err := resources.Load(cfg.Resources.Dir, cfg.Locale)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	table, err := catalog.Load(bundle)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "locale", table.Tag.String(), "countries", table.Len())

	opts := tui.Options{
		DefaultIndex: cfg.UI.DefaultIndex,
		HistoryLimit: cfg.History.Limit,
		Logger:       logger,
	}
	if cfg.History.Enabled {
		db, err := database.OpenMigrated(cfg.Database.Path)
		if err != nil {
			// history is optional; the demo still runs without it
			logger.Warn("history unavailable", "path", cfg.Database.Path, "error", err)
		} else {
			defer db.Close()
			opts.History = repository.NewViewRepo(db)
		}
	}

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, table, opts), progOpts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
