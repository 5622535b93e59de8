// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package cli implements the hydro command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	stdhttp "net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wneessen/hydro/internal/config"
	"github.com/wneessen/hydro/internal/http"
	"github.com/wneessen/hydro/internal/logger"
	"github.com/wneessen/hydro/internal/presenter"
	"github.com/wneessen/hydro/internal/scrape"
	"github.com/wneessen/hydro/internal/service"
)

// App holds the state shared by all hydro commands of one invocation.
type App struct {
	stdout    io.Writer
	stderr    io.Writer
	version   string
	transport stdhttp.RoundTripper

	confPath string
	debug    bool

	config  *config.Config
	logger  *logger.Logger
	service *service.Service
}

// Execute runs hydro with args and returns the process exit code.
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	app := &App{stdout: stdout, stderr: stderr, version: version}
	return app.run(ctx, args)
}

func (a *App) run(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		log := a.logger
		if log == nil {
			log = a.newLogger(slog.LevelError)
		}
		log.Error("hydro failed", logger.Err(err))
		return 1
	}
	return 0
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hydro",
		Short: "Retrieve station information from hydrodaten.admin.ch",
		Long: `hydro lists the hydrological measurement stations published by the Swiss
Federal Office for the Environment on hydrodaten.admin.ch and keeps a set of
favorite stations in <config_dir>/hydro/favorites.json.

Examples:
  # List the first ten stations on the river Aare
  hydro list --water aare --first 10

  # Show current water temperatures with station URLs
  hydro list --temperatures -u

  # Show the details of a single station
  hydro get 2135

  # Remember stations and list them
  hydro fav add 2135 2416
  hydro fav -t`,
		Version:           a.version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.confPath, "config", "c", "", "path to the config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(a.listCmd(), a.getCmd(), a.favCmd())
	return root
}

// setup loads the configuration and wires the service before any command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	conf, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.config = conf

	level := conf.LogLevel
	if a.debug {
		level = slog.LevelDebug
	}
	a.logger = a.newLogger(level)
	a.logger.Debug("starting hydro", slog.String("version", a.version), slog.String("command", cmd.CommandPath()))

	client := http.NewWithTimeout(a.logger, conf.HTTP.Timeout)
	if a.transport != nil {
		client.Transport = a.transport
	}
	a.service = service.New(conf, a.logger, client)
	return nil
}

func (a *App) loadConfig() (*config.Config, error) {
	if a.confPath != "" {
		conf, err := config.NewFromFile(filepath.Dir(a.confPath), filepath.Base(a.confPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		return conf, nil
	}
	if path, file := config.FindFile(); path != "" && file != "" {
		conf, err := config.NewFromFile(path, file)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		return conf, nil
	}
	conf, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return conf, nil
}

func (a *App) newLogger(level slog.Level) *logger.Logger {
	if a.stderr == os.Stderr {
		return logger.New(level)
	}
	return logger.NewLogger(level, a.stderr)
}

// presenter returns a Presenter for stations scraped from page.
func (a *App) presenter(page scrape.Page, url bool) *presenter.Presenter {
	return &presenter.Presenter{
		URL:          url,
		Measurements: page.Measurements,
		Bold:         a.bold(),
	}
}

func (a *App) bold() bool {
	if a.config != nil && a.config.Output.NoColor {
		return false
	}
	file, ok := a.stdout.(*os.File)
	return ok && logger.ColorEnabled(file)
}

func pageFor(temperatures bool) scrape.Page {
	if temperatures {
		return scrape.TemperaturePage
	}
	return scrape.IndexPage
}
