// Package cli wires the tubegrab commands: the HTTP daemon and a one-shot
// download mode sharing the same fetch stack.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/fetcher"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
	"github.com/tubegrab/tubegrab/internal/platform"
)

var cfgFile string

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tubegrab",
		Short:        "Background task manager for media-fetch jobs",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads config, opens the logger, prepares the output directory, and
// wires the yt-dlp collaborator into a fresh application context.
func setup() (*app.Context, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := platform.ValidateDependencies(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Path, logger.ParseLevel(cfg.Log.Level), cfg.Log.IncludeStdout)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	if err := os.MkdirAll(cfg.Download.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create out_dir: %w", err)
	}

	appCtx := app.NewContext(cfg, log)
	appCtx.Fetcher = fetcher.New(cfg.Download.OutDir, log)

	return appCtx, nil
}
