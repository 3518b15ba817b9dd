package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/racekit/stocopy/cmd/stocopy/opts"
	"github.com/racekit/stocopy/pkg/iracing"
	"github.com/racekit/stocopy/pkg/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	sourceDir string
	setupsDir string
	debug     bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&sourceDir, "source", "s", ".", "directory containing the .sto files to distribute")
	cmd.PersistentFlags().StringVar(&setupsDir, "setups", "", "iRacing setups directory (default <home>/Documents/iRacing/setups)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// fillRootOpts resolves the source and destination directories after flag
// parsing and wires the shared dependencies into o
func fillRootOpts(ctx context.Context, o *opts.RootOpts) error {
	o.UserLogger = report.NewUserLogger(ctx)

	source, err := filepath.Abs(sourceDir)
	if err != nil {
		return errors.Errorf("resolving source directory: %w", err)
	}
	o.Source = source

	dir := setupsDir
	if dir == "" {
		dir, err = iracing.DefaultSetupsDir()
		if err != nil {
			return errors.Errorf("locating setups directory: %w", err)
		}
	}

	resolved, err := iracing.Resolve(dir)
	if err != nil {
		return errors.Errorf("checking setups directory: %w", err)
	}
	o.SetupsDir = resolved

	return nil
}
