package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/cmd/striprc/opts"
	"github.com/walteh/striprc/pkg/config"
	"github.com/walteh/striprc/pkg/log"
)

var (
	// Flags
	configFile string
	debug      bool
	srcDir     string
	backupDir  string
	async      bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".striprc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&srcDir, "src", "", "override source directory")
	cmd.PersistentFlags().StringVar(&backupDir, "backup-dir", "", "override backup directory")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run passes through the async runner")
}

// setupLogging configures zerolog based on flags and returns a context
// carrying the logger
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return logger.WithContext(ctx)
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context, cmd *cobra.Command) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := log.NewUserLogger(ctx)

	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Apply flag overrides
	if cmd.Flags().Changed("src") {
		cfg.SourceDir = srcDir
	}
	if cmd.Flags().Changed("backup-dir") {
		cfg.BackupDir = backupDir
	}
	if cmd.Flags().Changed("async") {
		cfg.Async = async
	}

	return &opts.RootOpts{
		Config:     cfg,
		UserLogger: userLogger,
	}, nil
}

// exit reports a fatal error to the user and exits nonzero
func exit(userLogger *log.UserLogger, msg string, err error) {
	userLogger.LogValidation(false, msg, err)
	os.Exit(1)
}
