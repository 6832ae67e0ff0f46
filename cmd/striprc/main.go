package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/walteh/striprc/cmd/striprc/commands"
	"github.com/walteh/striprc/cmd/striprc/opts"
	"github.com/walteh/striprc/pkg/log"
)

func main() {
	// Create root command
	rootOpts := &opts.RootOpts{}
	rootCmd := &cobra.Command{
		Use:   "striprc",
		Short: "A tool for stripping instructional marker lines from book source listings",
		Long: `striprc removes marker lines (lines whose trimmed text starts with //<
or //>) from source listings, keeps the originals as .old backups, and
relocates the backups into a designated directory.

Run without a subcommand it performs a full run: strip then relocate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are parsed by now; wire logging and config
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)

			ro, err := newRootOpts(ctx, cmd)
			if err != nil {
				return err
			}
			*rootOpts = *ro
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunAll(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewStripCmd(rootOpts),
		commands.NewRelocateCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
	)

	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		exit(log.NewUserLogger(ctx), "Command failed", err)
	}
}
