package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/cmd/striprc/opts"
	"github.com/walteh/striprc/pkg/operation"
)

// RunAll performs a full run: strip every matched file, then relocate
// the backups. This is the whole original tool in one shot.
func RunAll(ctx context.Context, ro *opts.RootOpts) error {
	op, err := operation.New(operation.Options{
		Config:     ro.Config,
		UserLogger: ro.UserLogger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	runner := operation.NewRunner(zerolog.Ctx(ctx), ro.Config.Async)
	return runner.Run(ctx,
		operation.Step{Name: "strip", Execute: op.Strip},
		operation.Step{Name: "relocate", Execute: op.Relocate},
	)
}

// NewRunCmd creates a new run command
func NewRunCmd(ro *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Strip marker lines and relocate backups",
		Long: `Run performs the full pass over the source directory. It will:
1. Rewrite each matched file without its marker lines
2. Keep each original as a .old backup
3. Move all .old backups into the backup directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunAll(cmd.Context(), ro)
		},
	}
}
