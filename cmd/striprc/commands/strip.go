package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/cmd/striprc/opts"
	"github.com/walteh/striprc/pkg/operation"
)

// NewStripCmd creates a new strip command
func NewStripCmd(ro *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "strip",
		Short: "Strip marker lines, leaving .old backups in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := operation.New(operation.Options{
				Config:     ro.Config,
				UserLogger: ro.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), ro.Config.Async)
			return runner.Run(ctx, operation.Step{Name: "strip", Execute: op.Strip})
		},
	}
}
