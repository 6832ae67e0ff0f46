package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/cmd/striprc/opts"
	"github.com/walteh/striprc/pkg/operation"
)

// NewRelocateCmd creates a new relocate command
func NewRelocateCmd(ro *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "relocate",
		Short: "Move .old backups into the backup directory",
		Long: `Relocate moves every .old backup in the source directory into the
backup directory, including backups left over from earlier runs. The
backup directory must already exist.`,
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
			return runner.Run(ctx, operation.Step{Name: "relocate", Execute: op.Relocate})
		},
	}
}
