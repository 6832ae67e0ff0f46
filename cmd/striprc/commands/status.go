package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/striprc/cmd/striprc/opts"
	"github.com/walteh/striprc/pkg/operation"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(ro *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report which files still carry marker lines, without modifying anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := operation.New(operation.Options{
				Config:     ro.Config,
				UserLogger: ro.UserLogger,
				Console:    cmd.OutOrStdout(),
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			_, err = op.Status(ctx)
			return err
		},
	}
}
