package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/report"
	"github.com/roach88/mobility/internal/store"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print routes, incidents and people",
		Long: `Print every route, incident and person in stored order.

With --format json the full registry snapshot is returned.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				if f.Format == "json" {
					return f.Success(reg.Export())
				}
				return report.Full(f.Writer, reg)
			})
		},
	}
}
