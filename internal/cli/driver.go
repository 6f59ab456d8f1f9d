package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/report"
	"github.com/roach88/mobility/internal/store"
)

// NewDriverCommand creates the driver command group.
func NewDriverCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Look up drivers and update their status",
	}

	cmd.AddCommand(newDriverFindCommand(rootOpts))
	cmd.AddCommand(newDriverShowCommand(rootOpts))
	cmd.AddCommand(newDriverStatusCommand(rootOpts))

	return cmd
}

func newDriverFindCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Find drivers whose name contains a fragment",
		Long: `Find drivers whose name contains a fragment.

Matching ignores case, so "jose" finds "José" and "JOSÉ".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				drivers := reg.FindDriversByName(args[0])
				if f.Format == "json" {
					return f.Success(personViews(drivers))
				}
				return report.Drivers(f.Writer, drivers)
			})
		},
	}
}

func newDriverShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <driver-id>",
		Short:         "Show one driver",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				d, err := reg.FindDriver(args[0])
				if err != nil {
					return f.Fail(ExitFailure, "failed to show driver", err)
				}
				if f.Format == "json" {
					return f.Success(personView(d))
				}
				return report.PersonDetail(f.Writer, reg, d)
			})
		},
	}
}

func newDriverStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <driver-id> <status>",
		Short: "Update the status of a driver",
		Long: `Update the status of a driver.

Statuses: available, on_route (disponible and "en ruta" are also accepted).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			status, err := mobility.ParseDriverStatus(args[1])
			if err != nil {
				return f.Fail(ExitFailure, "invalid status", err)
			}
			return withRegistry(cmd, rootOpts, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				d, err := reg.UpdateDriverStatus(args[0], status)
				if err != nil {
					return f.Fail(ExitFailure, "failed to update driver", err)
				}
				if f.Format == "json" {
					return f.Success(personView(d))
				}
				return f.Success(fmt.Sprintf("Driver %s is now %s.", d.ID, d.Driver.Status))
			})
		},
	}
}
