package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/report"
	"github.com/roach88/mobility/internal/store"
)

// IncidentAddOptions holds flags for the incident add command.
type IncidentAddOptions struct {
	*RootOptions
	ID          string
	Type        string
	Location    string
	Time        string
	Description string
}

// NewIncidentCommand creates the incident command group.
func NewIncidentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incident",
		Short: "Report and track incidents",
	}

	cmd.AddCommand(newIncidentAddCommand(rootOpts))
	cmd.AddCommand(newIncidentListCommand(rootOpts))
	cmd.AddCommand(newIncidentSortCommand(rootOpts))
	cmd.AddCommand(newIncidentShowCommand(rootOpts))
	cmd.AddCommand(newIncidentStatusCommand(rootOpts))

	return cmd
}

func newIncidentAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IncidentAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Report an incident",
		Long: `Report an incident. New incidents start as pending.

Types: THEFT, ACCIDENT, FIRE, OTHER (ROBO, ACCIDENTE, INCENDIO and OTRO are
also accepted). The time defaults to now and may be given as
"2006-01-02 15:04:05" (local time) or RFC3339.

Example:
  mobility incident add --type ACCIDENT --location "Av. 5" --time "2024-03-01 12:30:00"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncidentAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "incident id (generated if empty)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "incident type (required)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "where it happened (required)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "when it happened (default now)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "free-form description")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func runIncidentAdd(opts *IncidentAddOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	typ, err := mobility.ParseIncidentType(opts.Type)
	if err != nil {
		return f.Fail(ExitFailure, "invalid --type", err)
	}
	at := opts.now()
	if opts.Time != "" {
		if at, err = parseTime(opts.Time); err != nil {
			return f.Fail(ExitFailure, "invalid --time", err)
		}
	}
	id := opts.ID
	if id == "" {
		id = opts.ids().Generate()
	}

	return withRegistry(cmd, opts.RootOptions, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
		inc, err := reg.RegisterIncident(mobility.Incident{
			ID:          id,
			Type:        typ,
			Location:    opts.Location,
			OccurredAt:  at,
			Description: opts.Description,
		})
		if err != nil {
			return f.Fail(ExitFailure, "failed to register incident", err)
		}
		if f.Format == "json" {
			return f.Success(inc.Record())
		}
		return f.Success(fmt.Sprintf("Incident %s reported.", inc.ID))
	})
}

func newIncidentListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List incidents in stored order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				if f.Format == "json" {
					return f.Success(incidentRecords(reg.Incidents()))
				}
				return report.Incidents(f.Writer, "Incidents:", reg.Incidents())
			})
		},
	}
}

func newIncidentSortCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sort",
		Short:         "Sort incidents by time, most recent first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				swaps := reg.SortIncidentsByTime()
				if f.Format == "json" {
					return f.Success(SortResult[mobility.IncidentRecord]{Swaps: swaps, Records: incidentRecords(reg.Incidents())})
				}
				return report.Incidents(f.Writer, "Incidents sorted by date:", reg.Incidents())
			})
		},
	}
}

func newIncidentShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <incident-id>",
		Short:         "Show one incident",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				inc, err := reg.FindIncident(args[0])
				if err != nil {
					return f.Fail(ExitFailure, "failed to show incident", err)
				}
				if f.Format == "json" {
					return f.Success(inc.Record())
				}
				return report.IncidentDetail(f.Writer, inc)
			})
		},
	}
}

func newIncidentStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <incident-id> <status>",
		Short: "Update the status of an incident",
		Long: `Update the status of an incident.

Statuses: pending, in_progress, resolved (pendiente, "en proceso" and
resuelto are also accepted).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			status, err := mobility.ParseIncidentStatus(args[1])
			if err != nil {
				return f.Fail(ExitFailure, "invalid status", err)
			}
			return withRegistry(cmd, rootOpts, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				inc, err := reg.UpdateIncidentStatus(args[0], status)
				if err != nil {
					return f.Fail(ExitFailure, "failed to update incident", err)
				}
				if f.Format == "json" {
					return f.Success(inc.Record())
				}
				return f.Success(fmt.Sprintf("Incident %s is now %s.", inc.ID, inc.Status))
			})
		},
	}
}
