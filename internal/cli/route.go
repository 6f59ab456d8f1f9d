package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/report"
	"github.com/roach88/mobility/internal/store"
)

// RouteAddOptions holds flags for the route add command.
type RouteAddOptions struct {
	*RootOptions
	ID            string
	Distance      float64
	EstimatedTime int
	Start         string
	End           string
}

// NewRouteCommand creates the route command group.
func NewRouteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Register, list and rank routes",
	}

	cmd.AddCommand(newRouteAddCommand(rootOpts))
	cmd.AddCommand(newRouteListCommand(rootOpts))
	cmd.AddCommand(newRouteSortCommand(rootOpts))
	cmd.AddCommand(newRouteBestCommand(rootOpts))
	cmd.AddCommand(newRouteShowCommand(rootOpts))

	return cmd
}

func newRouteAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RouteAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a route",
		Long: `Register a route between two points.

Distance is in kilometres and estimated time in minutes; both must be
positive. A UUIDv7 id is generated when --id is omitted.

Example:
  mobility route add --id R1 --distance 10 --time 15 --start Centro --end Norte`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRouteAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "route id (generated if empty)")
	cmd.Flags().Float64Var(&opts.Distance, "distance", 0, "distance in km (required)")
	cmd.Flags().IntVar(&opts.EstimatedTime, "time", 0, "estimated time in minutes (required)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "start point (required)")
	cmd.Flags().StringVar(&opts.End, "end", "", "end point (required)")
	for _, name := range []string{"distance", "time", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runRouteAdd(opts *RouteAddOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	id := opts.ID
	if id == "" {
		id = opts.ids().Generate()
	}

	return withRegistry(cmd, opts.RootOptions, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
		route, err := reg.RegisterRoute(mobility.Route{
			ID:            id,
			Distance:      opts.Distance,
			EstimatedTime: opts.EstimatedTime,
			Start:         opts.Start,
			End:           opts.End,
		})
		if err != nil {
			return f.Fail(ExitFailure, "failed to register route", err)
		}
		if f.Format == "json" {
			return f.Success(route.Record())
		}
		return f.Success(fmt.Sprintf("Route %s registered.", route.ID))
	})
}

func newRouteListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List routes in stored order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				if f.Format == "json" {
					return f.Success(routeRecords(reg.Routes()))
				}
				return report.Routes(f.Writer, "Routes:", reg.Routes())
			})
		},
	}
}

func newRouteSortCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort routes by distance, shortest first",
		Long: `Sort routes by distance, shortest first, and store the new order.

Routes with equal distance keep their relative order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				swaps := reg.SortRoutesByDistance()
				if f.Format == "json" {
					return f.Success(SortResult[mobility.RouteRecord]{Swaps: swaps, Records: routeRecords(reg.Routes())})
				}
				return report.Routes(f.Writer, "Routes sorted by distance:", reg.Routes())
			})
		},
	}
}

func newRouteBestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "best",
		Short: "Show the route with the lowest distance plus estimated time",
		Long: `Show the route with the lowest distance plus estimated time.

When several routes share the lowest score the first one in stored order wins.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				best, ok := reg.BestRoute()
				if f.Format == "json" {
					var rec *mobility.RouteRecord
					if ok {
						r := best.Record()
						rec = &r
					}
					return f.Success(map[string]*mobility.RouteRecord{"route": rec})
				}
				if !ok {
					return f.Success("No routes registered.")
				}
				return report.RouteDetail(f.Writer, "Best route found:", best)
			})
		},
	}
}

func newRouteShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <route-id>",
		Short:         "Show one route",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				route, err := reg.FindRoute(args[0])
				if err != nil {
					return f.Fail(ExitFailure, "failed to show route", err)
				}
				if f.Format == "json" {
					return f.Success(route.Record())
				}
				return report.RouteDetail(f.Writer, "Route:", route)
			})
		},
	}
}
