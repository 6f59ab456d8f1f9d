package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/report"
	"github.com/roach88/mobility/internal/store"
)

// PersonAddOptions holds flags shared by add-passenger and add-driver.
type PersonAddOptions struct {
	*RootOptions
	ID      string
	Name    string
	Contact string
	Route   string // passengers
	Vehicle string // drivers
	Status  string // drivers
}

// NewPersonCommand creates the person command group.
func NewPersonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Register and manage passengers and drivers",
	}

	cmd.AddCommand(newAddPassengerCommand(rootOpts))
	cmd.AddCommand(newAddDriverCommand(rootOpts))
	cmd.AddCommand(newPersonListCommand(rootOpts))
	cmd.AddCommand(newPersonRemoveCommand(rootOpts))
	cmd.AddCommand(newPersonAssignCommand(rootOpts))

	return cmd
}

func addPersonFlags(cmd *cobra.Command, opts *PersonAddOptions) {
	cmd.Flags().StringVar(&opts.ID, "id", "", "person id (generated if empty)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&opts.Contact, "contact", "", "phone or e-mail")
	_ = cmd.MarkFlagRequired("name")
}

func newAddPassengerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PersonAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add-passenger",
		Short: "Register a passenger on an existing route",
		Long: `Register a passenger on an existing route.

Example:
  mobility person add-passenger --id P1 --name Ana --contact ana@example.com --route R1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddPerson(opts, cmd, func(reg *mobility.Registry, id string) (*mobility.Person, error) {
				return reg.RegisterPassenger(id, opts.Name, opts.Contact, opts.Route)
			})
		},
	}

	addPersonFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.Route, "route", "", "route id (required)")
	_ = cmd.MarkFlagRequired("route")

	return cmd
}

func newAddDriverCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PersonAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add-driver",
		Short: "Register a driver",
		Long: `Register a driver. Drivers start as available unless --status is given.

Example:
  mobility person add-driver --id D1 --name Luis --vehicle BUS-1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var status mobility.DriverStatus
			if opts.Status != "" {
				var err error
				if status, err = mobility.ParseDriverStatus(opts.Status); err != nil {
					return newFormatter(rootOpts, cmd).Fail(ExitFailure, "invalid --status", err)
				}
			}
			return runAddPerson(opts, cmd, func(reg *mobility.Registry, id string) (*mobility.Person, error) {
				return reg.RegisterDriver(id, opts.Name, opts.Contact, opts.Vehicle, status)
			})
		},
	}

	addPersonFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.Vehicle, "vehicle", "", "vehicle description (required)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "available or on_route (default available)")
	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}

func runAddPerson(opts *PersonAddOptions, cmd *cobra.Command, register func(*mobility.Registry, string) (*mobility.Person, error)) error {
	f := newFormatter(opts.RootOptions, cmd)
	id := opts.ID
	if id == "" {
		id = opts.ids().Generate()
	}

	return withRegistry(cmd, opts.RootOptions, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
		p, err := register(reg, id)
		if err != nil {
			return f.Fail(ExitFailure, "failed to register person", err)
		}
		if f.Format == "json" {
			return f.Success(personView(p))
		}
		return f.Success(fmt.Sprintf("%s %s registered.", kindLabel(p.Kind), p.ID))
	})
}

func kindLabel(k mobility.PersonKind) string {
	if k == mobility.PersonDriver {
		return "Driver"
	}
	return "Passenger"
}

func newPersonListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List passengers and drivers in registration order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				if f.Format == "json" {
					return f.Success(personViews(slices.Collect(reg.People().All())))
				}
				return report.People(f.Writer, reg)
			})
		},
	}
}

func newPersonRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <person-id>",
		Short:         "Remove a passenger or driver",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				if !reg.RemovePerson(args[0]) {
					return f.Fail(ExitFailure, "failed to remove person", &mobility.NotFoundError{Kind: mobility.KindPerson, ID: args[0]})
				}
				if f.Format == "json" {
					return f.Success(map[string]string{"removed": args[0]})
				}
				return f.Success(fmt.Sprintf("Person %s removed.", args[0]))
			})
		},
	}
}

func newPersonAssignCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "assign <passenger-id> <route-id>",
		Short:         "Assign a route to a passenger",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			return withRegistry(cmd, rootOpts, f, true, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
				p, err := reg.AssignRoute(args[0], args[1])
				if err != nil {
					return f.Fail(ExitFailure, "failed to assign route", err)
				}
				if f.Format == "json" {
					return f.Success(personView(p))
				}
				return f.Success(fmt.Sprintf("Passenger %s assigned to route %s.", p.ID, args[1]))
			})
		},
	}
}
