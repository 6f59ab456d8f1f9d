package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/store"
)

// withRegistry opens the working store, loads the registry and calls fn.
// When mutate is true and fn succeeds, the registry is saved back.
// Store failures are reported through f.
func withRegistry(cmd *cobra.Command, opts *RootOptions, f *OutputFormatter, mutate bool, fn func(ctx context.Context, st *store.Store, reg *mobility.Registry) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Debug("opening database", "path", opts.Database)
	st, err := store.OpenContext(ctx, opts.Database)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	snap, err := st.Load(ctx)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to load registry", err)
	}
	reg := mobility.NewRegistry()
	if err := reg.Import(snap); err != nil {
		return f.Fail(ExitCommandError, "stored registry is invalid", err)
	}
	slog.Debug("registry loaded",
		"routes", len(snap.Routes),
		"incidents", len(snap.Incidents),
		"passengers", len(snap.Passengers),
		"drivers", len(snap.Drivers))

	if err := fn(ctx, st, reg); err != nil {
		return err
	}
	if !mutate {
		return nil
	}

	out := reg.Export()
	if err := st.Save(ctx, out); err != nil {
		return f.Fail(ExitCommandError, "failed to save registry", err)
	}
	slog.Debug("registry saved", "records", out.Len())
	return nil
}
