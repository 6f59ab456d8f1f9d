package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/snapshot"
	"github.com/roach88/mobility/internal/store"
)

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
	Digest  string `json:"digest"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the registry to a JSON snapshot",
		Long: `Write the registry to a JSON snapshot file.

Records keep their stored order. The file is replaced atomically.

Example:
  mobility export ./backup/mobility.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args[0], cmd)
		},
	}
}

func runExport(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	return withRegistry(cmd, opts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
		snap := reg.Export()
		if err := snapshot.Save(path, snap); err != nil {
			return f.Fail(ExitCommandError, "failed to export", err)
		}
		digest, err := snapshot.Digest(snap)
		if err != nil {
			return f.Fail(ExitCommandError, "failed to export", err)
		}
		slog.Info("snapshot exported", "path", path, "records", snap.Len(), "digest", digest)

		if f.Format == "json" {
			return f.Success(ExportResult{Path: path, Records: snap.Len(), Digest: digest})
		}
		return f.Success(fmt.Sprintf("Exported %d records to %s.", snap.Len(), path))
	})
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the registry with a JSON snapshot",
		Long: `Replace the registry with the contents of a JSON snapshot file.

The file is validated before anything is changed; a malformed or invalid
snapshot leaves the stored registry untouched. On a terminal, replacing a
non-empty registry asks for confirmation unless --yes is given.

Example:
  mobility import ./backup/mobility.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], yes, cmd)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "replace stored records without asking")
	return cmd
}

func runImport(opts *RootOptions, path string, yes bool, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	snap, err := snapshot.Load(path)
	if err != nil {
		exitCode := ExitCommandError
		if errorCode(err) == ErrCodeMalformed {
			exitCode = ExitFailure
		}
		return f.Fail(exitCode, "failed to import", err)
	}

	// Saved here rather than by withRegistry so the counts reflect the store.
	return withRegistry(cmd, opts, f, false, func(ctx context.Context, st *store.Store, reg *mobility.Registry) error {
		if stored := reg.Export().Len(); stored > 0 && !yes && interactive(cmd) {
			ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Replace %d stored records?", stored))
			if err != nil {
				return f.Fail(ExitCommandError, "failed to read answer", err)
			}
			if !ok {
				return f.Success("Import cancelled.")
			}
		}

		if err := reg.Import(snap); err != nil {
			return f.Fail(ExitFailure, "failed to import", err)
		}
		if err := st.Save(ctx, reg.Export()); err != nil {
			return f.Fail(ExitCommandError, "failed to save registry", err)
		}
		counts, err := st.Counts(ctx)
		if err != nil {
			return f.Fail(ExitCommandError, "failed to count records", err)
		}
		slog.Info("snapshot imported", "path", path, "records", snap.Len())

		if f.Format == "json" {
			return f.Success(counts)
		}
		return f.Success(fmt.Sprintf("Imported %d routes, %d incidents, %d passengers, %d drivers.",
			counts.Routes, counts.Incidents, counts.Passengers, counts.Drivers))
	})
}
