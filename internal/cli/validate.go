package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/snapshot"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Records int    `json:"records,omitempty"`
	Digest  string `json:"digest,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a JSON snapshot without importing it",
		Long: `Check a JSON snapshot without importing it.

The document is checked against the snapshot schema, then loaded into a
scratch registry to catch duplicate ids and invalid values. The working
store is not opened.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	formatter.VerboseLog("Validating %s", path)
	snap, err := snapshot.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return formatter.Fail(ExitCommandError, "failed to read snapshot", err)
		}
		return outputValidateFailure(formatter, err)
	}

	formatter.VerboseLog("Schema ok, %d record(s); checking records", snap.Len())
	if err := mobility.NewRegistry().Import(snap); err != nil {
		return outputValidateFailure(formatter, err)
	}

	digest, err := snapshot.Digest(snap)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to digest snapshot", err)
	}
	formatter.VerboseLog("Digest %s", digest)

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Records: snap.Len(), Digest: digest})
	}
	fmt.Fprintf(formatter.Writer, "✓ Snapshot valid (%d records)\n", snap.Len())
	return nil
}

// outputValidateFailure reports an invalid snapshot.
func outputValidateFailure(formatter *OutputFormatter, err error) error {
	code := errorCode(err)
	if formatter.Format == "json" {
		_ = formatter.Error(code, err.Error(), ValidationResult{Valid: false, Error: err.Error()})
	} else {
		_ = formatter.Error(code, err.Error(), nil)
	}
	// Invalid snapshots are failures (exit code 1)
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()))
}
