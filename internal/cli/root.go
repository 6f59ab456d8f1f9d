package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/config"
	"github.com/roach88/mobility/internal/mobility"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Database   string
	ConfigPath string

	// IDs generates identifiers when --id is omitted (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDs mobility.IDGenerator

	// Now returns the current time (for testing). If nil, defaults to time.Now.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func (o *RootOptions) ids() mobility.IDGenerator {
	if o.IDs == nil {
		return mobility.UUIDv7Generator{}
	}
	return o.IDs
}

func (o *RootOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// NewRootCommand creates the root command for the mobility CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mobility",
		Short: "Urban mobility registry",
		Long: `Manage routes, incidents, passengers and drivers of an urban mobility network.

Records live in a SQLite working store between invocations and can be
exported to or imported from JSON snapshot files.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main reports errors that commands have not
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", config.DefaultDatabase, "path to SQLite database")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	// Add subcommands
	cmd.AddCommand(NewRouteCommand(opts))
	cmd.AddCommand(NewIncidentCommand(opts))
	cmd.AddCommand(NewPersonCommand(opts))
	cmd.AddCommand(NewDriverCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// applyConfig fills options from the config file. Flags set on the command
// line take precedence over file values.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		f := &OutputFormatter{Format: config.DefaultFormat, Writer: cmd.ErrOrStderr()}
		return f.Fail(ExitCommandError, "failed to load config", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		opts.Database = cfg.Database
	}
	if !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if !flags.Changed("verbose") {
		opts.Verbose = cfg.Verbose
	}
	return nil
}

// configureLogging installs the default slog logger on w.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Keep diagnostics out of JSON output
		Verbose:   opts.Verbose,
	}
}
