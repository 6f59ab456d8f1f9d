package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/snapshot"
	"github.com/roach88/mobility/internal/store"
)

// QueryResult is the JSON payload of the query command.
type QueryResult struct {
	Expression string `json:"expression"`
	Result     any    `json:"result"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression against the registry",
		Long: `Evaluate a JSONPath expression against the registry snapshot.

The expression sees the same document "export" writes. In text mode each
matched value is printed on its own line; strings are printed bare and other
values as compact JSON.

Examples:
  mobility query '$.routes[?(@.distance < 10)].id'
  mobility query '$.drivers[*].name'
  mobility query '$.incidents[0]' --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, args[0], cmd)
		},
	}
}

func runQuery(opts *RootOptions, expr string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	return withRegistry(cmd, opts, f, false, func(_ context.Context, _ *store.Store, reg *mobility.Registry) error {
		result, err := snapshot.Query(reg.Export(), expr)
		if err != nil {
			return f.Fail(ExitFailure, "query failed", err)
		}

		if f.Format == "json" {
			return f.Success(QueryResult{Expression: expr, Result: result})
		}
		return writeQueryResult(f.Writer, result)
	})
}

func writeQueryResult(w io.Writer, result any) error {
	values, ok := result.([]any)
	if !ok {
		values = []any{result}
	}
	for _, v := range values {
		if s, ok := v.(string); ok {
			fmt.Fprintln(w, s)
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode query result: %w", err)
		}
		fmt.Fprintln(w, string(data))
	}
	return nil
}
