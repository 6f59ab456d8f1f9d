package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/mobility/internal/testutil"
)

// cliEnv runs commands against one temporary database with deterministic
// ids and time.
type cliEnv struct {
	t     *testing.T
	db    string
	opts  *RootOptions
	clock *testutil.FixedClock
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	clock := testutil.NewFixedClock(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))
	return &cliEnv{
		t:     t,
		db:    filepath.Join(t.TempDir(), "test.db"),
		clock: clock,
		opts: &RootOptions{
			IDs: testutil.NewSequentialIDs("id"),
			Now: clock.Now,
		},
	}
}

// run executes the root command with --db pointing at the test database.
func (e *cliEnv) run(args ...string) cliResult {
	e.t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCommand(e.opts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--db", e.db}, args...))

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// mustRun executes a command that is expected to succeed and returns stdout.
func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	res := e.run(args...)
	require.NoError(e.t, res.err, "args=%v stderr=%s", args, res.stderr)
	return res.stdout
}

// decodeData decodes the data field of a JSON CLI response into v.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status, out)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

// decodeError decodes the error field of a JSON CLI response.
func decodeError(t *testing.T, out string) CLIError {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "error", resp.Status, out)
	require.NotNil(t, resp.Error)
	return *resp.Error
}
