package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mobility/internal/mobility"
)

func TestIncidentAdd_DefaultsToNowAndPending(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("--format", "json", "incident", "add", "--type", "robo", "--location", "Av. 5")

	var rec mobility.IncidentRecord
	decodeData(t, out, &rec)
	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, "THEFT", rec.Type)
	assert.Equal(t, "pending", rec.Status)
	assert.True(t, env.clock.Now().Equal(rec.OccurredAt))
}

func TestIncidentAdd_LocalLayoutRoundTrips(t *testing.T) {
	env := newCLIEnv(t)

	env.mustRun("incident", "add", "--id", "I1", "--type", "FIRE", "--location", "Plaza",
		"--time", "2024-03-01 12:30:00", "--description", "smoke")

	assert.Equal(t,
		"ID: I1\nType: FIRE\nLocation: Plaza\nDate: 2024-03-01 12:30:00\nDescription: smoke\nStatus: pending\n",
		env.mustRun("incident", "show", "I1"))
}

func TestIncidentAdd_Rejected(t *testing.T) {
	env := newCLIEnv(t)

	res := env.run("incident", "add", "--type", "FLOOD", "--location", "x")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
	assert.Contains(t, res.stderr, "Error [E004]")

	res = env.run("incident", "add", "--type", "FIRE", "--location", "x", "--time", "yesterday")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "invalid --time")
}

func TestIncidentSort_MostRecentFirst(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("incident", "add", "--id", "T1", "--type", "OTHER", "--location", "a", "--time", "2024-01-01T08:00:00Z")
	env.mustRun("incident", "add", "--id", "T3", "--type", "OTHER", "--location", "a", "--time", "2024-01-03T08:00:00Z")
	env.mustRun("incident", "add", "--id", "T2", "--type", "OTHER", "--location", "a", "--time", "2024-01-02T08:00:00Z")

	out := env.mustRun("incident", "sort")
	assert.Equal(t,
		"Incidents sorted by date:\n"+
			"ID: T3 | Type: OTHER | Date: 2024-01-03 08:00:00 | Status: pending\n"+
			"ID: T2 | Type: OTHER | Date: 2024-01-02 08:00:00 | Status: pending\n"+
			"ID: T1 | Type: OTHER | Date: 2024-01-01 08:00:00 | Status: pending\n",
		out)

	var list []mobility.IncidentRecord
	decodeData(t, env.mustRun("--format", "json", "incident", "list"), &list)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"T3", "T2", "T1"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestIncidentStatus(t *testing.T) {
	env := newCLIEnv(t)
	env.clock.Advance(time.Hour)
	env.mustRun("incident", "add", "--id", "I1", "--type", "ACCIDENT", "--location", "a")

	assert.Equal(t, "Incident I1 is now in_progress.\n", env.mustRun("incident", "status", "I1", "en proceso"))

	var rec mobility.IncidentRecord
	decodeData(t, env.mustRun("--format", "json", "incident", "show", "I1"), &rec)
	assert.Equal(t, "in_progress", rec.Status)
	assert.True(t, env.clock.Now().Equal(rec.OccurredAt))
}

func TestIncidentStatus_Errors(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("incident", "add", "--id", "I1", "--type", "ACCIDENT", "--location", "a")

	res := env.run("incident", "status", "I1", "closed")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Error [E004]")

	res = env.run("incident", "status", "I9", "resolved")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Error [E002]")
}

func TestIncidentList_Empty(t *testing.T) {
	env := newCLIEnv(t)
	assert.Equal(t, "Incidents:\n(none)\n", env.mustRun("incident", "list"))
}
