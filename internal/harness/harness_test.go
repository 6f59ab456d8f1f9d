package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestRun_MinimalScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "minimal",
		Description: "Minimal test scenario",
		Flow: []Step{
			{Action: "register_route", Args: map[string]any{
				"id": "R1", "distance": 3, "estimated_time": 4, "start": "a", "end": "b",
			}},
		},
		Assertions: []Assertion{
			{Type: AssertCount, Sequence: "routes", Count: intp(1)},
			{Type: AssertBestRoute, ID: "R1"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Trace, 1)
	assert.Equal(t, TraceEvent{Seq: 1, Action: "register_route", Outcome: OutcomeOK, Detail: "R1"}, result.Trace[0])
}

func TestRun_SetupIsNotTraced(t *testing.T) {
	scenario := &Scenario{
		Name:        "with_setup",
		Description: "Setup steps build state without trace events",
		Setup: []Step{
			{Action: "register_route", Args: map[string]any{
				"id": "R1", "distance": 10.5, "estimated_time": 15, "start": "a", "end": "b",
			}},
		},
		Flow: []Step{
			{Action: "register_passenger", Args: map[string]any{"id": "P1", "name": "Ana", "route_id": "R1"}},
		},
		Assertions: []Assertion{
			{Type: AssertOrder, Sequence: "people", IDs: []string{"P1"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Trace, 1)
	assert.Equal(t, "register_passenger", result.Trace[0].Action)
}

func TestRun_SetupFailureAborts(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_setup",
		Description: "A failing setup step stops the run",
		Setup: []Step{
			{Action: "register_passenger", Args: map[string]any{"id": "P1", "name": "Ana", "route_id": "R404"}},
		},
		Flow:       []Step{{Action: "sort_routes"}},
		Assertions: []Assertion{{Type: AssertBestRoute}},
	}

	result, err := Run(scenario)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "setup[0] register_passenger")
}

func TestRun_UnexpectedOutcomeFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "unexpected",
		Description: "A step that fails without an expect marks the result failed",
		Flow: []Step{
			{Action: "update_driver_status", Args: map[string]any{"id": "D1", "status": "available"}},
		},
		Assertions: []Assertion{{Type: AssertBestRoute}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "expected ok, got not_found")
	assert.Equal(t, OutcomeNotFound, result.Trace[0].Outcome)
	assert.Contains(t, result.Trace[0].Error, `driver with id "D1" not found`)
}

func TestRun_ExpectedFailurePasses(t *testing.T) {
	scenario := &Scenario{
		Name:        "expected_failure",
		Description: "An expected error outcome is a pass",
		Flow: []Step{
			{Action: "remove_person", Args: map[string]any{"id": "ghost"}, Expect: OutcomeNotFound},
		},
		Assertions: []Assertion{{Type: AssertCount, Sequence: "people", Count: intp(0)}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		wantErr string
	}{
		{
			"missing required",
			Step{Action: "register_route", Args: map[string]any{"distance": 1, "estimated_time": 1, "start": "a"}},
			`register_route: argument "end" is required`,
		},
		{
			"wrong type",
			Step{Action: "register_route", Args: map[string]any{"distance": "far", "estimated_time": 1, "start": "a", "end": "b"}},
			`argument "distance" must be a number`,
		},
		{
			"fractional minutes",
			Step{Action: "register_route", Args: map[string]any{"distance": 1, "estimated_time": 1.5, "start": "a", "end": "b"}},
			`argument "estimated_time" must be an integer`,
		},
		{
			"bad time",
			Step{Action: "register_incident", Args: map[string]any{"type": "fire", "occurred_at": "yesterday"}},
			`argument "occurred_at" must be an RFC3339`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(&Scenario{
				Name:        "args",
				Description: "argument errors",
				Flow:        []Step{tt.step},
				Assertions:  []Assertion{{Type: AssertBestRoute}},
			})
			require.Error(t, err)
			var argErr *ArgError
			require.ErrorAs(t, err, &argErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHarness_GeneratedIDsAndClock(t *testing.T) {
	h := New()
	scenario := &Scenario{
		Name:        "generated",
		Description: "Missing ids and times come from the harness",
		Flow: []Step{
			{Action: "register_incident", Args: map[string]any{"type": "theft", "location": "Centro"}},
			{Action: "register_incident", Args: map[string]any{"type": "fire", "location": "Norte"}},
			{Action: "register_incident", Args: map[string]any{
				"type": "other", "occurred_at": time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			}},
		},
		Assertions: []Assertion{{Type: AssertCount, Sequence: "incidents", Count: intp(3)}},
	}

	result, err := h.Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)

	incidents := h.Registry().Incidents().Values()
	require.Len(t, incidents, 3)
	assert.Equal(t, "id-1", incidents[0].ID)
	assert.Equal(t, "id-2", incidents[1].ID)
	assert.Equal(t, ScenarioEpoch, incidents[0].OccurredAt)
	assert.Equal(t, ScenarioEpoch.Add(time.Minute), incidents[1].OccurredAt)
	assert.Equal(t, 2023, incidents[2].OccurredAt.Year())
}

func TestOutcomeOf(t *testing.T) {
	h := New()
	_, err := h.reg.FindRoute("x")
	assert.Equal(t, OutcomeNotFound, outcomeOf(err))
	assert.Equal(t, OutcomeOK, outcomeOf(nil))
	assert.Equal(t, OutcomeError, outcomeOf(assert.AnError))
}
