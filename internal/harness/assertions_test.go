package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mobility/internal/mobility"
)

func newAssertionRegistry(t *testing.T) *mobility.Registry {
	t.Helper()
	reg := mobility.NewRegistry()

	_, err := reg.RegisterRoute(mobility.Route{ID: "R1", Distance: 10, EstimatedTime: 15, Start: "a", End: "b"})
	require.NoError(t, err)
	_, err = reg.RegisterRoute(mobility.Route{ID: "R2", Distance: 5.5, EstimatedTime: 10, Start: "c", End: "d"})
	require.NoError(t, err)
	_, err = reg.RegisterIncident(mobility.Incident{
		ID: "I1", Type: mobility.IncidentFire, Location: "x",
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = reg.RegisterPassenger("P1", "Ana", "", "R1")
	require.NoError(t, err)
	_, err = reg.RegisterDriver("D1", "José Pérez", "", "BUS-1", mobility.DriverOnRoute)
	require.NoError(t, err)
	return reg
}

func TestEvaluateAssertions_Pass(t *testing.T) {
	reg := newAssertionRegistry(t)

	failures := EvaluateAssertions(reg, []Assertion{
		{Type: AssertOrder, Sequence: "routes", IDs: []string{"R1", "R2"}},
		{Type: AssertOrder, Sequence: "people", IDs: []string{"P1", "D1"}},
		{Type: AssertCount, Sequence: "drivers", Count: intp(1)},
		{Type: AssertBestRoute, ID: "R2"},
		{Type: AssertFindDrivers, Name: "JOSÉ", IDs: []string{"D1"}},
		{Type: AssertFindDrivers, Name: "Ana"},
		{Type: AssertStatus, ID: "I1", Status: "pending"},
		{Type: AssertStatus, ID: "D1", Status: "on_route"},
	})
	assert.Empty(t, failures)
}

func TestEvaluateAssertions_Failures(t *testing.T) {
	reg := newAssertionRegistry(t)

	tests := []struct {
		name      string
		assertion Assertion
		want      string
	}{
		{"order", Assertion{Type: AssertOrder, Sequence: "routes", IDs: []string{"R2", "R1"}}, "expected [R2 R1], got [R1 R2]"},
		{"count", Assertion{Type: AssertCount, Sequence: "incidents", Count: intp(2)}, "expected 2, got 1"},
		{"best route", Assertion{Type: AssertBestRoute, ID: "R1"}, "expected R1, got R2"},
		{"no best route", Assertion{Type: AssertBestRoute}, "expected <none>, got R2"},
		{"find drivers", Assertion{Type: AssertFindDrivers, Name: "pérez"}, "expected [], got [D1]"},
		{"status", Assertion{Type: AssertStatus, ID: "I1", Status: "resolved"}, "expected resolved, got pending"},
		{"status unknown id", Assertion{Type: AssertStatus, ID: "P1", Status: "pending"}, `no incident or driver with id "P1"`},
		{"unknown sequence", Assertion{Type: AssertOrder, Sequence: "vehicles"}, `unknown sequence "vehicles"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := EvaluateAssertions(reg, []Assertion{tt.assertion})
			require.Len(t, failures, 1)
			assert.Equal(t, tt.assertion.Type, failures[0].Type)
			assert.Contains(t, failures[0].Error(), tt.want)
		})
	}
}

func TestEvaluateAssertions_EmptyRegistryHasNoBestRoute(t *testing.T) {
	failures := EvaluateAssertions(mobility.NewRegistry(), []Assertion{
		{Type: AssertBestRoute},
		{Type: AssertOrder, Sequence: "incidents"},
	})
	assert.Empty(t, failures)
}
