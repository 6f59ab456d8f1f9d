package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	content := `
name: test_scenario
description: "Test scenario for validation"
setup:
  - action: register_route
    args: {id: R1, distance: 10, estimated_time: 15, start: Centro, end: Norte}
flow:
  - action: remove_person
    args: {id: nobody}
    expect: not_found
assertions:
  - type: count
    sequence: routes
    count: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Len(t, scenario.Setup, 1)
	assert.Len(t, scenario.Flow, 1)
	assert.Equal(t, "remove_person", scenario.Flow[0].Action)
	assert.Equal(t, OutcomeNotFound, scenario.Flow[0].Expect)
	assert.Equal(t, "R1", scenario.Setup[0].Args["id"])
	require.NotNil(t, scenario.Assertions[0].Count)
	assert.Equal(t, 1, *scenario.Assertions[0].Count)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_ShippedScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, err := LoadScenario(path)
			require.NoError(t, err)
		})
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	base := "name: s\ndescription: d\n"
	flow := "flow:\n  - action: sort_routes\n"
	assertions := "assertions:\n  - type: best_route\n"

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown field", base + flow + assertions + "assertion: []\n", "field assertion not found"},
		{"missing name", "description: d\n" + flow + assertions, "name is required"},
		{"missing description", "name: s\n" + flow + assertions, "description is required"},
		{"empty flow", base + assertions, "flow list is required"},
		{"empty assertions", base + flow, "assertions list is required"},
		{"unknown action", base + "flow:\n  - action: fly\n" + assertions, `unknown action "fly"`},
		{"missing action", base + "flow:\n  - expect: ok\n" + assertions, "action is required"},
		{"unknown expect", base + "flow:\n  - action: sort_routes\n    expect: maybe\n" + assertions, `unknown expect "maybe"`},
		{
			"setup must succeed",
			base + "setup:\n  - action: sort_routes\n    expect: not_found\n" + flow + assertions,
			"setup steps must succeed",
		},
		{"unknown assertion", base + flow + "assertions:\n  - type: vibes\n", `unknown assertion type "vibes"`},
		{"order without sequence", base + flow + "assertions:\n  - type: order\n", "sequence must be one of"},
		{"count without count", base + flow + "assertions:\n  - type: count\n    sequence: routes\n", "count must be a non-negative number"},
		{"find_drivers without name", base + flow + "assertions:\n  - type: find_drivers\n", "name is required for find_drivers"},
		{"status without id", base + flow + "assertions:\n  - type: status\n    status: pending\n", "id and status are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
