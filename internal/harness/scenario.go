package harness

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario defines a registry scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Setup steps build the initial registry. They must all succeed.
	Setup []Step `yaml:"setup,omitempty"`

	// Flow steps are executed and traced.
	Flow []Step `yaml:"flow"`

	// Assertions are checked against the final registry.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is a single registry operation.
type Step struct {
	Action string         `yaml:"action"`
	Args   map[string]any `yaml:"args,omitempty"`

	// Expect is the expected outcome. Empty means OutcomeOK.
	Expect string `yaml:"expect,omitempty"`
}

// Assertion checks the final registry.
type Assertion struct {
	// Type is one of order, count, best_route, find_drivers, status.
	Type string `yaml:"type"`

	// Sequence names routes, incidents, people or drivers (order, count).
	Sequence string `yaml:"sequence,omitempty"`

	// IDs is the expected id list (order, find_drivers).
	IDs []string `yaml:"ids,omitempty"`

	// Count is the expected sequence length (count).
	Count *int `yaml:"count,omitempty"`

	// ID is the expected best route (best_route) or the record to inspect (status).
	ID string `yaml:"id,omitempty"`

	// Name is the search fragment (find_drivers).
	Name string `yaml:"name,omitempty"`

	// Status is the expected status (status).
	Status string `yaml:"status,omitempty"`
}

// Assertion type constants.
const (
	AssertOrder       = "order"
	AssertCount       = "count"
	AssertBestRoute   = "best_route"
	AssertFindDrivers = "find_drivers"
	AssertStatus      = "status"
)

// Step outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

var (
	sequences = []string{"routes", "incidents", "people", "drivers"}
	outcomes  = []string{OutcomeOK, OutcomeNotFound, OutcomeDuplicate, OutcomeInvalid}
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Setup {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("setup[%d]: %w", i, err)
		}
		if step.Expect != "" && step.Expect != OutcomeOK {
			return fmt.Errorf("setup[%d]: setup steps must succeed", i)
		}
	}
	for i, step := range s.Flow {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("flow[%d]: %w", i, err)
		}
	}
	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(step Step) error {
	if step.Action == "" {
		return fmt.Errorf("action is required")
	}
	if _, ok := actions[step.Action]; !ok {
		return fmt.Errorf("unknown action %q", step.Action)
	}
	if step.Expect != "" && !slices.Contains(outcomes, step.Expect) {
		return fmt.Errorf("unknown expect %q, must be one of %v", step.Expect, outcomes)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertOrder:
		if !slices.Contains(sequences, a.Sequence) {
			return fmt.Errorf("assertions[%d]: sequence must be one of %v for order", index, sequences)
		}
	case AssertCount:
		if !slices.Contains(sequences, a.Sequence) {
			return fmt.Errorf("assertions[%d]: sequence must be one of %v for count", index, sequences)
		}
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be a non-negative number for count", index)
		}
	case AssertBestRoute:
		// An empty id asserts that there is no best route.
	case AssertFindDrivers:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for find_drivers", index)
		}
	case AssertStatus:
		if a.ID == "" || a.Status == "" {
			return fmt.Errorf("assertions[%d]: id and status are required for status", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
