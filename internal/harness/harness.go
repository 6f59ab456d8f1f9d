package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/testutil"
)

// ScenarioEpoch is the clock start for every scenario run.
var ScenarioEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Harness runs scenarios against a fresh in-memory registry.
type Harness struct {
	reg   *mobility.Registry
	ids   *testutil.SequentialIDs
	clock *testutil.FixedClock
}

// New creates a harness with an empty registry, ids starting at id-1 and the
// clock at ScenarioEpoch.
func New() *Harness {
	return &Harness{
		reg:   mobility.NewRegistry(),
		ids:   testutil.NewSequentialIDs("id"),
		clock: testutil.NewFixedClock(ScenarioEpoch),
	}
}

// Registry returns the registry the harness operates on.
func (h *Harness) Registry() *mobility.Registry {
	return h.reg
}

// Run executes a scenario and evaluates its assertions.
//
// The returned error is reserved for problems with the scenario itself: a
// failing setup step or a malformed step argument. Unexpected flow outcomes
// and failed assertions are reported in Result.Errors.
func Run(s *Scenario) (*Result, error) {
	return New().Run(s)
}

// Run executes s on h. A harness is meant for a single scenario.
func (h *Harness) Run(s *Scenario) (*Result, error) {
	for i, step := range s.Setup {
		if _, err := h.apply(step); err != nil {
			return nil, fmt.Errorf("setup[%d] %s: %w", i, step.Action, err)
		}
	}

	result := NewResult()
	for i, step := range s.Flow {
		detail, err := h.apply(step)
		var argErr *ArgError
		if errors.As(err, &argErr) {
			return nil, fmt.Errorf("flow[%d]: %w", i, err)
		}

		event := TraceEvent{
			Action:  step.Action,
			Outcome: outcomeOf(err),
			Detail:  detail,
		}
		if err != nil {
			event.Error = err.Error()
		}
		result.addTrace(event)

		want := step.Expect
		if want == "" {
			want = OutcomeOK
		}
		if event.Outcome != want {
			result.AddError(fmt.Sprintf("flow[%d] %s: expected %s, got %s", i, step.Action, want, event.Outcome))
		}
	}

	for _, err := range EvaluateAssertions(h.reg, s.Assertions) {
		result.AddError(err.Error())
	}
	return result, nil
}

func (h *Harness) apply(step Step) (string, error) {
	fn, ok := actions[step.Action]
	if !ok {
		return "", fmt.Errorf("unknown action %q", step.Action)
	}
	return fn(h, stepArgs{action: step.Action, values: step.Args})
}
