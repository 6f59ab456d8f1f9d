package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/seqlist"
)

// AssertionError describes a failed assertion.
type AssertionError struct {
	Type     string
	Expected any
	Actual   any
	Message  string
}

func (e *AssertionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("assertion %s failed: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("assertion %s failed: expected %v, got %v", e.Type, e.Expected, e.Actual)
}

// EvaluateAssertions checks every assertion against reg and returns the
// failures in declaration order.
func EvaluateAssertions(reg *mobility.Registry, assertions []Assertion) []*AssertionError {
	var failures []*AssertionError
	for i := range assertions {
		if err := evaluateAssertion(reg, &assertions[i]); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func evaluateAssertion(reg *mobility.Registry, a *Assertion) *AssertionError {
	switch a.Type {
	case AssertOrder:
		return assertOrder(reg, a)
	case AssertCount:
		return assertCount(reg, a)
	case AssertBestRoute:
		return assertBestRoute(reg, a)
	case AssertFindDrivers:
		return assertFindDrivers(reg, a)
	case AssertStatus:
		return assertStatus(reg, a)
	default:
		return &AssertionError{Type: a.Type, Message: "unknown assertion type"}
	}
}

func sequenceIDs(reg *mobility.Registry, name string) ([]string, bool) {
	switch name {
	case "routes":
		return ids(reg.Routes(), func(r *mobility.Route) string { return r.ID }), true
	case "incidents":
		return ids(reg.Incidents(), func(i *mobility.Incident) string { return i.ID }), true
	case "people":
		return ids(reg.People(), personID), true
	case "drivers":
		return ids(reg.Drivers(), personID), true
	default:
		return nil, false
	}
}

func personID(p *mobility.Person) string { return p.ID }

func ids[T comparable](l *seqlist.List[T], id func(T) string) []string {
	out := make([]string, 0, l.Len())
	for v := range l.All() {
		out = append(out, id(v))
	}
	return out
}

func assertOrder(reg *mobility.Registry, a *Assertion) *AssertionError {
	got, ok := sequenceIDs(reg, a.Sequence)
	if !ok {
		return &AssertionError{Type: a.Type, Message: fmt.Sprintf("unknown sequence %q", a.Sequence)}
	}
	want := a.IDs
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(got, want) {
		return &AssertionError{
			Type:     a.Type,
			Expected: "[" + strings.Join(want, " ") + "]",
			Actual:   "[" + strings.Join(got, " ") + "]",
		}
	}
	return nil
}

func assertCount(reg *mobility.Registry, a *Assertion) *AssertionError {
	got, ok := sequenceIDs(reg, a.Sequence)
	if !ok {
		return &AssertionError{Type: a.Type, Message: fmt.Sprintf("unknown sequence %q", a.Sequence)}
	}
	if a.Count == nil {
		return &AssertionError{Type: a.Type, Message: "count is required"}
	}
	if len(got) != *a.Count {
		return &AssertionError{Type: a.Type, Expected: *a.Count, Actual: len(got)}
	}
	return nil
}

func assertBestRoute(reg *mobility.Registry, a *Assertion) *AssertionError {
	best, ok := reg.BestRoute()
	got := ""
	if ok {
		got = best.ID
	}
	if got != a.ID {
		return &AssertionError{Type: a.Type, Expected: orNone(a.ID), Actual: orNone(got)}
	}
	return nil
}

func orNone(id string) string {
	if id == "" {
		return "<none>"
	}
	return id
}

func assertFindDrivers(reg *mobility.Registry, a *Assertion) *AssertionError {
	found := reg.FindDriversByName(a.Name)
	got := make([]string, 0, len(found))
	for _, d := range found {
		got = append(got, d.ID)
	}
	want := a.IDs
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(got, want) {
		return &AssertionError{
			Type:     a.Type,
			Expected: "[" + strings.Join(want, " ") + "]",
			Actual:   "[" + strings.Join(got, " ") + "]",
		}
	}
	return nil
}

// assertStatus checks an incident status, or a driver status when no
// incident has the id.
func assertStatus(reg *mobility.Registry, a *Assertion) *AssertionError {
	var got string
	if inc, err := reg.FindIncident(a.ID); err == nil {
		got = string(inc.Status)
	} else if d, err := reg.FindDriver(a.ID); err == nil {
		got = string(d.Driver.Status)
	} else {
		return &AssertionError{Type: a.Type, Message: fmt.Sprintf("no incident or driver with id %q", a.ID)}
	}
	if got != a.Status {
		return &AssertionError{Type: a.Type, Expected: a.Status, Actual: got}
	}
	return nil
}
