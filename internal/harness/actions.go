package harness

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/roach88/mobility/internal/mobility"
)

// ArgError reports a missing or mistyped step argument. It is a scenario
// authoring error rather than a registry outcome.
type ArgError struct {
	Action string
	Arg    string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: argument %q %s", e.Action, e.Arg, e.Reason)
}

type action func(h *Harness, a stepArgs) (detail string, err error)

var actions = map[string]action{
	"register_route":         registerRoute,
	"register_incident":      registerIncident,
	"register_passenger":     registerPassenger,
	"register_driver":        registerDriver,
	"remove_person":          removePerson,
	"assign_route":           assignRoute,
	"update_incident_status": updateIncidentStatus,
	"update_driver_status":   updateDriverStatus,
	"sort_routes": func(h *Harness, _ stepArgs) (string, error) {
		return "swaps=" + strconv.Itoa(h.reg.SortRoutesByDistance()), nil
	},
	"sort_incidents": func(h *Harness, _ stepArgs) (string, error) {
		return "swaps=" + strconv.Itoa(h.reg.SortIncidentsByTime()), nil
	},
}

// stepArgs wraps the decoded YAML arguments of one step.
type stepArgs struct {
	action string
	values map[string]any
}

func (a stepArgs) missing(key string) error {
	return &ArgError{Action: a.action, Arg: key, Reason: "is required"}
}

func (a stepArgs) mistyped(key, want string) error {
	return &ArgError{Action: a.action, Arg: key, Reason: "must be " + want}
}

func (a stepArgs) optString(key string) (string, error) {
	v, ok := a.values[key]
	if !ok || v == nil {
		return "", nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return strconv.Itoa(s), nil
	default:
		return "", a.mistyped(key, "a string")
	}
}

func (a stepArgs) reqString(key string) (string, error) {
	if _, ok := a.values[key]; !ok {
		return "", a.missing(key)
	}
	return a.optString(key)
}

func (a stepArgs) number(key string) (float64, error) {
	switch v := a.values[key].(type) {
	case nil:
		return 0, a.missing(key)
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, a.mistyped(key, "a number")
	}
}

func (a stepArgs) integer(key string) (int, error) {
	switch v := a.values[key].(type) {
	case nil:
		return 0, a.missing(key)
	case int:
		return v, nil
	default:
		return 0, a.mistyped(key, "an integer")
	}
}

// optTime accepts a YAML timestamp, an RFC3339 string or the registry layout
// in UTC. The zero time is returned when the key is absent.
func (a stepArgs) optTime(key string) (time.Time, error) {
	switch v := a.values[key].(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
		if t, err := time.Parse(mobility.TimeLayout, v); err == nil {
			return t, nil
		}
		return time.Time{}, a.mistyped(key, "an RFC3339 or \""+mobility.TimeLayout+"\" time")
	default:
		return time.Time{}, a.mistyped(key, "a time")
	}
}

// stringArgs reads several string arguments; keys prefixed with "?" are optional.
func (a stepArgs) stringArgs(keys ...string) ([]string, error) {
	out := make([]string, len(keys))
	for i, key := range keys {
		var err error
		if key[0] == '?' {
			out[i], err = a.optString(key[1:])
		} else {
			out[i], err = a.reqString(key)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (h *Harness) idOrNext(id string) string {
	if id == "" {
		return h.ids.Generate()
	}
	return id
}

func registerRoute(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("?id", "start", "end")
	if err != nil {
		return "", err
	}
	distance, err := a.number("distance")
	if err != nil {
		return "", err
	}
	minutes, err := a.integer("estimated_time")
	if err != nil {
		return "", err
	}
	route, err := h.reg.RegisterRoute(mobility.Route{
		ID:            h.idOrNext(s[0]),
		Distance:      distance,
		EstimatedTime: minutes,
		Start:         s[1],
		End:           s[2],
	})
	if err != nil {
		return "", err
	}
	return route.ID, nil
}

func registerIncident(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("?id", "type", "?location", "?description", "?status")
	if err != nil {
		return "", err
	}
	at, err := a.optTime("occurred_at")
	if err != nil {
		return "", err
	}
	if at.IsZero() {
		at = h.clock.Now()
		h.clock.Advance(time.Minute)
	}
	typ, err := mobility.ParseIncidentType(s[1])
	if err != nil {
		return "", err
	}
	var status mobility.IncidentStatus
	if s[4] != "" {
		if status, err = mobility.ParseIncidentStatus(s[4]); err != nil {
			return "", err
		}
	}
	inc, err := h.reg.RegisterIncident(mobility.Incident{
		ID:          h.idOrNext(s[0]),
		Type:        typ,
		Location:    s[2],
		OccurredAt:  at,
		Description: s[3],
		Status:      status,
	})
	if err != nil {
		return "", err
	}
	return inc.ID, nil
}

func registerPassenger(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("?id", "name", "?contact", "route_id")
	if err != nil {
		return "", err
	}
	p, err := h.reg.RegisterPassenger(h.idOrNext(s[0]), s[1], s[2], s[3])
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func registerDriver(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("?id", "name", "?contact", "vehicle", "?status")
	if err != nil {
		return "", err
	}
	var status mobility.DriverStatus
	if s[4] != "" {
		if status, err = mobility.ParseDriverStatus(s[4]); err != nil {
			return "", err
		}
	}
	p, err := h.reg.RegisterDriver(h.idOrNext(s[0]), s[1], s[2], s[3], status)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func removePerson(h *Harness, a stepArgs) (string, error) {
	id, err := a.reqString("id")
	if err != nil {
		return "", err
	}
	if !h.reg.RemovePerson(id) {
		return "", &mobility.NotFoundError{Kind: mobility.KindPerson, ID: id}
	}
	return id, nil
}

func assignRoute(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("passenger_id", "route_id")
	if err != nil {
		return "", err
	}
	p, err := h.reg.AssignRoute(s[0], s[1])
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func updateIncidentStatus(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("id", "status")
	if err != nil {
		return "", err
	}
	status, err := mobility.ParseIncidentStatus(s[1])
	if err != nil {
		return "", err
	}
	inc, err := h.reg.UpdateIncidentStatus(s[0], status)
	if err != nil {
		return "", err
	}
	return inc.ID, nil
}

func updateDriverStatus(h *Harness, a stepArgs) (string, error) {
	s, err := a.stringArgs("id", "status")
	if err != nil {
		return "", err
	}
	status, err := mobility.ParseDriverStatus(s[1])
	if err != nil {
		return "", err
	}
	d, err := h.reg.UpdateDriverStatus(s[0], status)
	if err != nil {
		return "", err
	}
	return d.ID, nil
}

// outcomeOf classifies a registry error.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, mobility.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, mobility.ErrDuplicateID):
		return OutcomeDuplicate
	case errors.Is(err, mobility.ErrInvalidRecord):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
