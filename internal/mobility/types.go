package mobility

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeLayout is the layout used to read and display incident times.
const TimeLayout = "2006-01-02 15:04:05"

// Route is a path between two points with a distance and travel estimate.
type Route struct {
	ID            string
	Distance      float64 // kilometres
	EstimatedTime int     // minutes
	Start         string
	End           string
}

// Score is the value the best-route selection minimizes.
func (r *Route) Score() float64 {
	return r.Distance + float64(r.EstimatedTime)
}

// Validate checks the route's fields.
func (r *Route) Validate() error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return invalid(KindRoute, "id", "must not be empty")
	case math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) || r.Distance <= 0:
		return invalid(KindRoute, "distance", "must be a finite number greater than 0")
	case r.EstimatedTime <= 0:
		return invalid(KindRoute, "estimated_time", "must be greater than 0")
	case strings.TrimSpace(r.Start) == "":
		return invalid(KindRoute, "start", "must not be empty")
	case strings.TrimSpace(r.End) == "":
		return invalid(KindRoute, "end", "must not be empty")
	}
	return nil
}

// IncidentType categorizes an incident.
type IncidentType string

const (
	IncidentTheft    IncidentType = "THEFT"
	IncidentAccident IncidentType = "ACCIDENT"
	IncidentFire     IncidentType = "FIRE"
	IncidentOther    IncidentType = "OTHER"
)

// IncidentTypes lists the valid incident types in display order.
var IncidentTypes = []IncidentType{IncidentTheft, IncidentAccident, IncidentFire, IncidentOther}

var incidentTypeAliases = map[string]IncidentType{
	"theft":     IncidentTheft,
	"robo":      IncidentTheft,
	"accident":  IncidentAccident,
	"accidente": IncidentAccident,
	"fire":      IncidentFire,
	"incendio":  IncidentFire,
	"other":     IncidentOther,
	"otro":      IncidentOther,
}

// ParseIncidentType parses an incident type name, case-insensitively.
// Spanish names (ROBO, ACCIDENTE, INCENDIO, OTRO) are accepted as aliases.
func ParseIncidentType(s string) (IncidentType, error) {
	if t, ok := incidentTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("incident type %q is not valid, allowed types: %v: %w", s, IncidentTypes, ErrInvalidRecord)
}

// Valid reports whether t is one of IncidentTypes.
func (t IncidentType) Valid() bool {
	for _, v := range IncidentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IncidentStatus is the handling state of an incident.
type IncidentStatus string

const (
	StatusPending    IncidentStatus = "pending"
	StatusInProgress IncidentStatus = "in_progress"
	StatusResolved   IncidentStatus = "resolved"
)

// IncidentStatuses lists the valid incident states.
var IncidentStatuses = []IncidentStatus{StatusPending, StatusInProgress, StatusResolved}

var incidentStatusAliases = map[string]IncidentStatus{
	"pending":     StatusPending,
	"pendiente":   StatusPending,
	"in_progress": StatusInProgress,
	"in progress": StatusInProgress,
	"en proceso":  StatusInProgress,
	"resolved":    StatusResolved,
	"resuelto":    StatusResolved,
}

// ParseIncidentStatus parses an incident status, case-insensitively.
func ParseIncidentStatus(s string) (IncidentStatus, error) {
	if st, ok := incidentStatusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("incident status %q is not valid, allowed: %v: %w", s, IncidentStatuses, ErrInvalidRecord)
}

// Valid reports whether s is one of IncidentStatuses.
func (s IncidentStatus) Valid() bool {
	for _, v := range IncidentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Incident is a reported event at a location and time.
type Incident struct {
	ID          string
	Type        IncidentType
	Location    string
	OccurredAt  time.Time
	Description string
	Status      IncidentStatus
}

// Validate checks the incident's fields. An empty status is not accepted here;
// Registry.RegisterIncident fills in StatusPending before validating.
func (i *Incident) Validate() error {
	switch {
	case strings.TrimSpace(i.ID) == "":
		return invalid(KindIncident, "id", "must not be empty")
	case !i.Type.Valid():
		return invalid(KindIncident, "type", fmt.Sprintf("%q is not a known type", i.Type))
	case i.OccurredAt.IsZero():
		return invalid(KindIncident, "occurred_at", "must be set")
	case !i.Status.Valid():
		return invalid(KindIncident, "status", fmt.Sprintf("%q is not a known status", i.Status))
	}
	return nil
}

// DriverStatus is the availability of a driver.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverOnRoute   DriverStatus = "on_route"
)

// DriverStatuses lists the valid driver states.
var DriverStatuses = []DriverStatus{DriverAvailable, DriverOnRoute}

var driverStatusAliases = map[string]DriverStatus{
	"available":  DriverAvailable,
	"disponible": DriverAvailable,
	"on_route":   DriverOnRoute,
	"on route":   DriverOnRoute,
	"en ruta":    DriverOnRoute,
}

// ParseDriverStatus parses a driver status, case-insensitively.
func ParseDriverStatus(s string) (DriverStatus, error) {
	if st, ok := driverStatusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("driver status %q is not valid, allowed: %v: %w", s, DriverStatuses, ErrInvalidRecord)
}

// Valid reports whether s is one of DriverStatuses.
func (s DriverStatus) Valid() bool {
	return s == DriverAvailable || s == DriverOnRoute
}

// PersonKind tags the variant held by a Person.
type PersonKind string

const (
	PersonPassenger PersonKind = "passenger"
	PersonDriver    PersonKind = "driver"
)

// Person is a passenger or a driver. Exactly one of Passenger and Driver is
// set, matching Kind.
type Person struct {
	ID      string
	Name    string
	Contact string
	Kind    PersonKind

	Passenger *PassengerInfo
	Driver    *DriverInfo
}

// PassengerInfo is the passenger-specific part of a Person.
type PassengerInfo struct {
	RouteID string // empty when no route is assigned
}

// DriverInfo is the driver-specific part of a Person.
type DriverInfo struct {
	Vehicle string
	Status  DriverStatus
}

// NewPassenger returns a passenger record.
func NewPassenger(id, name, contact, routeID string) *Person {
	return &Person{
		ID:        id,
		Name:      name,
		Contact:   contact,
		Kind:      PersonPassenger,
		Passenger: &PassengerInfo{RouteID: routeID},
	}
}

// NewDriver returns a driver record.
func NewDriver(id, name, contact, vehicle string, status DriverStatus) *Person {
	return &Person{
		ID:      id,
		Name:    name,
		Contact: contact,
		Kind:    PersonDriver,
		Driver:  &DriverInfo{Vehicle: vehicle, Status: status},
	}
}

// IsDriver reports whether p is a driver.
func (p *Person) IsDriver() bool {
	return p.Kind == PersonDriver && p.Driver != nil
}

// IsPassenger reports whether p is a passenger.
func (p *Person) IsPassenger() bool {
	return p.Kind == PersonPassenger && p.Passenger != nil
}

// Validate checks the shared fields and that the variant payload matches Kind.
func (p *Person) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return invalid(KindPerson, "id", "must not be empty")
	case strings.TrimSpace(p.Name) == "":
		return invalid(KindPerson, "name", "must not be empty")
	}

	switch p.Kind {
	case PersonPassenger:
		if p.Passenger == nil || p.Driver != nil {
			return invalid(KindPassenger, "kind", "must carry passenger details only")
		}
	case PersonDriver:
		if p.Driver == nil || p.Passenger != nil {
			return invalid(KindDriver, "kind", "must carry driver details only")
		}
		if strings.TrimSpace(p.Driver.Vehicle) == "" {
			return invalid(KindDriver, "vehicle", "must not be empty")
		}
		if !p.Driver.Status.Valid() {
			return invalid(KindDriver, "status", fmt.Sprintf("%q is not a known status", p.Driver.Status))
		}
	default:
		return invalid(KindPerson, "kind", fmt.Sprintf("%q is not a known kind", p.Kind))
	}
	return nil
}
