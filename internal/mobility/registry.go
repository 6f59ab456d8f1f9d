package mobility

import (
	"fmt"

	"github.com/roach88/mobility/internal/seqlist"
)

// Registry is the mobility and incident registry.
//
// Registry is not safe for concurrent use.
type Registry struct {
	routes    *seqlist.List[*Route]
	incidents *seqlist.List[*Incident]
	people    *seqlist.List[*Person]
	drivers   *seqlist.List[*Person]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routes:    seqlist.New[*Route](),
		incidents: seqlist.New[*Incident](),
		people:    seqlist.New[*Person](),
		drivers:   seqlist.New[*Person](),
	}
}

// Routes returns the route sequence. Callers must not mutate it.
func (r *Registry) Routes() *seqlist.List[*Route] { return r.routes }

// Incidents returns the incident sequence. Callers must not mutate it.
func (r *Registry) Incidents() *seqlist.List[*Incident] { return r.incidents }

// People returns passengers and drivers in registration order. After a
// reload through Export and Import the order is passengers then drivers.
func (r *Registry) People() *seqlist.List[*Person] { return r.people }

// Drivers returns the driver sequence.
func (r *Registry) Drivers() *seqlist.List[*Person] { return r.drivers }

// RegisterRoute validates and appends a route.
// Returns the stored record.
func (r *Registry) RegisterRoute(route Route) (*Route, error) {
	stored := &route
	if err := stored.Validate(); err != nil {
		return nil, fmt.Errorf("register route: %w", err)
	}
	if _, ok := seqlist.Find(r.routes, func(x *Route) bool { return x.ID == route.ID }); ok {
		return nil, fmt.Errorf("register route: %w", duplicate(KindRoute, route.ID))
	}
	r.routes.AppendLast(stored)
	return stored, nil
}

// RegisterIncident validates and appends an incident.
// An empty status defaults to StatusPending.
func (r *Registry) RegisterIncident(incident Incident) (*Incident, error) {
	stored := &incident
	if stored.Status == "" {
		stored.Status = StatusPending
	}
	if err := stored.Validate(); err != nil {
		return nil, fmt.Errorf("register incident: %w", err)
	}
	if _, ok := seqlist.Find(r.incidents, func(x *Incident) bool { return x.ID == incident.ID }); ok {
		return nil, fmt.Errorf("register incident: %w", duplicate(KindIncident, incident.ID))
	}
	r.incidents.AppendLast(stored)
	return stored, nil
}

// RegisterPassenger appends a passenger assigned to an existing route.
func (r *Registry) RegisterPassenger(id, name, contact, routeID string) (*Person, error) {
	if _, err := r.FindRoute(routeID); err != nil {
		return nil, fmt.Errorf("register passenger: %w", err)
	}
	p := NewPassenger(id, name, contact, routeID)
	if err := r.addPerson(p); err != nil {
		return nil, fmt.Errorf("register passenger: %w", err)
	}
	return p, nil
}

// RegisterDriver appends a driver to both the people and driver sequences.
// An empty status defaults to DriverAvailable.
func (r *Registry) RegisterDriver(id, name, contact, vehicle string, status DriverStatus) (*Person, error) {
	if status == "" {
		status = DriverAvailable
	}
	p := NewDriver(id, name, contact, vehicle, status)
	if err := r.addPerson(p); err != nil {
		return nil, fmt.Errorf("register driver: %w", err)
	}
	return p, nil
}

func (r *Registry) addPerson(p *Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := seqlist.Find(r.people, func(x *Person) bool { return x.ID == p.ID }); ok {
		return duplicate(KindPerson, p.ID)
	}
	r.people.AppendLast(p)
	if p.IsDriver() {
		r.drivers.AppendLast(p)
	}
	return nil
}

// RemovePerson removes the person with the given id.
// Returns false if no such person exists.
func (r *Registry) RemovePerson(id string) bool {
	p, ok := seqlist.Find(r.people, func(x *Person) bool { return x.ID == id })
	if !ok {
		return false
	}
	if p.IsDriver() {
		r.drivers.RemoveFirstMatch(p)
	}
	return r.people.RemoveFirstMatch(p)
}

// FindRoute returns the route with the given id.
func (r *Registry) FindRoute(id string) (*Route, error) {
	if route, ok := seqlist.Find(r.routes, func(x *Route) bool { return x.ID == id }); ok {
		return route, nil
	}
	return nil, notFound(KindRoute, id)
}

// FindIncident returns the incident with the given id.
func (r *Registry) FindIncident(id string) (*Incident, error) {
	if inc, ok := seqlist.Find(r.incidents, func(x *Incident) bool { return x.ID == id }); ok {
		return inc, nil
	}
	return nil, notFound(KindIncident, id)
}

// FindPerson returns the passenger or driver with the given id.
func (r *Registry) FindPerson(id string) (*Person, error) {
	if p, ok := seqlist.Find(r.people, func(x *Person) bool { return x.ID == id }); ok {
		return p, nil
	}
	return nil, notFound(KindPerson, id)
}

// FindDriver returns the driver with the given id.
func (r *Registry) FindDriver(id string) (*Person, error) {
	if p, ok := seqlist.Find(r.drivers, func(x *Person) bool { return x.ID == id }); ok {
		return p, nil
	}
	return nil, notFound(KindDriver, id)
}

// FindDriversByName returns the drivers whose name contains fragment,
// ignoring case, in registration order.
func (r *Registry) FindDriversByName(fragment string) []*Person {
	return seqlist.Filter(r.people, func(p *Person) bool {
		return p.IsDriver() && nameContains(p.Name, fragment)
	})
}

// SortIncidentsByTime reorders incidents with the most recent first.
// Returns the number of swaps performed.
func (r *Registry) SortIncidentsByTime() int {
	return r.incidents.Sort(IncidentsByTimeDesc)
}

// SortRoutesByDistance reorders routes with the shortest first.
// Returns the number of swaps performed.
func (r *Registry) SortRoutesByDistance() int {
	return r.routes.Sort(RoutesByDistanceAsc)
}

// BestRoute returns the route with the smallest distance plus estimated time.
// Ties keep the route that appears first. Returns false when there are no routes.
func (r *Registry) BestRoute() (*Route, bool) {
	return seqlist.MinBy(r.routes, (*Route).Score)
}

// UpdateIncidentStatus sets the status of an incident.
func (r *Registry) UpdateIncidentStatus(id string, status IncidentStatus) (*Incident, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("update incident status: %w", invalid(KindIncident, "status", fmt.Sprintf("%q is not a known status", status)))
	}
	inc, err := r.FindIncident(id)
	if err != nil {
		return nil, fmt.Errorf("update incident status: %w", err)
	}
	inc.Status = status
	return inc, nil
}

// UpdateDriverStatus sets the status of a driver.
func (r *Registry) UpdateDriverStatus(id string, status DriverStatus) (*Person, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("update driver status: %w", invalid(KindDriver, "status", fmt.Sprintf("%q is not a known status", status)))
	}
	d, err := r.FindDriver(id)
	if err != nil {
		return nil, fmt.Errorf("update driver status: %w", err)
	}
	d.Driver.Status = status
	return d, nil
}

// AssignRoute assigns an existing route to a passenger.
func (r *Registry) AssignRoute(passengerID, routeID string) (*Person, error) {
	p, err := r.FindPerson(passengerID)
	if err != nil {
		return nil, fmt.Errorf("assign route: %w", err)
	}
	if !p.IsPassenger() {
		return nil, fmt.Errorf("assign route: %w", notFound(KindPassenger, passengerID))
	}
	if _, err := r.FindRoute(routeID); err != nil {
		return nil, fmt.Errorf("assign route: %w", err)
	}
	p.Passenger.RouteID = routeID
	return p, nil
}

// PassengerRoute resolves the route assigned to a passenger.
// Returns false if the passenger has no route or the route no longer exists.
func (r *Registry) PassengerRoute(p *Person) (*Route, bool) {
	if !p.IsPassenger() || p.Passenger.RouteID == "" {
		return nil, false
	}
	route, err := r.FindRoute(p.Passenger.RouteID)
	if err != nil {
		return nil, false
	}
	return route, true
}
