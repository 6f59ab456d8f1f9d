package mobility

import (
	"fmt"
	"time"
)

// Snapshot is the persisted form of a Registry: arrays of plain records.
type Snapshot struct {
	Routes     []RouteRecord    `json:"routes"`
	Incidents  []IncidentRecord `json:"incidents"`
	Passengers []PersonRecord   `json:"passengers"`
	Drivers    []PersonRecord   `json:"drivers"`
}

// RouteRecord is the persisted form of a Route.
type RouteRecord struct {
	ID            string  `json:"id"`
	Distance      float64 `json:"distance"`
	EstimatedTime int     `json:"estimated_time"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
}

// IncidentRecord is the persisted form of an Incident.
type IncidentRecord struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// PersonRecord is the persisted form of a Person. Passengers use RouteID,
// drivers use Vehicle and Status.
type PersonRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	RouteID string `json:"route_id,omitempty"`
	Vehicle string `json:"vehicle,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Len returns the total number of records in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Routes) + len(s.Incidents) + len(s.Passengers) + len(s.Drivers)
}

// Record returns the persisted form of the route.
func (r *Route) Record() RouteRecord {
	return RouteRecord{
		ID:            r.ID,
		Distance:      r.Distance,
		EstimatedTime: r.EstimatedTime,
		Start:         r.Start,
		End:           r.End,
	}
}

// Record returns the persisted form of the incident.
func (i *Incident) Record() IncidentRecord {
	return IncidentRecord{
		ID:          i.ID,
		Type:        string(i.Type),
		Location:    i.Location,
		OccurredAt:  i.OccurredAt,
		Description: i.Description,
		Status:      string(i.Status),
	}
}

// Record returns the persisted form of the person. Only the fields of the
// person's kind are set.
func (p *Person) Record() PersonRecord {
	rec := PersonRecord{ID: p.ID, Name: p.Name, Contact: p.Contact}
	switch {
	case p.IsPassenger():
		rec.RouteID = p.Passenger.RouteID
	case p.IsDriver():
		rec.Vehicle = p.Driver.Vehicle
		rec.Status = string(p.Driver.Status)
	}
	return rec
}

// Export copies the registry into a Snapshot, keeping sequence order.
// People are split into passengers and drivers.
func (r *Registry) Export() Snapshot {
	snap := Snapshot{
		Routes:     make([]RouteRecord, 0, r.routes.Len()),
		Incidents:  make([]IncidentRecord, 0, r.incidents.Len()),
		Passengers: []PersonRecord{},
		Drivers:    []PersonRecord{},
	}

	for route := range r.routes.All() {
		snap.Routes = append(snap.Routes, route.Record())
	}
	for inc := range r.incidents.All() {
		snap.Incidents = append(snap.Incidents, inc.Record())
	}
	for p := range r.people.All() {
		switch {
		case p.IsPassenger():
			snap.Passengers = append(snap.Passengers, p.Record())
		case p.IsDriver():
			snap.Drivers = append(snap.Drivers, p.Record())
		}
	}

	return snap
}

// Import replaces the registry contents with the snapshot.
//
// Sequences are rebuilt by appending records one at a time: routes, then
// incidents, then passengers followed by drivers in the people sequence.
// A passenger may reference a route id that is not in the snapshot.
//
// If any record is invalid the registry is left unchanged.
func (r *Registry) Import(snap Snapshot) error {
	next := NewRegistry()

	for i, rec := range snap.Routes {
		route := Route{
			ID:            rec.ID,
			Distance:      rec.Distance,
			EstimatedTime: rec.EstimatedTime,
			Start:         rec.Start,
			End:           rec.End,
		}
		if _, err := next.RegisterRoute(route); err != nil {
			return fmt.Errorf("import routes[%d]: %w", i, err)
		}
	}

	for i, rec := range snap.Incidents {
		typ, err := ParseIncidentType(rec.Type)
		if err != nil {
			return fmt.Errorf("import incidents[%d]: %w", i, err)
		}
		var status IncidentStatus
		if rec.Status != "" {
			if status, err = ParseIncidentStatus(rec.Status); err != nil {
				return fmt.Errorf("import incidents[%d]: %w", i, err)
			}
		}
		inc := Incident{
			ID:          rec.ID,
			Type:        typ,
			Location:    rec.Location,
			OccurredAt:  rec.OccurredAt,
			Description: rec.Description,
			Status:      status,
		}
		if _, err := next.RegisterIncident(inc); err != nil {
			return fmt.Errorf("import incidents[%d]: %w", i, err)
		}
	}

	for i, rec := range snap.Passengers {
		if err := next.addPerson(NewPassenger(rec.ID, rec.Name, rec.Contact, rec.RouteID)); err != nil {
			return fmt.Errorf("import passengers[%d]: %w", i, err)
		}
	}

	for i, rec := range snap.Drivers {
		status := DriverAvailable
		if rec.Status != "" {
			var err error
			if status, err = ParseDriverStatus(rec.Status); err != nil {
				return fmt.Errorf("import drivers[%d]: %w", i, err)
			}
		}
		if err := next.addPerson(NewDriver(rec.ID, rec.Name, rec.Contact, rec.Vehicle, status)); err != nil {
			return fmt.Errorf("import drivers[%d]: %w", i, err)
		}
	}

	r.replace(next)
	return nil
}

func (r *Registry) replace(next *Registry) {
	r.routes.Clear()
	r.incidents.Clear()
	r.people.Clear()
	r.drivers.Clear()
	*r = *next
}
