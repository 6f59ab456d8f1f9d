package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/mobility/internal/mobility"
)

// Counts holds the number of rows per record kind.
type Counts struct {
	Routes     int `json:"routes"`
	Incidents  int `json:"incidents"`
	Passengers int `json:"passengers"`
	Drivers    int `json:"drivers"`
}

// Save replaces the stored registry with snap inside one transaction.
// Rows are numbered in slice order; passengers precede drivers in the people
// table, matching the order Registry.Import rebuilds.
func (s *Store) Save(ctx context.Context, snap mobility.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, table := range []string{"routes", "incidents", "people"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("save: clear %s: %w", table, err)
		}
	}

	for seq, r := range snap.Routes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO routes (seq, id, distance, estimated_time, start_point, end_point)
			VALUES (?, ?, ?, ?, ?, ?)
		`, seq, r.ID, r.Distance, r.EstimatedTime, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("save: route %q: %w", r.ID, err)
		}
	}

	for seq, inc := range snap.Incidents {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO incidents (seq, id, type, location, occurred_at, description, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, seq, inc.ID, inc.Type, inc.Location, inc.OccurredAt.Format(time.RFC3339Nano), inc.Description, inc.Status)
		if err != nil {
			return fmt.Errorf("save: incident %q: %w", inc.ID, err)
		}
	}

	seq := 0
	insertPerson := func(kind mobility.PersonKind, p mobility.PersonRecord) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO people (seq, id, kind, name, contact, route_id, vehicle, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, seq, p.ID, string(kind), p.Name, p.Contact, p.RouteID, p.Vehicle, p.Status)
		if err != nil {
			return fmt.Errorf("save: %s %q: %w", kind, p.ID, err)
		}
		seq++
		return nil
	}
	for _, p := range snap.Passengers {
		if err := insertPerson(mobility.PersonPassenger, p); err != nil {
			return err
		}
	}
	for _, p := range snap.Drivers {
		if err := insertPerson(mobility.PersonDriver, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save: commit: %w", err)
	}
	return nil
}

// Load reads the stored registry.
// Returns empty slices (not nil) when a table has no rows.
func (s *Store) Load(ctx context.Context) (mobility.Snapshot, error) {
	routes, err := s.loadRoutes(ctx)
	if err != nil {
		return mobility.Snapshot{}, err
	}
	incidents, err := s.loadIncidents(ctx)
	if err != nil {
		return mobility.Snapshot{}, err
	}
	passengers, drivers, err := s.loadPeople(ctx)
	if err != nil {
		return mobility.Snapshot{}, err
	}
	return mobility.Snapshot{
		Routes:     routes,
		Incidents:  incidents,
		Passengers: passengers,
		Drivers:    drivers,
	}, nil
}

// Counts returns the number of stored rows per record kind.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM routes),
			(SELECT COUNT(*) FROM incidents),
			(SELECT COUNT(*) FROM people WHERE kind = 'passenger'),
			(SELECT COUNT(*) FROM people WHERE kind = 'driver')
	`).Scan(&c.Routes, &c.Incidents, &c.Passengers, &c.Drivers)
	if err != nil {
		return Counts{}, fmt.Errorf("count rows: %w", err)
	}
	return c, nil
}

func (s *Store) loadRoutes(ctx context.Context) ([]mobility.RouteRecord, error) {
	rows, err := s.Query(ctx, `
		SELECT id, distance, estimated_time, start_point, end_point
		FROM routes
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	routes := []mobility.RouteRecord{}
	for rows.Next() {
		var r mobility.RouteRecord
		if err := rows.Scan(&r.ID, &r.Distance, &r.EstimatedTime, &r.Start, &r.End); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}
	return routes, nil
}

func (s *Store) loadIncidents(ctx context.Context) ([]mobility.IncidentRecord, error) {
	rows, err := s.Query(ctx, `
		SELECT id, type, location, occurred_at, description, status
		FROM incidents
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query incidents: %w", err)
	}
	defer rows.Close()

	incidents := []mobility.IncidentRecord{}
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incidents: %w", err)
	}
	return incidents, nil
}

func scanIncident(rows *sql.Rows) (mobility.IncidentRecord, error) {
	var (
		inc        mobility.IncidentRecord
		occurredAt string
	)
	if err := rows.Scan(&inc.ID, &inc.Type, &inc.Location, &occurredAt, &inc.Description, &inc.Status); err != nil {
		return mobility.IncidentRecord{}, fmt.Errorf("scan incident: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, occurredAt)
	if err != nil {
		return mobility.IncidentRecord{}, fmt.Errorf("incident %q: parse occurred_at: %w", inc.ID, err)
	}
	inc.OccurredAt = t
	return inc, nil
}

func (s *Store) loadPeople(ctx context.Context) (passengers, drivers []mobility.PersonRecord, err error) {
	rows, err := s.Query(ctx, `
		SELECT id, kind, name, contact, route_id, vehicle, status
		FROM people
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	passengers = []mobility.PersonRecord{}
	drivers = []mobility.PersonRecord{}
	for rows.Next() {
		var (
			p    mobility.PersonRecord
			kind string
		)
		if err := rows.Scan(&p.ID, &kind, &p.Name, &p.Contact, &p.RouteID, &p.Vehicle, &p.Status); err != nil {
			return nil, nil, fmt.Errorf("scan person: %w", err)
		}
		switch mobility.PersonKind(kind) {
		case mobility.PersonDriver:
			drivers = append(drivers, p)
		default:
			passengers = append(passengers, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate people: %w", err)
	}
	return passengers, drivers, nil
}
