// Package harness runs YAML scenarios against a fresh mobility registry.
//
// A scenario registers records, applies operations such as sorting or status
// updates, and then asserts on the resulting sequences. Each run starts from an
// empty in-memory registry with deterministic ids and clock, so the trace of a
// scenario is reproducible and can be compared against a golden file.
//
// # Scenario Format
//
//	name: route_ranking
//	description: "Sorting by distance puts the shortest route first"
//	setup:
//	  - action: register_route
//	    args: { id: R1, distance: 10, estimated_time: 15, start: Centro, end: Norte }
//	  - action: register_route
//	    args: { id: R2, distance: 5.5, estimated_time: 10, start: Sur, end: Este }
//	flow:
//	  - action: sort_routes
//	  - action: register_passenger
//	    args: { name: Ana, route_id: R9 }
//	    expect: not_found
//	assertions:
//	  - type: order
//	    sequence: routes
//	    ids: [R2, R1]
//	  - type: best_route
//	    id: R2
//
// Setup steps must succeed. Flow steps succeed unless expect names the error
// outcome: not_found, duplicate or invalid.
//
// # Actions
//
//   - register_route: id, distance, estimated_time, start, end
//   - register_incident: id, type, location, occurred_at, description, status
//   - register_passenger: id, name, contact, route_id
//   - register_driver: id, name, contact, vehicle, status
//   - remove_person: id
//   - assign_route: passenger_id, route_id
//   - update_incident_status: id, status
//   - update_driver_status: id, status
//   - sort_routes, sort_incidents
//
// A missing id is generated as "id-1", "id-2", ... and a missing occurred_at
// is taken from a clock starting at 2024-01-01T00:00:00Z that advances one
// minute each time it is read.
//
// # Assertion Types
//
//   - order: the ids of a sequence (routes, incidents, people, drivers) in order
//   - count: the length of a sequence
//   - best_route: the id of the best route, or empty when there is none
//   - find_drivers: the ids returned by a driver name search
//   - status: the status of an incident or driver
package harness
