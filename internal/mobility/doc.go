// Package mobility holds the records of the mobility and incident registry and
// the Registry that manages them.
//
// The Registry keeps four ordered sequences, all of them seqlist.List values:
//
//   - routes: registered routes, in registration order until sorted
//   - incidents: reported incidents, in registration order until sorted
//   - people: passengers and drivers together
//   - drivers: drivers only, kept in step with people
//
// Every lookup is a linear scan over the matching sequence. Sorting reorders
// the sequence in place, so listings after a sort reflect the new order.
//
// Records are stored by pointer. Removal compares pointers, which means a
// record is removed only when the exact stored value is passed back.
//
// Export and Import convert between the Registry and Snapshot, the plain
// record form used by the JSON and SQLite persistence layers.
package mobility
