// Package store provides SQLite-backed storage for the mobility registry
// between CLI invocations.
//
// The store holds one table per record kind: routes, incidents and people.
// Every row carries a seq column with its position in the registry sequence.
//
// # Ordering
//
// Save replaces the contents of all tables inside a single transaction,
// numbering rows from 0 in sequence order. Load reads with
// ORDER BY seq ASC, id ASC COLLATE BINARY, so a save followed by a load
// returns records in the order they were saved, including any order produced
// by sorting.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
