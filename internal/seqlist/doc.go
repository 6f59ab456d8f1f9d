// Package seqlist provides List, a generic singly-linked ordered sequence.
//
// List is the only storage primitive used by the mobility registry. It keeps
// insertion order across appends, removes by value equality, gives positional
// access by walking links from the head, and sorts in place by exchanging
// payloads between adjacent nodes.
//
// # Invariants
//
//   - Len() equals the number of nodes reachable from the head
//   - The last reachable node has a nil next pointer
//   - AppendLast preserves insertion order
//   - Sort preserves Len() and the multiset of stored values
//
// Nodes are never exposed. A List is not safe for concurrent use; callers
// must serialize access externally.
//
// The scan helpers (Find, IndexFunc, Filter, MinBy) walk the list from the
// head on every call. There is no hidden index.
package seqlist
