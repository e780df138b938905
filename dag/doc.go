// Package dag builds the per-input transform DAG: the interned graph of
// every State reachable from a set of root States by repeatedly
// applying transform.Library functions, up to configured depth, node
// count, pixel, and wall-clock caps.
//
// Node identity is content-addressed: two transform sequences that
// reach the same State (by State.Hash, resolved by State.Equal on
// collision) collapse onto one node. The per-node child map
// (function id -> node id) is purely a cache of already-applied
// transforms; it never creates a cycle, since Depth is part of a
// State's identity and every edge leads from a node to a child whose
// Depth is strictly greater (each transform costs at least 1).
//
// Build() is cooperative, single-threaded, and terminates on any of:
// empty frontier, node count >= MaxNodes, or elapsed time >= TimeLimit.
// None of these is an error — a DAG that stops early is still valid,
// just smaller; resource exhaustion is never surfaced as an error at
// this boundary.
package dag
