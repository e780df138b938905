// Package transform holds the process-wide, initialise-once Library of
// pure grid transforms that the DAG expands with.
//
// Every entry is {name, fn, cost, listed}. fn is pure (no side effects,
// no global mutation), deterministic, and bounded: it returns ok=false
// rather than producing images that would overrun the caller's pixel
// budget. fn never sees the depth budget; the caller (package dag)
// rejects a result whose depth would exceed it. fn must never panic on
// a well-formed State.
//
// The Library itself is safe for concurrent reads from many solves once
// built; Register is only ever called during the one-time Default()
// initialisation (guarded by sync.Once) or by tests building an
// isolated Library with New().
package transform
