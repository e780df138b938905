// Package grid defines the immutable coloured 2D matrix and the State
// wrapper used throughout the solver.
//
// What:
//
//   - Grid is a rectangular matrix of colours in 0..9, with a signed
//     (X, Y) offset. It never mutates after construction.
//   - State bundles one or more Grids plus an IsVector flag and a
//     depth counter; it is the payload carried by every dag.Node.
//   - Hash provides a 64-bit content hash for both types, used by dag
//     to hash-cons nodes.
//
// Why:
//
//   - Sharing by content (not by pointer) is what lets the transform
//     DAG dedup aggressively: two transform sequences that land on the
//     same pixels collapse to one node.
//
// Sentinels:
//
//   - Unfilled = 10 is used only inside the compositor's working
//     buffers. Ignored = -1 is used only by pattern matching. Neither
//     passes ValidatePixelRange unless sentinels are explicitly allowed,
//     and neither is ever emitted across the public API.
package grid
