// Package piece extracts, over D parallel transform DAGs (one per
// training pair plus the test input), tuples of node ids reachable from
// their respective roots by the identical function-id sequence.
//
// A piece is reusable structure: if applying the same transform chain to
// every training input's DAG and the test input's DAG lands on a node
// eligible to participate in composition (IsPiece) in all D DAGs at
// once, that tuple is a candidate building block the compositor can try
// to place into every output simultaneously.
//
// Extraction walks the product graph breadth-first, seeded at each
// shared root index, expanding only function ids present in every
// constituent node's child map, and deduplicating tuples by a 64-bit
// hash of their node-id sequence so each tuple is considered for piece
// status at most once.
package piece
