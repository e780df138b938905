// Package solver is the orchestrator: the one public entry point tying
// together grid/state ingest, per-input transform DAGs, piece
// extraction, greedy composition, and candidate scoring into a single
// solve call per ARC task.
//
// A solve is single-threaded and cooperative: every stage runs
// sequentially, and the only cancellation channel is Config.TimeLimit,
// polled during DAG construction. Resource caps silently prune search;
// the only error a caller ever sees is malformed input at the ingest
// boundary. Everything else — an exhausted budget, a defensive abort
// after an unexpected internal panic — degrades to an empty or partial
// answer list for that test input, never a returned error.
package solver
