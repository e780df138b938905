package solver

import "github.com/arcdag/solver/arctask"

// SpecialistSolver is the orchestration hook for narrow pattern
// matchers (tiling, symmetry, colour-counting, and similar) developed
// outside the core. The orchestrator treats every specialist as
// opaque: it only calls CanSolve, Solve, and Confidence, and never
// recurses back into them from the core pipeline.
type SpecialistSolver interface {
	// CanSolve reports whether this specialist is applicable to the
	// given task at all; Solve is only called when this returns true.
	CanSolve(training []arctask.Pair, test arctask.Grid) bool
	// Solve returns candidate answer grids for test, possibly empty.
	Solve(training []arctask.Pair, test arctask.Grid) ([]arctask.Grid, error)
	// Confidence returns this specialist's advertised confidence for
	// the i-th grid of its most recent Solve call.
	Confidence(i int) float64
}
