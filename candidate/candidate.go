package candidate

import "github.com/arcdag/solver/grid"

// Candidate is one assembled answer: a grid per DAG slot (training
// pairs first, the test input last), plus the composition bookkeeping
// the scorer needs.
type Candidate struct {
	// Images holds one grid per DAG slot, in DAG order: the first
	// len(Images)-1 are meant to match the corresponding training
	// output, the last is the proposed test answer.
	Images []grid.Grid
	// PieceCount is the number of pieces applied while assembling Images.
	PieceCount int
	// SumDepth is the sum of every applied piece's depth.
	SumDepth uint64
	// MaxDepth is the largest depth among applied pieces.
	MaxDepth uint64
	// Score is filled in by package score; zero until then.
	Score float64
}

// New returns a Candidate over images with zeroed bookkeeping.
func New(images []grid.Grid) *Candidate {
	return &Candidate{Images: append([]grid.Grid(nil), images...)}
}

// TestAnswer returns the last image, the proposed test output.
func (c *Candidate) TestAnswer() grid.Grid {
	return c.Images[len(c.Images)-1]
}

// TrainingOutputs returns every image but the last, in DAG order.
func (c *Candidate) TrainingOutputs() []grid.Grid {
	return c.Images[:len(c.Images)-1]
}

// RecordPiece folds one applied piece's depth into the running
// bookkeeping.
func (c *Candidate) RecordPiece(depth uint64) {
	c.PieceCount++
	c.SumDepth += depth
	if depth > c.MaxDepth {
		c.MaxDepth = depth
	}
}

// Clone returns a deep-enough copy: a new Images slice (Grid itself is
// immutable by convention) and identical bookkeeping, safe for the
// outer compositor driver to branch from without aliasing.
func (c *Candidate) Clone() *Candidate {
	out := &Candidate{
		Images:     append([]grid.Grid(nil), c.Images...),
		PieceCount: c.PieceCount,
		SumDepth:   c.SumDepth,
		MaxDepth:   c.MaxDepth,
		Score:      c.Score,
	}
	return out
}
