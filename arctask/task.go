package arctask

import (
	"errors"
	"fmt"

	"github.com/arcdag/solver/grid"
)

// Sentinel errors for wire conversion.
var (
	// ErrEmptyGrid indicates a wire Grid had zero rows or an empty first
	// row (an empty later row is reported as ErrRaggedGrid).
	ErrEmptyGrid = errors.New("arctask: grid is empty")
	// ErrRaggedGrid indicates a wire Grid's rows were not all the same length.
	ErrRaggedGrid = errors.New("arctask: grid rows have unequal length")
	// ErrBadColour indicates a wire Grid held a value outside 0..9.
	ErrBadColour = errors.New("arctask: colour out of range")
	// ErrTooLarge indicates a wire Grid exceeded the public size limits.
	ErrTooLarge = errors.New("arctask: grid exceeds maximum size")
)

// MaxSide is the public ingest/emit bound on either side of a Grid: a
// width or height of 0 or greater than 30 is rejected at this boundary.
const MaxSide = 30

// Grid is the wire representation of one image: a rectangular slice of
// small integers, JSON-marshalled directly.
type Grid [][]int

// Pair is one training example.
type Pair struct {
	Input  Grid `json:"input"`
	Output Grid `json:"output"`
}

// Task is a full wire-format task: the training pairs plus one or more
// test inputs to solve.
type Task struct {
	Training []Pair `json:"train"`
	Test     []Grid `json:"test"`
}

// Answer is one test input's ranked output candidates, most promising first.
type Answer struct {
	Grids []Grid `json:"grids"`
}

// ToGrid validates and converts a wire Grid to a grid.Grid at offset (0, 0).
func ToGrid(w Grid) (grid.Grid, error) {
	if len(w) == 0 || len(w[0]) == 0 {
		return grid.Grid{}, ErrEmptyGrid
	}
	width := len(w[0])
	for _, row := range w {
		if len(row) != width {
			return grid.Grid{}, ErrRaggedGrid
		}
	}
	if len(w) > MaxSide || width > MaxSide {
		return grid.Grid{}, fmt.Errorf("%w: %dx%d > %d", ErrTooLarge, width, len(w), MaxSide)
	}
	// Range-check before FromRows narrows each value to int8, so that
	// out-of-range values cannot wrap into the palette (256 -> 0).
	for _, row := range w {
		for _, v := range row {
			if v < int(grid.MinColour) || v > int(grid.MaxColour) {
				return grid.Grid{}, fmt.Errorf("%w: %d", ErrBadColour, v)
			}
		}
	}
	rows := make([][]int, len(w))
	copy(rows, w)
	g, err := grid.FromRows(rows)
	if err != nil {
		return grid.Grid{}, err
	}
	if err := grid.ValidatePixelRange(g, false); err != nil {
		return grid.Grid{}, fmt.Errorf("%w: %v", ErrBadColour, err)
	}
	return g, nil
}

// FromGrid converts a grid.Grid back to its wire representation.
func FromGrid(g grid.Grid) Grid {
	out := make(Grid, len(g.Rows()))
	for i, row := range g.Rows() {
		out[i] = row
	}
	return out
}

// ToGrids converts a slice of wire Grids, failing on the first invalid one.
func ToGrids(ws []Grid) ([]grid.Grid, error) {
	out := make([]grid.Grid, len(ws))
	for i, w := range ws {
		g, err := ToGrid(w)
		if err != nil {
			return nil, fmt.Errorf("grid %d: %w", i, err)
		}
		out[i] = g
	}
	return out, nil
}
