// Package gridconn treats a grid.Grid's pixels as a graph of cells so
// the transform library can answer connectivity questions: which
// non-zero pixels are 4- or 8-connected (Cut, RemoveNoise), and which
// zero pixels are enclosed rather than reachable from the border
// (FillHoles).
//
// Adapted from lvlath's gridgraph package: this version treats any
// non-zero pixel as "land" (Components groups by connectivity alone,
// not by exact value equality, since Cut must merge adjacent pixels of
// differing colours into one component), and adds Outside, a
// border-flood-fill answering which zero pixels are reachable from the
// frame edge.
package gridconn

import "errors"

// ErrEmptyGrid indicates the input has no rows or no columns.
var ErrEmptyGrid = errors.New("gridconn: input grid must have at least one row and one column")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one grid cell by its row, column, and colour.
type Cell struct {
	Row, Col int
	Value    int8
}

// Graph wraps a rectangular pixel buffer for connectivity analysis. It
// is read-only once built via New.
type Graph struct {
	Width, Height   int
	Values          []int8 // row-major, length Width*Height
	Conn            Connectivity
	neighborOffsets [][2]int
}

// New builds a Graph over a row-major pixel buffer of length width*height.
// Returns ErrEmptyGrid if width or height is zero.
// Complexity: O(Width*Height).
func New(width, height int, values []int8, conn Connectivity) (*Graph, error) {
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}
	cp := make([]int8, len(values))
	copy(cp, values)

	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	return &Graph{Width: width, Height: height, Values: cp, Conn: conn, neighborOffsets: offsets}, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Graph) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// index maps (row, col) to a row-major index.
func (g *Graph) index(row, col int) int { return row*g.Width + col }

// at returns the value at (row, col).
func (g *Graph) at(row, col int) int8 { return g.Values[g.index(row, col)] }
