package compose_test

import (
	"testing"

	"github.com/arcdag/solver/compose"
	"github.com/arcdag/solver/dag"
	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/piece"
	"github.com/arcdag/solver/transform"
	"github.com/stretchr/testify/require"
)

func oneNodeDAG(t *testing.T, rows [][]int) (*dag.DAG, dag.NodeID) {
	t.Helper()
	lib := transform.New()
	require.NoError(t, transform.RegisterBuiltins(lib))
	d, err := dag.New(dag.DefaultConfig(), lib)
	require.NoError(t, err)
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	s, err := grid.NewState([]grid.Grid{g}, false, 0, 0)
	require.NoError(t, err)
	id := d.AddRoot(s)
	return d, id
}

func TestCompose_AppliesMatchingPiece(t *testing.T) {
	d1, r1 := oneNodeDAG(t, [][]int{{1, 0}, {0, 1}})
	d2, r2 := oneNodeDAG(t, [][]int{{1, 0}, {0, 1}})

	col := &piece.Collection{
		DAGs:   []*dag.DAG{d1, d2},
		Memory: []dag.NodeID{r1, r2},
		Pieces: []piece.PieceRecord{{MemoryIndex: 0, Depth: 1}},
	}

	slots := []compose.SlotSpec{
		{Width: 2, Height: 2, Target: []int8{1, 0, 0, 1}},
		{Width: 2, Height: 2, Target: nil},
	}

	cands, err := compose.Compose(col, slots, compose.DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, cands)

	want, err := grid.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)

	found := false
	for _, c := range cands {
		if c.Images[0].EqualPixels(want) && c.Images[1].EqualPixels(want) {
			found = true
			break
		}
	}
	require.True(t, found, "expected a candidate reproducing the diagonal in both slots")
}

func TestCompose_RejectsConflictingPiece(t *testing.T) {
	d1, r1 := oneNodeDAG(t, [][]int{{5, 5}, {5, 5}})
	d2, r2 := oneNodeDAG(t, [][]int{{5, 5}, {5, 5}})

	col := &piece.Collection{
		DAGs:   []*dag.DAG{d1, d2},
		Memory: []dag.NodeID{r1, r2},
		Pieces: []piece.PieceRecord{{MemoryIndex: 0, Depth: 1}},
	}

	// Training target disagrees with the piece's image everywhere, so no
	// candidate should report that piece as applied to slot 0.
	slots := []compose.SlotSpec{
		{Width: 2, Height: 2, Target: []int8{1, 1, 1, 1}},
		{Width: 2, Height: 2, Target: nil},
	}

	cands, err := compose.Compose(col, slots, compose.DefaultConfig())
	require.NoError(t, err)
	for _, c := range cands {
		require.Zero(t, c.PieceCount, "an inadmissible piece must never be counted as applied")
	}
}

func TestCompose_NoSlots(t *testing.T) {
	_, err := compose.Compose(&piece.Collection{}, nil, compose.DefaultConfig())
	require.ErrorIs(t, err, compose.ErrNoSlots)
}

func TestCompose_SlotMismatch(t *testing.T) {
	d1, r1 := oneNodeDAG(t, [][]int{{1}})
	col := &piece.Collection{DAGs: []*dag.DAG{d1}, Memory: []dag.NodeID{r1}}
	_, err := compose.Compose(col, []compose.SlotSpec{{Width: 1, Height: 1}, {Width: 1, Height: 1}}, compose.DefaultConfig())
	require.ErrorIs(t, err, compose.ErrSlotMismatch)
}
