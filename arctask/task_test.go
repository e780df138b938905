package arctask_test

import (
	"testing"

	"github.com/arcdag/solver/arctask"
	"github.com/stretchr/testify/require"
)

func TestToGrid_Valid(t *testing.T) {
	g, err := arctask.ToGrid(arctask.Grid{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 2, g.Height)
}

func TestToGrid_Empty(t *testing.T) {
	_, err := arctask.ToGrid(arctask.Grid{})
	require.ErrorIs(t, err, arctask.ErrEmptyGrid)
}

func TestToGrid_Ragged(t *testing.T) {
	_, err := arctask.ToGrid(arctask.Grid{{1, 2}, {3}})
	require.ErrorIs(t, err, arctask.ErrRaggedGrid)
}

func TestToGrid_BadColour(t *testing.T) {
	_, err := arctask.ToGrid(arctask.Grid{{1, 42}})
	require.ErrorIs(t, err, arctask.ErrBadColour)
}

func TestToGrid_TooLarge(t *testing.T) {
	rows := make(arctask.Grid, 31)
	for i := range rows {
		rows[i] = make([]int, 31)
	}
	_, err := arctask.ToGrid(rows)
	require.ErrorIs(t, err, arctask.ErrTooLarge)
}

func TestFromGrid_RoundTrips(t *testing.T) {
	in := arctask.Grid{{1, 0}, {0, 1}}
	g, err := arctask.ToGrid(in)
	require.NoError(t, err)
	out := arctask.FromGrid(g)
	require.Equal(t, in, out)
}

func TestToGrids_FailsOnFirstInvalid(t *testing.T) {
	_, err := arctask.ToGrids([]arctask.Grid{{{1}}, {}})
	require.ErrorIs(t, err, arctask.ErrEmptyGrid)
}
