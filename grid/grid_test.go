package grid_test

import (
	"errors"
	"testing"

	"github.com/arcdag/solver/grid"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_NegativeDims(t *testing.T) {
	_, err := grid.NewGrid(-1, 2, 0)
	require.True(t, errors.Is(err, grid.ErrNegativeDims))
}

func TestFromRows_RoundTrip(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, rows, g.Rows())
}

func TestFromRows_NonRectangular(t *testing.T) {
	_, err := grid.FromRows([][]int{{1, 2}, {3}})
	require.True(t, errors.Is(err, grid.ErrEmptyPixels))
}

func TestAt_OutOfRange(t *testing.T) {
	g, err := grid.NewGrid(2, 2, 0)
	require.NoError(t, err)
	_, err = g.At(5, 0)
	require.True(t, errors.Is(err, grid.ErrOutOfRange))
}

func TestSafe_OutOfRangeReturnsZero(t *testing.T) {
	g, err := grid.NewGrid(2, 2, 5)
	require.NoError(t, err)
	require.Equal(t, int8(0), g.Safe(-1, 0))
	require.Equal(t, int8(0), g.Safe(0, 99))
	require.Equal(t, int8(5), g.Safe(0, 0))
}

func TestEqual_StructuralOverOffset(t *testing.T) {
	a, _ := grid.NewGrid(2, 2, 1)
	b := a.WithOffset(3, 4)
	require.False(t, a.Equal(b))
	require.True(t, a.EqualPixels(b))
}

func TestValidatePixelRange(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 11}})
	require.True(t, errors.Is(grid.ValidatePixelRange(g, false), grid.ErrBadColour))

	sentinel, _ := grid.FromRows([][]int{{int(grid.Unfilled), int(grid.Ignored)}})
	require.NoError(t, grid.ValidatePixelRange(sentinel, true))
	require.Error(t, grid.ValidatePixelRange(sentinel, false))
}

func TestValidateSize(t *testing.T) {
	g, _ := grid.NewGrid(41, 1, 0)
	require.True(t, errors.Is(grid.ValidateSize(g, 40, 0), grid.ErrTooWide))

	g2, _ := grid.NewGrid(40, 40, 0)
	require.True(t, errors.Is(grid.ValidateSize(g2, 0, 1000), grid.ErrTooLarge))
}

func TestHash_Deterministic(t *testing.T) {
	a, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
	c, _ := grid.FromRows([][]int{{1, 2}, {3, 5}})
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestHash_OffsetAffectsHash(t *testing.T) {
	a, _ := grid.NewGrid(2, 2, 1)
	b := a.WithOffset(1, 0)
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestClone_NoAliasing(t *testing.T) {
	a, _ := grid.NewGrid(2, 2, 0)
	b := a.Clone()
	b.Pixels[0] = 9
	require.NotEqual(t, a.Pixels[0], b.Pixels[0])
}
