package transform_test

import (
	"testing"

	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/transform"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, rows [][]int) grid.State {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	s, err := grid.NewState([]grid.Grid{g}, false, 0, 0)
	require.NoError(t, err)
	return s
}

func runFn(t *testing.T, name string, s grid.State) (grid.State, bool) {
	t.Helper()
	lib := transform.Default()
	id, err := lib.Lookup(name)
	require.NoError(t, err)
	entry, err := lib.Get(id)
	require.NoError(t, err)
	images, isVector, ok := entry.Fn(s, 0)
	if !ok {
		return grid.State{}, false
	}
	out, err := grid.NewState(images, isVector, int(s.Depth)+int(entry.Cost), 0)
	require.NoError(t, err)
	return out, true
}

func TestRigid0_IsIdentity(t *testing.T) {
	s := mustState(t, [][]int{{1, 2}, {3, 4}})
	out, ok := runFn(t, "rigid_0", s)
	require.True(t, ok)
	require.True(t, out.First().EqualPixels(s.First()))
}

func TestRigid_InversesRoundTrip(t *testing.T) {
	s := mustState(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	for i := 0; i < 8; i++ {
		forward, ok := runFn(t, rigidName(i), s)
		require.True(t, ok)
		inv := transform.RigidInverse(i)
		back, ok := runFn(t, rigidName(inv), forward)
		require.True(t, ok)
		require.True(t, back.First().EqualPixels(s.First()), "rigid_%d inverse rigid_%d failed", i, inv)
	}
}

func rigidName(i int) string {
	names := [8]string{"rigid_0", "rigid_1", "rigid_2", "rigid_3", "rigid_4", "rigid_5", "rigid_6", "rigid_7"}
	return names[i]
}

func TestTranspose_SelfInverse(t *testing.T) {
	s := mustState(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	once, ok := runFn(t, "transpose", s)
	require.True(t, ok)
	twice, ok := runFn(t, "transpose", once)
	require.True(t, ok)
	require.True(t, twice.First().EqualPixels(s.First()))
}

func TestFlips_SelfInverse(t *testing.T) {
	s := mustState(t, [][]int{{1, 2}, {3, 4}})
	for _, name := range []string{"flipH", "flipV"} {
		once, ok := runFn(t, name, s)
		require.True(t, ok)
		twice, ok := runFn(t, name, once)
		require.True(t, ok)
		require.True(t, twice.First().EqualPixels(s.First()), name)
	}
}

func TestCompress_Idempotent(t *testing.T) {
	s := mustState(t, [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	once, ok := runFn(t, "compress", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1}}, once.First().Rows())
	twice, ok := runFn(t, "compress", once)
	require.True(t, ok)
	require.True(t, twice.First().EqualPixels(once.First()))
}

func TestCompress_AllZero(t *testing.T) {
	s := mustState(t, [][]int{{0, 0}, {0, 0}})
	out, ok := runFn(t, "compress", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{0}}, out.First().Rows())
}

func TestToOrigin_Idempotent(t *testing.T) {
	g, _ := grid.NewGrid(2, 2, 1)
	g = g.WithOffset(3, 4)
	s, err := grid.NewState([]grid.Grid{g}, false, 0, 0)
	require.NoError(t, err)
	once, ok := runFn(t, "toOrigin", s)
	require.True(t, ok)
	require.Equal(t, 0, once.First().X)
	twice, ok := runFn(t, "toOrigin", once)
	require.True(t, ok)
	require.True(t, twice.First().Equal(once.First()))
}

func TestFilterCol_KeepsOnlyThatColour(t *testing.T) {
	s := mustState(t, [][]int{{1, 0, 2}, {0, 1, 0}})
	out, ok := runFn(t, "filterCol_1", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}}, out.First().Rows())
}

func TestInvert_SwapsZeroOne(t *testing.T) {
	s := mustState(t, [][]int{{0, 1}, {1, 2}})
	out, ok := runFn(t, "invert", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1, 0}, {0, 2}}, out.First().Rows())
}

func TestCut_SeparatesComponentsAcrossColours(t *testing.T) {
	s := mustState(t, [][]int{{1, 2, 0}, {0, 0, 0}, {0, 0, 3}})
	out, ok := runFn(t, "cut", s)
	require.True(t, ok)
	require.True(t, out.IsVector)
	require.Len(t, out.Images, 2) // {1,2} merged, {3} alone
}

func TestSplitCols_OnePerColour(t *testing.T) {
	s := mustState(t, [][]int{{1, 2}, {2, 0}})
	out, ok := runFn(t, "splitCols", s)
	require.True(t, ok)
	require.True(t, out.IsVector)
	require.Len(t, out.Images, 2)
	require.Equal(t, [][]int{{1, 0}, {0, 0}}, out.Images[0].Rows())
	require.Equal(t, [][]int{{0, 2}, {2, 0}}, out.Images[1].Rows())
}

func TestFillHoles_FillsEnclosedOnly(t *testing.T) {
	s := mustState(t, [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}})
	out, ok := runFn(t, "fillHoles", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, out.First().Rows())
}

func TestFillHoles_NoEnclosedHoleDeclines(t *testing.T) {
	s := mustState(t, [][]int{{1, 0}, {0, 0}})
	_, ok := runFn(t, "fillHoles", s)
	require.False(t, ok)
}

func TestRemoveNoise_ZeroesIsolatedPixels(t *testing.T) {
	s := mustState(t, [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 5}})
	out, ok := runFn(t, "removeNoise", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}}, out.First().Rows())
}

func TestReplicate_MirrorsRight(t *testing.T) {
	s := mustState(t, [][]int{{1, 2}})
	out, ok := runFn(t, "replicate", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1, 2, 2, 1}}, out.First().Rows())
}

func TestExtractPattern_KeepsInteriorZeros(t *testing.T) {
	s := mustState(t, [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 2}, {0, 0, 0}})
	out, ok := runFn(t, "extractPattern", s)
	require.True(t, ok)
	require.Equal(t, [][]int{{1, 0}, {0, 2}}, out.First().Rows())
}

func TestColorMap_IsIdentityPermutation(t *testing.T) {
	s := mustState(t, [][]int{{1, 2}, {3, 4}})
	out, ok := runFn(t, "colorMap", s)
	require.True(t, ok)
	require.True(t, out.First().EqualPixels(s.First()))
}

func TestIdentity_ReturnsSame(t *testing.T) {
	lib := transform.Default()
	id, err := lib.Lookup("identity")
	require.NoError(t, err)
	entry, err := lib.Get(id)
	require.NoError(t, err)
	s := mustState(t, [][]int{{1, 2}})
	images, isVector, ok := entry.Fn(s, 0)
	require.True(t, ok)
	require.False(t, isVector)
	require.True(t, images[0].EqualPixels(s.First()))
}

func TestPixelBudget_RejectsOversized(t *testing.T) {
	lib := transform.Default()
	id, err := lib.Lookup("replicate")
	require.NoError(t, err)
	entry, err := lib.Get(id)
	require.NoError(t, err)
	s := mustState(t, [][]int{{1, 1, 1, 1}})
	_, _, ok := entry.Fn(s, 4) // doubling to 8 pixels exceeds a cap of 4
	require.False(t, ok)
}
