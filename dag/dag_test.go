package dag_test

import (
	"testing"
	"time"

	"github.com/arcdag/solver/dag"
	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/transform"
	"github.com/stretchr/testify/require"
)

func rootState(t *testing.T, rows [][]int) grid.State {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	s, err := grid.NewState([]grid.Grid{g}, false, 0, 0)
	require.NoError(t, err)
	return s
}

func smallLibrary(t *testing.T) *transform.Library {
	t.Helper()
	lib := transform.New()
	require.NoError(t, transform.RegisterBuiltins(lib))
	return lib
}

func TestNew_NilLibrary(t *testing.T) {
	_, err := dag.New(dag.DefaultConfig(), nil)
	require.ErrorIs(t, err, dag.ErrNilLibrary)
}

func TestAddRoot_DedupsEqualStates(t *testing.T) {
	lib := smallLibrary(t)
	d, err := dag.New(dag.DefaultConfig(), lib)
	require.NoError(t, err)
	s := rootState(t, [][]int{{1, 2}, {3, 4}})
	id1 := d.AddRoot(s)
	id2 := d.AddRoot(s)
	require.Equal(t, id1, id2)
	require.Equal(t, 1, d.Len())
}

func TestBuild_NoDuplicateStates(t *testing.T) {
	lib := smallLibrary(t)
	cfg := dag.DefaultConfig()
	cfg.MaxDepth = 6
	cfg.MaxNodes = 2000
	d, err := dag.New(cfg, lib)
	require.NoError(t, err)
	d.AddRoot(rootState(t, [][]int{{1, 2}, {3, 4}}))
	require.NoError(t, d.Build())

	seen := make(map[uint64]grid.State)
	for i := 0; i < d.Len(); i++ {
		n, err := d.GetNode(dag.NodeID(i))
		require.NoError(t, err)
		h := n.State.Hash()
		if prior, ok := seen[h]; ok {
			require.True(t, prior.Equal(n.State), "two distinct nodes share a hash with different states")
		}
		seen[h] = n.State
	}
}

func TestBuild_ChildCacheSoundness(t *testing.T) {
	lib := smallLibrary(t)
	cfg := dag.DefaultConfig()
	cfg.MaxDepth = 4
	d, err := dag.New(cfg, lib)
	require.NoError(t, err)
	root := d.AddRoot(rootState(t, [][]int{{1, 2}, {3, 4}}))
	require.NoError(t, d.Build())

	rootNode, err := d.GetNode(root)
	require.NoError(t, err)
	for fnID, childID := range rootNode.Children {
		entry, err := lib.Get(fnID)
		require.NoError(t, err)
		images, isVector, ok := entry.Fn(rootNode.State, cfg.MaxTotalPixels)
		require.True(t, ok)
		want, err := grid.NewState(images, isVector, int(rootNode.State.Depth)+int(entry.Cost), cfg.MaxTotalPixels)
		require.NoError(t, err)
		childNode, err := d.GetNode(childID)
		require.NoError(t, err)
		require.True(t, want.Equal(childNode.State))
	}
}

func TestBuild_RespectsMaxNodes(t *testing.T) {
	lib := smallLibrary(t)
	cfg := dag.DefaultConfig()
	cfg.MaxNodes = 5
	cfg.MaxDepth = 20
	d, err := dag.New(cfg, lib)
	require.NoError(t, err)
	d.AddRoot(rootState(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.NoError(t, d.Build())
	require.LessOrEqual(t, d.Len(), cfg.MaxNodes+len(lib.ListedIDs()))
}

func TestBuild_RespectsTimeLimit(t *testing.T) {
	lib := smallLibrary(t)
	cfg := dag.DefaultConfig()
	cfg.TimeLimit = time.Nanosecond
	cfg.MaxDepth = 20
	cfg.MaxNodes = 1_000_000
	d, err := dag.New(cfg, lib)
	require.NoError(t, err)
	d.AddRoot(rootState(t, [][]int{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, d.Build())
	// A near-zero time limit should stop expansion almost immediately:
	// far fewer nodes than an unrestricted build over the same root.
	require.Less(t, d.Len(), 1000)
}

func TestBuild_Determinism(t *testing.T) {
	run := func() []uint64 {
		lib := smallLibrary(t)
		cfg := dag.DefaultConfig()
		cfg.MaxDepth = 5
		d, err := dag.New(cfg, lib)
		require.NoError(t, err)
		d.AddRoot(rootState(t, [][]int{{1, 2}, {3, 4}}))
		require.NoError(t, d.Build())
		hashes := make([]uint64, d.Len())
		for i := 0; i < d.Len(); i++ {
			n, _ := d.GetNode(dag.NodeID(i))
			hashes[i] = n.State.Hash()
		}
		return hashes
	}
	require.Equal(t, run(), run())
}

func TestBuild_AlreadyBuilt(t *testing.T) {
	lib := smallLibrary(t)
	d, err := dag.New(dag.DefaultConfig(), lib)
	require.NoError(t, err)
	d.AddRoot(rootState(t, [][]int{{1}}))
	require.NoError(t, d.Build())
	require.ErrorIs(t, d.Build(), dag.ErrAlreadyBuilt)
}

func TestGetNode_UnknownID(t *testing.T) {
	lib := smallLibrary(t)
	d, err := dag.New(dag.DefaultConfig(), lib)
	require.NoError(t, err)
	_, err = d.GetNode(dag.NodeID(42))
	require.ErrorIs(t, err, dag.ErrUnknownNode)
}
