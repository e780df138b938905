package piece

import (
	"sort"

	"github.com/arcdag/solver/dag"
	"github.com/arcdag/solver/transform"
)

// Config bounds one extraction.
type Config struct {
	// MaxPieces caps the number of valid pieces collected. <=0 disables
	// the cap.
	MaxPieces int
	// MaxDepth caps a tuple's accumulated cost sum; it inherits the DAG
	// build's own depth cap by default. <=0 disables the cap.
	MaxDepth int
}

// DefaultConfig returns the default caps.
func DefaultConfig() Config {
	return Config{MaxPieces: 100_000, MaxDepth: 20}
}

// PieceRecord indexes one piece's D node ids into a Collection's Memory,
// plus the tuple's accumulated depth (cost sum along its shared function
// sequence).
type PieceRecord struct {
	MemoryIndex int
	Depth       int
}

// Collection is the output of Extract: the D DAGs in fixed order, a flat
// memory of node ids (D entries per piece, concatenated), and the piece
// records indexing into it.
type Collection struct {
	DAGs   []*dag.DAG
	Memory []dag.NodeID
	Pieces []PieceRecord
}

// NodeIDs returns piece i's D node ids, one per DAG in Collection.DAGs order.
func (c *Collection) NodeIDs(i int) []dag.NodeID {
	rec := c.Pieces[i]
	d := len(c.DAGs)
	return c.Memory[rec.MemoryIndex : rec.MemoryIndex+d]
}

// tuple is one frontier entry during the product-graph walk.
type tuple struct {
	ids   []dag.NodeID
	depth int
}

// tupleHash mixes a tuple's node ids into a single 64-bit value, FNV-1a
// style, matching grid.State.Hash's constants.
func tupleHash(ids []dag.NodeID) uint64 {
	const prime64 = 1099511628211
	h := uint64(14695981039346656037)
	for _, id := range ids {
		h ^= uint64(id)
		h *= prime64
	}
	return h
}

// Extract walks the product graph of dags breadth-first from every
// shared root index, collecting valid pieces (tuples where every
// constituent node is non-root and IsPiece) up to cfg's caps.
//
// Complexity: O(pieces-considered * len(common function ids)) in the
// worst case; each tuple is expanded at most once regardless of how
// many paths reach it.
func Extract(dags []*dag.DAG, cfg Config) (*Collection, error) {
	if len(dags) == 0 {
		return nil, ErrNoDAGs
	}
	d := len(dags)

	minRoots := -1
	for _, g := range dags {
		n := len(g.Roots())
		if minRoots == -1 || n < minRoots {
			minRoots = n
		}
	}
	if minRoots <= 0 {
		return nil, ErrNoSharedRoots
	}

	lib := dags[0].Library()
	col := &Collection{DAGs: append([]*dag.DAG(nil), dags...)}

	// seen holds the best-known depth for every tuple hash discovered so
	// far, including ones already expanded; expanded tracks which tuples
	// have had their children considered, so a tuple reached by more
	// than one function sequence is only expanded once.
	seen := make(map[uint64]int)
	expanded := make(map[uint64]bool)

	var frontier []tuple
	for r := 0; r < minRoots; r++ {
		ids := make([]dag.NodeID, d)
		for i, g := range dags {
			ids[i] = g.Roots()[r]
		}
		h := tupleHash(ids)
		seen[h] = 0
		frontier = append(frontier, tuple{ids: ids, depth: 0})
	}

	capped := func() bool {
		return cfg.MaxPieces > 0 && len(col.Pieces) >= cfg.MaxPieces
	}

	for len(frontier) > 0 && !capped() {
		var next []tuple
		for _, t := range frontier {
			if capped() {
				break
			}
			h := tupleHash(t.ids)
			if expanded[h] {
				continue
			}
			expanded[h] = true

			if cfg.MaxDepth > 0 && t.depth > cfg.MaxDepth {
				continue
			}

			if t.depth > 0 && allPieceEligible(dags, t.ids) {
				idx := len(col.Memory)
				col.Memory = append(col.Memory, t.ids...)
				col.Pieces = append(col.Pieces, PieceRecord{MemoryIndex: idx, Depth: t.depth})
				if capped() {
					break
				}
			}

			for _, fnID := range commonChildFns(dags, t.ids) {
				childIDs, ok := childTuple(dags, t.ids, fnID)
				if !ok {
					continue
				}
				entry, err := lib.Get(fnID)
				if err != nil {
					continue
				}
				childDepth := t.depth + int(entry.Cost)
				ch := tupleHash(childIDs)
				if prior, ok := seen[ch]; ok {
					if childDepth < prior {
						seen[ch] = childDepth
					}
					continue
				}
				seen[ch] = childDepth
				next = append(next, tuple{ids: childIDs, depth: childDepth})
			}
		}
		frontier = next
	}
	return col, nil
}

// allPieceEligible reports whether every dags[i]'s ids[i] node is
// non-root and flagged IsPiece.
func allPieceEligible(dags []*dag.DAG, ids []dag.NodeID) bool {
	for i, g := range dags {
		n, err := g.GetNode(ids[i])
		if err != nil || !n.IsPiece {
			return false
		}
	}
	return true
}

// commonChildFns returns, in ascending order, the function ids present
// in every dags[i]'s ids[i] child map.
func commonChildFns(dags []*dag.DAG, ids []dag.NodeID) []transform.ID {
	first, err := dags[0].Children(ids[0])
	if err != nil {
		return nil
	}
	counts := make(map[transform.ID]int, len(first))
	for fnID := range first {
		counts[fnID] = 1
	}
	for i := 1; i < len(dags); i++ {
		children, err := dags[i].Children(ids[i])
		if err != nil {
			return nil
		}
		for fnID := range children {
			if _, present := counts[fnID]; present {
				counts[fnID]++
			}
		}
	}
	out := make([]transform.ID, 0, len(counts))
	for fnID, c := range counts {
		if c == len(dags) {
			out = append(out, fnID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// childTuple resolves fnID's child id in every dags[i] for the tuple
// ids, returning ok=false if any DAG lacks that edge.
func childTuple(dags []*dag.DAG, ids []dag.NodeID, fnID transform.ID) ([]dag.NodeID, bool) {
	out := make([]dag.NodeID, len(dags))
	for i, g := range dags {
		children, err := g.Children(ids[i])
		if err != nil {
			return nil, false
		}
		c, present := children[fnID]
		if !present {
			return nil, false
		}
		out[i] = c
	}
	return out, true
}
