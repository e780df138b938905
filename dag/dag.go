package dag

import (
	"fmt"
	"time"

	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/transform"
)

// Config bounds one DAG build.
type Config struct {
	// MaxDepth caps State.Depth.
	MaxDepth int
	// MaxNodes stops expansion once the total node count, roots
	// included, reaches it. The check runs before each frontier node is
	// expanded, so that node may still add up to one child per listed
	// transform beyond the cap.
	MaxNodes int
	// MaxTotalPixels caps a State's combined pixel count.
	MaxTotalPixels int
	// MaxConstructSide caps any image's width/height while building.
	MaxConstructSide int
	// MaxPieceSide is the IsPiece eligibility bound: a non-root node is
	// piece-eligible only if its first image's width and height both
	// fall within this side length.
	MaxPieceSide int
	// TimeLimit bounds wall-clock build time; <=0 disables the check.
	TimeLimit time.Duration
}

// DefaultConfig returns the default caps.
func DefaultConfig() Config {
	return Config{
		MaxDepth:         20,
		MaxNodes:         100_000,
		MaxTotalPixels:   grid.DefaultMaxTotalPixels,
		MaxConstructSide: 100,
		MaxPieceSide:     40,
		TimeLimit:        60 * time.Second,
	}
}

// DAG is the interned graph of States reachable from a DAG's roots.
// Not safe for concurrent use; each solve owns its own DAGs.
type DAG struct {
	cfg   Config
	lib   *transform.Library
	nodes []*Node
	// hashIndex resolves State.Hash collisions by falling back to
	// State.Equal over every node sharing that hash.
	hashIndex map[uint64][]NodeID
	roots     []NodeID
	built     bool
}

// New constructs an empty DAG against lib. Call AddRoot for each seed
// State, then Build.
func New(cfg Config, lib *transform.Library) (*DAG, error) {
	if lib == nil {
		return nil, ErrNilLibrary
	}
	return &DAG{cfg: cfg, lib: lib, hashIndex: make(map[uint64][]NodeID)}, nil
}

// AddRoot inserts s as a root node with no parent. Returns the id of an
// existing node if s's content already exists (multiple AddRoot calls
// for equal States collapse to one node, same as any other insertion).
// Complexity: O(1) amortised.
func (d *DAG) AddRoot(s grid.State) NodeID {
	if id, ok := d.find(s); ok {
		return id
	}
	id := d.insert(newRootNode(NodeID(len(d.nodes)), s))
	d.roots = append(d.roots, id)
	return id
}

// find resolves s against the hash-cons table, returning an existing
// node id on a structural match.
func (d *DAG) find(s grid.State) (NodeID, bool) {
	h := s.Hash()
	for _, id := range d.hashIndex[h] {
		if d.nodes[id].State.Equal(s) {
			return id, true
		}
	}
	return 0, false
}

// insert appends n, indexes it by hash, and returns its id. Callers
// must have already confirmed n.State is new via find.
func (d *DAG) insert(n *Node) NodeID {
	d.nodes = append(d.nodes, n)
	h := n.State.Hash()
	d.hashIndex[h] = append(d.hashIndex[h], n.ID)
	n.IsPiece = !n.IsRoot && eligibleForPiece(n.State, d.cfg.MaxPieceSide)
	return n.ID
}

// eligibleForPiece admits every non-root node whose first image's
// width and height are both within maxSide.
func eligibleForPiece(s grid.State, maxSide int) bool {
	if maxSide <= 0 {
		return true
	}
	first := s.First()
	return first.Width <= maxSide && first.Height <= maxSide
}

// Build performs the breadth-first expansion: for each frontier node,
// in insertion order, apply the library's listed transforms in
// ascending id order; insert and enqueue any valid, new result.
// Terminates on empty frontier, MaxNodes, or TimeLimit. Returns
// ErrAlreadyBuilt if called a second time.
//
// Complexity: O(MaxNodes * len(listed)) transform applications in the
// worst case.
func (d *DAG) Build() error {
	if d.built {
		return ErrAlreadyBuilt
	}
	d.built = true

	start := time.Now()
	listed := d.lib.ListedIDs()

	frontier := make([]NodeID, len(d.roots))
	copy(frontier, d.roots)

	for len(frontier) > 0 {
		if d.cfg.MaxNodes > 0 && len(d.nodes) >= d.cfg.MaxNodes {
			return nil
		}
		if d.cfg.TimeLimit > 0 && time.Since(start) >= d.cfg.TimeLimit {
			return nil
		}

		var next []NodeID
		for _, id := range frontier {
			if d.cfg.MaxNodes > 0 && len(d.nodes) >= d.cfg.MaxNodes {
				return nil
			}
			if d.cfg.TimeLimit > 0 && time.Since(start) >= d.cfg.TimeLimit {
				return nil
			}
			parent := d.nodes[id]
			for _, fnID := range listed {
				entry, err := d.lib.Get(fnID)
				if err != nil {
					continue
				}
				child, ok := d.tryApply(parent, entry)
				if !ok {
					continue
				}
				parent.Children[fnID] = child
				// Only freshly-inserted nodes continue the frontier;
				// a node reached via hash-cons from an earlier path
				// was already expanded (or queued) once.
				if d.nodes[child].freshlyQueued {
					d.nodes[child].freshlyQueued = false
					next = append(next, child)
				}
			}
		}
		frontier = next
	}
	return nil
}

// tryApply computes parent -> fnID's child State, validates it, and
// either returns an existing matching node or inserts a new one.
func (d *DAG) tryApply(parent *Node, entry transform.Entry) (NodeID, bool) {
	images, isVector, ok := entry.Fn(parent.State, d.cfg.MaxTotalPixels)
	if !ok {
		return 0, false
	}
	for _, im := range images {
		if grid.ValidateSize(im, d.cfg.MaxConstructSide, 0) != nil {
			return 0, false
		}
		if grid.ValidatePixelRange(im, false) != nil {
			return 0, false
		}
	}
	depth := int(parent.State.Depth) + int(entry.Cost)
	if depth > d.cfg.MaxDepth {
		return 0, false
	}
	child, err := grid.NewState(images, isVector, depth, d.cfg.MaxTotalPixels)
	if err != nil {
		return 0, false
	}

	if id, exists := d.find(child); exists {
		return id, true
	}
	n := newChildNode(NodeID(len(d.nodes)), child, entry.ID, parent.ID)
	n.freshlyQueued = true
	id := d.insert(n)
	return id, true
}

// GetNode returns the node for id.
func (d *DAG) GetNode(id NodeID) (*Node, error) {
	if int(id) < 0 || int(id) >= len(d.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return d.nodes[id], nil
}

// NodeImage returns the node's first image.
func (d *DAG) NodeImage(id NodeID) (grid.Grid, error) {
	n, err := d.GetNode(id)
	if err != nil {
		return grid.Grid{}, err
	}
	return n.State.First(), nil
}

// Children returns a copy of the node's function-id -> child-id map.
// children[f] == c implies applying f's Fn to node(parent).State
// yields State c — the map is a cache of already-applied transforms,
// never stale, since it is only ever written by tryApply immediately
// after validating that exact relationship.
func (d *DAG) Children(id NodeID) (map[transform.ID]NodeID, error) {
	n, err := d.GetNode(id)
	if err != nil {
		return nil, err
	}
	out := make(map[transform.ID]NodeID, len(n.Children))
	for k, v := range n.Children {
		out[k] = v
	}
	return out, nil
}

// Roots returns the ids of every root node, in AddRoot call order.
func (d *DAG) Roots() []NodeID {
	out := make([]NodeID, len(d.roots))
	copy(out, d.roots)
	return out
}

// Len reports the total node count, roots included.
func (d *DAG) Len() int { return len(d.nodes) }

// Library returns the transform.Library this DAG was built against, so
// callers (package piece) can look up function costs by id without
// threading the Library through separately.
func (d *DAG) Library() *transform.Library { return d.lib }
