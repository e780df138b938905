package dag

import (
	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/transform"
)

// NodeID identifies a node within one DAG. IDs are assigned in
// insertion order starting at 0 and never reused.
type NodeID uint32

// noParent is the sentinel ParentID for a root node.
const noParent = ^NodeID(0)

// Node is one DAG node: a State, the function and parent that produced
// it (unset for roots), the children already discovered from it, and
// whether it is eligible to participate in a Piece.
type Node struct {
	ID       NodeID
	State    grid.State
	FnID     transform.ID
	HasFn    bool
	ParentID NodeID
	IsRoot   bool
	Children map[transform.ID]NodeID
	IsPiece  bool

	// freshlyQueued is BFS bookkeeping private to DAG.Build: true from
	// insertion until the node is added to the next frontier, so a node
	// reached by more than one edge in the same round is only queued once.
	freshlyQueued bool
}

func newRootNode(id NodeID, s grid.State) *Node {
	return &Node{ID: id, State: s, IsRoot: true, ParentID: noParent, Children: make(map[transform.ID]NodeID)}
}

func newChildNode(id NodeID, s grid.State, fn transform.ID, parent NodeID) *Node {
	return &Node{ID: id, State: s, FnID: fn, HasFn: true, ParentID: parent, Children: make(map[transform.ID]NodeID)}
}
