package dag

import "errors"

// Sentinel errors for DAG operations.
var (
	// ErrNilLibrary indicates New was called with a nil transform.Library.
	ErrNilLibrary = errors.New("dag: library is nil")
	// ErrUnknownNode indicates GetNode/NodeImage/Children referenced a
	// node id this DAG never created.
	ErrUnknownNode = errors.New("dag: unknown node id")
	// ErrAlreadyBuilt indicates Build was called twice on the same DAG.
	ErrAlreadyBuilt = errors.New("dag: already built")
)
