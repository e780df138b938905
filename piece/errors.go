package piece

import "errors"

// Sentinel errors for piece extraction.
var (
	// ErrNoDAGs indicates Extract was called with zero DAGs.
	ErrNoDAGs = errors.New("piece: no dags supplied")
	// ErrNoSharedRoots indicates the supplied DAGs have no root index in
	// common, so no tuple could be seeded.
	ErrNoSharedRoots = errors.New("piece: dags share no root index")
)
