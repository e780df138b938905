package solver

import "errors"

// ErrInvalidInput indicates a training pair or test input failed
// ingest validation (non-rectangular, out-of-range colours, or over
// size). It is the only error Solve ever returns.
var ErrInvalidInput = errors.New("solver: invalid input")
