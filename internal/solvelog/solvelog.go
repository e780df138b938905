// Package solvelog wires the orchestrator's enable_logging switch to a
// structured zerolog.Logger over a caller-supplied sink.
package solvelog

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a levelled logger writing to w. If w is nil, logging is
// disabled: every call becomes a no-op regardless of level.
func New(w io.Writer, enabled bool) zerolog.Logger {
	if !enabled || w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
