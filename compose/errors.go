package compose

import "errors"

// Sentinel errors for composition.
var (
	// ErrNoSlots indicates Compose was called with zero slots.
	ErrNoSlots = errors.New("compose: no slots supplied")
	// ErrSlotMismatch indicates len(slots) does not match the piece
	// Collection's DAG count.
	ErrSlotMismatch = errors.New("compose: slot count does not match collection dag count")
)
