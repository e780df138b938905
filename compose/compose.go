package compose

import (
	"fmt"
	"sort"

	"github.com/arcdag/solver/candidate"
	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/piece"
)

// SlotSpec describes one DAG slot's canvas: its fixed size, and, for a
// training slot, the known output pixels to check pieces against
// (row-major, Width*Height long). Target is nil for the test slot,
// which has no known answer and so can never register a disagreement.
type SlotSpec struct {
	Width, Height int
	Target        []int8
}

// Config bounds the outer composition driver.
type Config struct {
	// MaxIterations caps the number of (threshold, focus, care)
	// combinations the outer driver runs.
	MaxIterations int
}

// DefaultConfig returns the default cap.
func DefaultConfig() Config { return Config{MaxIterations: 10} }

type applyMode int

const (
	modeDirect applyMode = iota // apply only the piece's non-zero pixels
	modeFlip                    // apply only the piece's zero "hole" pixels
	modeFull                    // apply every pixel in the piece's footprint
)

// pieceInfo is one piece's precomputed placement over the full
// concatenated canvas.
type pieceInfo struct {
	footprint *Bitset // every placed pixel, zero or not
	active    *Bitset // footprint positions where the piece's pixel != 0
	bad       *Bitset // footprint positions disagreeing with a known target
	values    []int8  // canvas-sized; meaningful only at footprint positions
	depth     uint64
}

func appliedMask(info pieceInfo, mode applyMode) *Bitset {
	switch mode {
	case modeDirect:
		return info.active
	case modeFlip:
		return info.footprint.AndNot(info.active)
	default:
		return info.footprint
	}
}

// buildSlotOffsets returns each slot's starting index in the
// concatenated canvas and the canvas's total pixel count.
func buildSlotOffsets(slots []SlotSpec) ([]int, int) {
	offsets := make([]int, len(slots))
	total := 0
	for i, s := range slots {
		offsets[i] = total
		total += s.Width * s.Height
	}
	return offsets, total
}

// buildPieceInfos places every piece's per-slot image onto the
// concatenated canvas at its own (X, Y) offset, clipped to the slot's
// bounds, precomputing the three bitsets composeCore needs.
func buildPieceInfos(col *piece.Collection, slots []SlotSpec, offsets []int, total int) ([]pieceInfo, error) {
	infos := make([]pieceInfo, len(col.Pieces))
	for pi := range col.Pieces {
		ids := col.NodeIDs(pi)
		info := pieceInfo{
			footprint: NewBitset(total),
			active:    NewBitset(total),
			bad:       NewBitset(total),
			values:    make([]int8, total),
			depth:     uint64(col.Pieces[pi].Depth),
		}
		for si, slot := range slots {
			im, err := col.DAGs[si].NodeImage(ids[si])
			if err != nil {
				continue
			}
			for r := 0; r < im.Height; r++ {
				canvasRow := im.Y + r
				if canvasRow < 0 || canvasRow >= slot.Height {
					continue
				}
				for c := 0; c < im.Width; c++ {
					canvasCol := im.X + c
					if canvasCol < 0 || canvasCol >= slot.Width {
						continue
					}
					val, err := im.At(r, c)
					if err != nil {
						continue
					}
					idx := offsets[si] + canvasRow*slot.Width + canvasCol
					info.footprint.Set(idx)
					info.values[idx] = val
					if val != 0 {
						info.active.Set(idx)
					}
					if slot.Target != nil && slot.Target[canvasRow*slot.Width+canvasCol] != val {
						info.bad.Set(idx)
					}
				}
			}
		}
		infos[pi] = info
	}
	return infos, nil
}

// coreResult is one composeCore run's outcome.
type coreResult struct {
	buffer     []int8
	current    *Bitset
	pieceCount int
	sumDepth   uint64
	maxDepth   uint64
}

// composeCore runs the greedy main loop: repeatedly pick the
// admissible (piece, mode) claiming the most still-needed pixels,
// apply it, until no admissible choice makes progress.
//
// A (piece, mode) is admissible iff its applied mask, restricted to
// focus, introduces no disagreement on a pixel not yet claimed:
// (appliedMask AND bad AND NOT current) must be empty. Progress is
// measured only over care: popcount(appliedMask AND care AND NOT current).
func composeCore(infos []pieceInfo, total, depthThreshold int, focus, care *Bitset) coreResult {
	buffer := make([]int8, total)
	for i := range buffer {
		buffer[i] = grid.Unfilled
	}
	res := coreResult{buffer: buffer, current: NewBitset(total)}

	for {
		bestGain := 0
		var bestMask *Bitset
		bestInfo := -1

		for pi := range infos {
			info := infos[pi]
			if info.depth > uint64(depthThreshold) {
				continue
			}
			for _, mode := range [...]applyMode{modeDirect, modeFlip, modeFull} {
				mask := appliedMask(info, mode).And(focus)
				if mask.IsZero() {
					continue
				}
				conflict := mask.And(info.bad).AndNot(res.current)
				if !conflict.IsZero() {
					continue
				}
				gainMask := mask.AndNot(res.current).And(care)
				gain := gainMask.PopCount()
				if gain > bestGain {
					bestGain = gain
					bestMask = mask
					bestInfo = pi
				}
			}
		}

		if bestInfo == -1 {
			return res
		}

		info := infos[bestInfo]
		for _, idx := range bestMask.Bits() {
			if res.buffer[idx] == grid.Unfilled {
				res.buffer[idx] = info.values[idx]
			}
		}
		res.current.UnionInPlace(bestMask)
		res.pieceCount++
		res.sumDepth += info.depth
		if info.depth > res.maxDepth {
			res.maxDepth = info.depth
		}
	}
}

// fillBlack returns a copy of res with every remaining Unfilled pixel
// set to 0, the background colour.
func fillBlack(res coreResult) coreResult {
	buf := make([]int8, len(res.buffer))
	copy(buf, res.buffer)
	for i, v := range buf {
		if v == grid.Unfilled {
			buf[i] = 0
		}
	}
	return coreResult{buffer: buf, current: res.current, pieceCount: res.pieceCount, sumDepth: res.sumDepth, maxDepth: res.maxDepth}
}

func bufferToCandidate(res coreResult, slots []SlotSpec, offsets []int) *candidate.Candidate {
	if res.pieceCount == 0 {
		return nil
	}
	images := make([]grid.Grid, len(slots))
	for i, slot := range slots {
		n := slot.Width * slot.Height
		px := make([]int8, n)
		copy(px, res.buffer[offsets[i]:offsets[i]+n])
		images[i] = grid.Grid{Width: slot.Width, Height: slot.Height, Pixels: px}
	}
	c := candidate.New(images)
	c.PieceCount = res.pieceCount
	c.SumDepth = res.sumDepth
	c.MaxDepth = res.maxDepth
	return c
}

func bufferHash(buf []int8) uint64 {
	const prime64 = 1099511628211
	h := uint64(14695981039346656037)
	for _, v := range buf {
		h ^= uint64(uint8(v))
		h *= prime64
	}
	return h
}

func fullMask(total int) *Bitset {
	m := NewBitset(total)
	for i := 0; i < total; i++ {
		m.Set(i)
	}
	return m
}

// Compose runs the outer driver: over a deterministic set of (depth
// threshold, focus subset, care subset) combinations, up to
// cfg.MaxIterations, it runs composeCore and a black-fill pass over
// the result, collecting every pixel-distinct candidate produced.
func Compose(col *piece.Collection, slots []SlotSpec, cfg Config) ([]*candidate.Candidate, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	if len(slots) != len(col.DAGs) {
		return nil, fmt.Errorf("%w: %d slots, %d dags", ErrSlotMismatch, len(slots), len(col.DAGs))
	}
	offsets, total := buildSlotOffsets(slots)
	infos, err := buildPieceInfos(col, slots, offsets, total)
	if err != nil {
		return nil, err
	}

	maxDepth := 0
	depthSet := map[int]bool{}
	for _, rec := range col.Pieces {
		depthSet[rec.Depth] = true
		if rec.Depth > maxDepth {
			maxDepth = rec.Depth
		}
	}
	depthSet[maxDepth] = true
	thresholds := make([]int, 0, len(depthSet))
	for d := range depthSet {
		thresholds = append(thresholds, d)
	}
	sort.Ints(thresholds)

	all := fullMask(total)
	trainingOnly := NewBitset(total)
	testSlot := len(slots) - 1
	for si := 0; si < testSlot; si++ {
		for i := 0; i < slots[si].Width*slots[si].Height; i++ {
			trainingOnly.Set(offsets[si] + i)
		}
	}

	type focusOption struct {
		mask *Bitset
	}
	focusOptions := []focusOption{{mask: all}}
	for si := 0; si < testSlot; si++ {
		m := NewBitset(total)
		for i := 0; i < slots[si].Width*slots[si].Height; i++ {
			m.Set(offsets[si] + i)
		}
		for i := 0; i < slots[testSlot].Width*slots[testSlot].Height; i++ {
			m.Set(offsets[testSlot] + i)
		}
		focusOptions = append(focusOptions, focusOption{mask: m})
	}

	careOptions := []*Bitset{all, trainingOnly}

	var out []*candidate.Candidate
	seen := make(map[uint64]bool)
	iterations := 0

outer:
	for _, threshold := range thresholds {
		for _, fo := range focusOptions {
			for _, care := range careOptions {
				if cfg.MaxIterations > 0 && iterations >= cfg.MaxIterations {
					break outer
				}
				iterations++

				res := composeCore(infos, total, threshold, fo.mask, care)
				if cand := bufferToCandidate(res, slots, offsets); cand != nil {
					if h := bufferHash(res.buffer); !seen[h] {
						seen[h] = true
						out = append(out, cand)
					}
				}

				filled := fillBlack(res)
				if h := bufferHash(filled.buffer); !seen[h] {
					seen[h] = true
					if cand := bufferToCandidate(filled, slots, offsets); cand != nil {
						out = append(out, cand)
					}
				}
			}
		}
	}
	return out, nil
}
