package grid

import "errors"

// MaxDepth is the hard ceiling on State.Depth: depth never exceeds 255.
const MaxDepth = 255

// DefaultMaxTotalPixels is the default cap on a State's combined pixel
// count across all of its Images.
const DefaultMaxTotalPixels = 8000

// Sentinel errors for State construction.
var (
	// ErrNoImages indicates a State was built with zero Images.
	ErrNoImages = errors.New("grid: state must have at least one image")
	// ErrDepthOverflow indicates Depth would exceed MaxDepth.
	ErrDepthOverflow = errors.New("grid: depth exceeds maximum")
	// ErrPixelBudget indicates the State's total pixel count exceeds its cap.
	ErrPixelBudget = errors.New("grid: total pixel count exceeds budget")
)

// State is the unit of DAG node payload: a non-empty ordered sequence of
// Grids plus an IsVector flag and a depth counter.
//
// IsVector marks whether Images is a semantic tuple (the result of, e.g.,
// Cut or SplitCols) as opposed to a single logical image, in which case
// len(Images) == 1.
type State struct {
	Images   []Grid
	IsVector bool
	Depth    uint8
}

// NewState validates and constructs a State. maxTotalPixels <= 0 disables
// the pixel-budget check (used by callers that already validated it).
func NewState(images []Grid, isVector bool, depth int, maxTotalPixels int) (State, error) {
	if len(images) == 0 {
		return State{}, ErrNoImages
	}
	if depth < 0 || depth > MaxDepth {
		return State{}, ErrDepthOverflow
	}
	if maxTotalPixels > 0 {
		total := 0
		for _, im := range images {
			total += im.Area()
		}
		if total > maxTotalPixels {
			return State{}, ErrPixelBudget
		}
	}
	return State{Images: images, IsVector: isVector, Depth: uint8(depth)}, nil
}

// TotalPixels sums Area() across all Images.
func (s State) TotalPixels() int {
	total := 0
	for _, im := range s.Images {
		total += im.Area()
	}
	return total
}

// First returns the State's first (and, for non-vector states, only)
// image. Callers must not call First on a zero State.
func (s State) First() Grid { return s.Images[0] }

// Equal reports structural equality: same IsVector, same Depth, same
// Images in order.
func (s State) Equal(o State) bool {
	if s.IsVector != o.IsVector || s.Depth != o.Depth {
		return false
	}
	if len(s.Images) != len(o.Images) {
		return false
	}
	for i := range s.Images {
		if !s.Images[i].Equal(o.Images[i]) {
			return false
		}
	}
	return true
}

// Hash combines IsVector, Depth, and each Grid's content hash in order.
// Complexity: O(sum of image areas).
func (s State) Hash() uint64 {
	const prime64 = 1099511628211
	h := uint64(14695981039346656037)
	if s.IsVector {
		h ^= 1
	}
	h *= prime64
	h ^= uint64(s.Depth)
	h *= prime64
	for _, im := range s.Images {
		h ^= im.Hash()
		h *= prime64
	}
	return h
}
