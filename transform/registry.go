package transform

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/arcdag/solver/grid"
)

// MaxCost bounds a single transform's declared cost to [1,20].
const MaxCost = 20

// Func is a pure grid transform. It reads s.Images (never s.Depth, which
// is the DAG's concern, not the transform's) and returns the resulting
// image sequence and vector flag. ok=false means the transform declines
// to act (e.g. fillHoles on an image with no enclosed hole, or a result
// that would overrun maxTotalPixels) and the caller must not
// advance depth or insert a node for it. maxTotalPixels <= 0 disables the
// budget check.
type Func func(s grid.State, maxTotalPixels int) (images []grid.Grid, isVector bool, ok bool)

// Sentinel errors for Library operations.
var (
	// ErrEmptyName indicates Register was called with an empty name.
	ErrEmptyName = errors.New("transform: name is empty")
	// ErrNilFunc indicates Register was called with a nil Func.
	ErrNilFunc = errors.New("transform: fn is nil")
	// ErrBadCost indicates a cost outside [1, MaxCost].
	ErrBadCost = errors.New("transform: cost out of range")
	// ErrDuplicateName indicates Register was called twice with the same name.
	ErrDuplicateName = errors.New("transform: name already registered")
	// ErrUnknownID indicates Get was called with an id that was never registered.
	ErrUnknownID = errors.New("transform: unknown id")
	// ErrUnknownName indicates Lookup was called with a name that was never registered.
	ErrUnknownName = errors.New("transform: unknown name")
)

// ID identifies a registered transform. IDs are assigned in registration
// order starting at 0 and never reused.
type ID int

// Entry is one registered transform and its metadata.
type Entry struct {
	ID     ID
	Name   string
	Fn     Func
	Cost   uint8
	Listed bool
}

// Library is a registry of transforms. The zero value is not usable;
// construct with New(). Safe for concurrent reads once populated; writes
// (Register) must happen before any concurrent reads begin.
type Library struct {
	mu      sync.RWMutex
	entries []Entry
	byName  map[string]ID
	listed  []ID // cached, ascending, rebuilt on each Register
}

// New returns an empty Library.
func New() *Library {
	return &Library{byName: make(map[string]ID)}
}

// Register adds fn under name with the given cost and listed flag,
// returning its assigned ID. Returns an error (wrapping the relevant
// sentinel) without mutating the Library on any validation failure.
// Complexity: O(1) amortised, O(n) worst case for the listed-ids cache rebuild.
func (l *Library) Register(name string, fn Func, cost uint8, listed bool) (ID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if fn == nil {
		return 0, ErrNilFunc
	}
	if cost < 1 || cost > MaxCost {
		return 0, fmt.Errorf("%w: %d", ErrBadCost, cost)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.byName[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	id := ID(len(l.entries))
	l.entries = append(l.entries, Entry{ID: id, Name: name, Fn: fn, Cost: cost, Listed: listed})
	l.byName[name] = id
	if listed {
		l.listed = append(l.listed, id)
		sort.Slice(l.listed, func(i, j int) bool { return l.listed[i] < l.listed[j] })
	}
	return id, nil
}

// Get returns the Entry for id.
func (l *Library) Get(id ID) (Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(l.entries) {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return l.entries[id], nil
}

// Lookup resolves a transform name to its ID.
func (l *Library) Lookup(name string) (ID, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return id, nil
}

// ListedIDs returns the ascending-sorted IDs of every entry with Listed
// == true. Ascending order is a determinism contract: the DAG builder
// expands a frontier node's children in exactly this order, so ties
// among a single node's children are always broken by function id
// ascending.
func (l *Library) ListedIDs() []ID {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]ID, len(l.listed))
	copy(out, l.listed)
	return out
}

// Len reports the total number of registered entries (listed + unlisted).
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the process-wide Library, building and registering the
// frozen built-in set exactly once (sync.Once), after which it is
// immutable and safe to read concurrently from any number of solves.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLib = New()
		if err := RegisterBuiltins(defaultLib); err != nil {
			// Built-ins are constants controlled entirely by this package;
			// a failure here is a programming error, not a runtime condition.
			panic(fmt.Sprintf("transform: built-in registration failed: %v", err))
		}
	})
	return defaultLib
}
