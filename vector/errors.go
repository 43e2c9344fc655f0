package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers compare against them with errors.Is; the concrete
// types below carry the details and unwrap to these.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("empty container")
	ErrAllocation      = errors.New("allocation failure")
	ErrStaleView       = errors.New("stale view")

	// ErrInvalidated is the panic value raised by an iterator that observes a
	// structural mutation of the vector it walks.
	ErrInvalidated = errors.New("iterator invalidated by mutation")
)

// RangeError reports an index that falls outside the valid logical range
// of the operation that received it. The vector is unchanged.
type RangeError struct {
	Op    string // "At", "Insert", "Erase", …
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector.%s: index %d out of range with length %d", e.Op, e.Index, e.Len)
}

// Unwrap exposes ErrIndexOutOfRange to errors.Is.
func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// AllocError reports storage that could not be grown to Requested slots.
// The vector keeps its previous length, capacity and contents.
type AllocError struct {
	Op        string
	Requested int
	Err       error // allocator-specific cause, may be nil
}

func (e *AllocError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("vector.%s: cannot allocate %d elements", e.Op, e.Requested)
	}
	return fmt.Sprintf("vector.%s: cannot allocate %d elements: %v", e.Op, e.Requested, e.Err)
}

// Is makes errors.Is(err, ErrAllocation) match any AllocError, while Unwrap
// still lets callers reach the allocator's own cause.
func (e *AllocError) Is(target error) bool { return target == ErrAllocation }

func (e *AllocError) Unwrap() error { return e.Err }

func rangeErr(op string, i, n int) error {
	return &RangeError{Op: op, Index: i, Len: n}
}

func emptyErr(op string) error {
	return fmt.Errorf("vector.%s: %w", op, ErrEmpty)
}
