package vector

import "fmt"

// Vector is a growable, indexable sequence backed by one contiguous block.
//
//	+──────────+─────+─────+
//	│  data    │ len │ cap │   ← len = live elements, cap = allocated slots
//	+──────────+─────+─────+
//	     │
//	     ▼
//	[0][1][2][ ][ ][ ]         ← [len, cap) reserved, always zero
//
// Appends are amortized O(1): a full vector reallocates to at least twice its
// capacity. Capacity never shrinks except through ShrinkToFit.
//
// A Vector is not safe for concurrent use; wrap it in a Guarded when several
// goroutines share it. The zero value is an empty vector on the heap allocator.
type Vector[T any] struct {
	data  []T
	alloc Allocator[T]

	// gen changes on every structural mutation (length change, reallocation,
	// swap). Views and running iterators compare against it.
	gen uint64
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithAllocator makes the vector take its storage from a.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// New returns an empty vector with no storage allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Make returns a vector holding n copies of fill, with capacity exactly n.
func Make[T any](n int, fill T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, rangeErr("Make", n, 0)
	}
	v := New(opts...)
	if err := v.Resize(n, fill); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a heap-backed vector holding a copy of values, in order.
func Of[T any](values ...T) *Vector[T] {
	return &Vector[T]{data: append(make([]T, 0, len(values)), values...)}
}

// FromSlice is Of with options: the vector copies values into storage
// obtained from its allocator.
func FromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.AssignSlice(values); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) Len() int      { return len(v.data) }
func (v *Vector[T]) Cap() int      { return cap(v.data) }
func (v *Vector[T]) IsEmpty() bool { return len(v.data) == 0 }

// MaxLen is the largest length the vector's allocator could ever provide.
func (v *Vector[T]) MaxLen() int { return v.allocator().MaxLen() }

// Slice returns a copy of the live elements. The copy is owned by the caller
// and stays valid across later mutations; use Data for a borrowed window.
func (v *Vector[T]) Slice() []T {
	return append([]T(nil), v.data...)
}

// Clone returns an independent vector with the same elements and allocator,
// sized exactly to the current length.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := New(WithAllocator(v.allocator()))
	if err := c.AssignSlice(v.data); err != nil {
		return nil, err
	}
	return c, nil
}

// Swap exchanges storage, length, capacity and allocator with other in O(1).
// No element is copied.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.alloc, other.alloc = other.alloc, v.alloc
	v.gen++
	other.gen++
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.data)
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.alloc
}

// grow makes room for at least need elements. A full vector doubles, so a
// run of n appends costs O(n) copies in total; a larger need wins outright.
func (v *Vector[T]) grow(op string, need int) error {
	c := cap(v.data)
	if need <= c {
		return nil
	}
	limit := v.allocator().MaxLen()
	newCap := max(1, need)
	if c <= limit/2 {
		newCap = max(newCap, 2*c)
	} else {
		newCap = max(newCap, limit)
	}
	return v.realloc(op, newCap)
}

// realloc moves the live elements into a fresh block of exactly n slots.
// The new block is obtained before anything is touched, so a failure leaves
// the vector as it was.
func (v *Vector[T]) realloc(op string, n int) error {
	block, err := v.allocate(op, n)
	if err != nil {
		return err
	}
	l := copy(block, v.data)
	v.data = block[:l:n]
	v.gen++
	return nil
}

// allocate obtains a block of at least n slots from the allocator. A short
// block is reported as an allocation failure.
func (v *Vector[T]) allocate(op string, n int) ([]T, error) {
	block, err := v.allocator().Allocate(n)
	if err != nil {
		return nil, &AllocError{Op: op, Requested: n, Err: err}
	}
	if len(block) < n {
		return nil, &AllocError{Op: op, Requested: n,
			Err: fmt.Errorf("allocator returned %d elements", len(block))}
	}
	return block, nil
}
