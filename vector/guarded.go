package vector

import "sync"

// Guarded serializes access to a Vector shared between goroutines.
//
// Vector itself has no locking. Guarded owns one behind a sync.RWMutex:
// Update takes the write lock, Read the read lock, so any number of readers
// may run together while a writer is exclusive.
//
// The callbacks receive the vector for the duration of the call only.
// Keeping it, or a View or iterator taken from it, after the callback
// returns bypasses the lock.
type Guarded[T any] struct {
	mu sync.RWMutex
	v  *Vector[T]
}

// NewGuarded takes ownership of v. A nil v starts from an empty vector.
func NewGuarded[T any](v *Vector[T]) *Guarded[T] {
	if v == nil {
		v = New[T]()
	}
	return &Guarded[T]{v: v}
}

// Update runs fn with exclusive access and returns its error.
func (g *Guarded[T]) Update(fn func(v *Vector[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.v)
}

// Read runs fn with shared access. fn must not mutate the vector.
func (g *Guarded[T]) Read(fn func(v *Vector[T])) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.v)
}

func (g *Guarded[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.v.Len()
}

// Snapshot returns a copy of the elements taken under the read lock.
func (g *Guarded[T]) Snapshot() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.v.Slice()
}
