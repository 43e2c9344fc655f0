package vector

// View is a borrowed window onto a vector's live elements, the Go form of
// data(). It does not own the storage: any structural mutation of the
// vector (append, insert, erase, resize, reserve, clear, swap, …) turns the
// view stale, after which every accessor reports ErrStaleView.
//
// Writes through a valid view are visible to the vector and vice versa.
type View[T any] struct {
	owner *Vector[T]
	gen   uint64
	data  []T
}

// Data borrows the current storage.
func (v *Vector[T]) Data() View[T] {
	return View[T]{owner: v, gen: v.gen, data: v.data}
}

// Valid reports whether the vector is unchanged since the view was taken.
func (w View[T]) Valid() bool {
	return w.owner != nil && w.owner.gen == w.gen
}

func (w View[T]) Len() int {
	if !w.Valid() {
		return 0
	}
	return len(w.data)
}

// Slice exposes the borrowed elements for interop with slice-based APIs.
// The slice aliases the vector; do not keep it past the next mutation.
func (w View[T]) Slice() ([]T, error) {
	if !w.Valid() {
		return nil, ErrStaleView
	}
	return w.data[:len(w.data):len(w.data)], nil
}

func (w View[T]) At(i int) (T, error) {
	var zero T
	if !w.Valid() {
		return zero, ErrStaleView
	}
	if i < 0 || i >= len(w.data) {
		return zero, rangeErr("View.At", i, len(w.data))
	}
	return w.data[i], nil
}

func (w View[T]) Set(i int, x T) error {
	if !w.Valid() {
		return ErrStaleView
	}
	if i < 0 || i >= len(w.data) {
		return rangeErr("View.Set", i, len(w.data))
	}
	w.data[i] = x
	return nil
}
