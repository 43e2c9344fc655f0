package vector

import "iter"

// All yields (index, element) pairs over [0, Len()) in index order.
//
// The sequence is lazy and restartable: each range statement starts over.
// Mutating the vector structurally while ranging over it is a precondition
// violation; the iterator detects it and panics with ErrInvalidated rather
// than yielding elements from a block that may no longer exist. Set and
// SetUnchecked are allowed.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := v.gen
		for i := 0; i < len(v.data); i++ {
			if !yield(i, v.data[i]) {
				return
			}
			if v.gen != gen {
				panic(ErrInvalidated)
			}
		}
	}
}

// Values yields the elements in index order; see All.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs from Len()-1 down to 0, the
// rbegin/rend walk. Invalidation rules are the same as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := v.gen
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
			if v.gen != gen {
				panic(ErrInvalidated)
			}
		}
	}
}
