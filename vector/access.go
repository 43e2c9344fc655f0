package vector

// Two accessor forms, as with at() and operator[] in C++:
//
//	At / Set                  → bounds-checked, return *RangeError
//	Unchecked / SetUnchecked  → caller guarantees 0 <= i < Len()
//
// The unchecked forms skip the error path entirely. Breaking their
// precondition is a programming error: Go's own bounds check will usually
// panic, but no particular outcome is promised.

// At returns the element at i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, rangeErr("At", i, len(v.data))
	}
	return v.data[i], nil
}

// Set overwrites the element at i. It is not a structural mutation: views
// and iterators stay valid and observe the new value.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return rangeErr("Set", i, len(v.data))
	}
	v.data[i] = x
	return nil
}

// Unchecked returns the element at i without validating i.
func (v *Vector[T]) Unchecked(i int) T { return v.data[i] }

// SetUnchecked overwrites the element at i without validating i.
func (v *Vector[T]) SetUnchecked(i int, x T) { v.data[i] = x }

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, emptyErr("Front")
	}
	return v.data[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, emptyErr("Back")
	}
	return v.data[len(v.data)-1], nil
}
