package vector

// Reserve makes the capacity at least n, reallocating to exactly n when it
// is smaller. It never shrinks. Reallocation invalidates views and iterators.
func (v *Vector[T]) Reserve(n int) error {
	if n <= cap(v.data) {
		return nil
	}
	return v.realloc("Reserve", n)
}

// ShrinkToFit reallocates so that Cap() == Len(). Unlike the request of the
// same name in C++, the reduction is guaranteed. An empty vector releases
// its storage entirely.
func (v *Vector[T]) ShrinkToFit() error {
	if cap(v.data) == len(v.data) {
		return nil
	}
	if len(v.data) == 0 {
		v.data = nil
		v.gen++
		return nil
	}
	return v.realloc("ShrinkToFit", len(v.data))
}
