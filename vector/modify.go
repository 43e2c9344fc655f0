package vector

import "slices"

// PushBack appends x at the logical end. When the vector is full it first
// reallocates (see grow); on allocation failure nothing changes.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.grow("PushBack", len(v.data)+1); err != nil {
		return err
	}
	v.data = append(v.data, x)
	v.gen++
	return nil
}

// Append is PushBack for several values with at most one reallocation.
func (v *Vector[T]) Append(xs ...T) error {
	if len(xs) == 0 {
		return nil
	}
	if err := v.grow("Append", len(v.data)+len(xs)); err != nil {
		return err
	}
	v.data = append(v.data, xs...)
	v.gen++
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	n := len(v.data)
	if n == 0 {
		var zero T
		return zero, emptyErr("PopBack")
	}
	x := v.data[n-1]
	var zero T
	v.data[n-1] = zero // release anything x references
	v.data = v.data[:n-1]
	v.gen++
	return x, nil
}

// Insert places xs before position i, shifting [i, Len()) right.
// i == Len() appends. Requires 0 <= i <= Len(). O(n).
func (v *Vector[T]) Insert(i int, xs ...T) error {
	n := len(v.data)
	if i < 0 || i > n {
		return rangeErr("Insert", i, n)
	}
	if len(xs) == 0 {
		return nil
	}
	if err := v.grow("Insert", n+len(xs)); err != nil {
		return err
	}
	// Capacity is already sufficient, so slices.Insert shifts in place and
	// copes with xs aliasing the vector's own storage.
	v.data = slices.Insert(v.data, i, xs...)
	v.gen++
	return nil
}

// Erase removes and returns the element at i, shifting (i, Len()) left.
// Requires 0 <= i < Len(). O(n).
func (v *Vector[T]) Erase(i int) (T, error) {
	n := len(v.data)
	if i < 0 || i >= n {
		var zero T
		return zero, rangeErr("Erase", i, n)
	}
	x := v.data[i]
	v.data = slices.Delete(v.data, i, i+1)
	v.gen++
	return x, nil
}

// EraseRange removes the elements in [first, last).
// Requires 0 <= first <= last <= Len().
func (v *Vector[T]) EraseRange(first, last int) error {
	n := len(v.data)
	switch {
	case first < 0 || first > n:
		return rangeErr("EraseRange", first, n)
	case last < first || last > n:
		return rangeErr("EraseRange", last, n)
	case first == last:
		return nil
	}
	v.data = slices.Delete(v.data, first, last)
	v.gen++
	return nil
}

// Assign replaces the contents with n copies of x. Capacity grows to exactly
// n when it is too small and is otherwise kept.
func (v *Vector[T]) Assign(n int, x T) error {
	if n < 0 {
		return rangeErr("Assign", n, len(v.data))
	}
	if err := v.prepareAssign("Assign", n); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = x
	}
	return nil
}

// AssignSlice replaces the contents with a copy of xs.
func (v *Vector[T]) AssignSlice(xs []T) error {
	if len(xs) > cap(v.data) {
		// xs may alias the old block, so fill the new one before dropping it.
		block, err := v.allocate("AssignSlice", len(xs))
		if err != nil {
			return err
		}
		copy(block, xs)
		v.data = block[:len(xs):len(xs)]
		v.gen++
		return nil
	}
	old := len(v.data)
	v.data = v.data[:len(xs)]
	copy(v.data, xs)
	if old > len(xs) {
		clear(v.data[len(xs):old])
	}
	v.gen++
	return nil
}

// prepareAssign sets the length to n, discarding the old contents, and
// reallocates to exactly n when the current block is too small.
func (v *Vector[T]) prepareAssign(op string, n int) error {
	if n > cap(v.data) {
		block, err := v.allocate(op, n)
		if err != nil {
			return err
		}
		v.data = block[:n:n]
		v.gen++
		return nil
	}
	old := len(v.data)
	v.data = v.data[:n]
	if old > n {
		clear(v.data[n:old])
	}
	v.gen++
	return nil
}

// Resize sets the length to n. Growing appends copies of fill (reallocating
// as PushBack would); shrinking drops the trailing elements.
func (v *Vector[T]) Resize(n int, fill T) error {
	old := len(v.data)
	switch {
	case n < 0:
		return rangeErr("Resize", n, old)
	case n == old:
		return nil
	case n < old:
		clear(v.data[n:old])
		v.data = v.data[:n]
	default:
		if err := v.grow("Resize", n); err != nil {
			return err
		}
		v.data = v.data[:n]
		for i := old; i < n; i++ {
			v.data[i] = fill
		}
	}
	v.gen++
	return nil
}

// Clear drops every element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
	v.gen++
}
