package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Helpers in the spirit of <algorithm>. They are functions rather than
// methods because they need stricter constraints than Vector's T any.

// Index returns the position of the first element equal to x, or -1.
func Index[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.data, x)
}

// Contains reports whether x is one of v's elements.
func Contains[T comparable](v *Vector[T], x T) bool {
	return slices.Contains(v.data, x)
}

// RemoveValue erases every element equal to x, keeping the order of the
// rest (the erase-remove idiom), and returns how many were removed.
func RemoveValue[T comparable](v *Vector[T], x T) int {
	n := len(v.data)
	kept := slices.DeleteFunc(v.data, func(e T) bool { return e == x })
	removed := n - len(kept)
	if removed == 0 {
		return 0
	}
	clear(v.data[len(kept):n])
	v.data = kept
	v.gen++
	return removed
}

// Fill assigns x to every live element.
func Fill[T any](v *Vector[T], x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Reverse reverses the elements in place.
func Reverse[T any](v *Vector[T]) {
	for lo, hi := 0, len(v.data)-1; lo < hi; lo, hi = lo+1, hi-1 {
		v.data[lo], v.data[hi] = v.data[hi], v.data[lo]
	}
}

// Sort sorts the elements in ascending order. Reordering is not a structural
// mutation.
func Sort[T constraints.Ordered](v *Vector[T]) {
	slices.Sort(v.data)
}

func IsSorted[T constraints.Ordered](v *Vector[T]) bool {
	return slices.IsSorted(v.data)
}

// BinarySearch looks for x in a sorted vector and returns the position where
// it is, or would be inserted, and whether it was found.
func BinarySearch[T constraints.Ordered](v *Vector[T], x T) (int, bool) {
	return slices.BinarySearch(v.data, x)
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacity is not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.data, b.data)
}
