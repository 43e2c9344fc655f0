// Package vector provides Vector, a generic growable array modeled on the
// C++ std::vector: contiguous storage, amortized O(1) PushBack, explicit
// capacity management and two accessor forms (checked and unchecked).
//
// Errors are reported through sentinels matched with errors.Is:
//
//	ErrIndexOutOfRange  index outside the valid range (*RangeError)
//	ErrEmpty            operation needs at least one element
//	ErrAllocation       storage could not be grown (*AllocError)
//	ErrStaleView        View used after a structural mutation
//
// Every failing call leaves the vector exactly as it was.
package vector
