package vector

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"
)

// Allocator hands out storage blocks to a Vector.
//
// Allocate returns a zeroed block with len == n, or an error when the block
// cannot be provided. A Vector never retains a block it failed to fill, so an
// allocator error always leaves the vector in its previous state.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	MaxLen() int
}

// maxAlloc mirrors the runtime's per-allocation byte limit:
// 2^48 on 64-bit platforms, 2^31 on 32-bit ones.
const maxAlloc uint64 = 1 << (31 + 17*(bits.UintSize/64))

// HeapAllocator allocates blocks with make. The zero value is ready to use.
type HeapAllocator[T any] struct{}

// MaxLen is the largest block of T the runtime could ever hand out.
// Zero-sized element types are limited only by the int range.
func (HeapAllocator[T]) MaxLen() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return int(min(maxAlloc/size, uint64(math.MaxInt)))
}

// Allocate rejects impossible sizes up front and turns a makeslice panic
// into an error. A genuine out-of-memory condition is fatal in Go and cannot
// be reported here.
func (a HeapAllocator[T]) Allocate(n int) (block []T, err error) {
	if n < 0 || n > a.MaxLen() {
		return nil, fmt.Errorf("length %d exceeds max %d", n, a.MaxLen())
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			block, err = nil, re
		}
	}()
	return make([]T, n), nil
}

// LimitAllocator is a budgeted heap allocator: it refuses any block larger
// than Max elements. It also counts the blocks it handed out, which makes
// reallocations observable.
type LimitAllocator[T any] struct {
	Max         int
	Allocations int
}

func (a *LimitAllocator[T]) MaxLen() int { return a.Max }

func (a *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > a.Max {
		return nil, fmt.Errorf("budget of %d elements exceeded by request for %d", a.Max, n)
	}
	a.Allocations++
	return make([]T, n), nil
}
