package vector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/containers/vector"
)

// limited returns a vector holding 1..4 with capacity 4 on a budget of max
// elements.
func limited(t *testing.T, max int) *vector.Vector[int] {
	t.Helper()
	v := vector.New(vector.WithAllocator[int](&vector.LimitAllocator[int]{Max: max}))
	require.NoError(t, v.Append(1, 2, 3, 4))
	require.Equal(t, 4, v.Cap())
	return v
}

// TestAllocationFailureIsAtomic verifies that every growing operation either
// succeeds or leaves length, capacity and contents exactly as before.
func TestAllocationFailureIsAtomic(t *testing.T) {
	tests := []struct {
		name      string
		op        string
		requested int
		call      func(v *vector.Vector[int]) error
	}{
		{"push back", "PushBack", 5, func(v *vector.Vector[int]) error { return v.PushBack(5) }},
		{"append", "Append", 6, func(v *vector.Vector[int]) error { return v.Append(5, 6) }},
		{"insert", "Insert", 5, func(v *vector.Vector[int]) error { return v.Insert(0, 0) }},
		{"resize", "Resize", 9, func(v *vector.Vector[int]) error { return v.Resize(9, 0) }},
		{"reserve", "Reserve", 100, func(v *vector.Vector[int]) error { return v.Reserve(100) }},
		{"assign", "Assign", 5, func(v *vector.Vector[int]) error { return v.Assign(5, 0) }},
		{"assign slice", "AssignSlice", 5, func(v *vector.Vector[int]) error {
			return v.AssignSlice([]int{9, 9, 9, 9, 9})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := limited(t, 4)
			view := v.Data()

			err := tt.call(v)
			require.ErrorIs(t, err, vector.ErrAllocation)

			var ae *vector.AllocError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.op, ae.Op)
			assert.Equal(t, tt.requested, ae.Requested)
			assert.Error(t, ae.Unwrap(), "allocator cause is kept")

			assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
			assert.Equal(t, 4, v.Cap())
			assert.True(t, view.Valid(), "a failed call is not a mutation")
		})
	}
}

func TestGrowthClampedToAllocatorLimit(t *testing.T) {
	v := limited(t, 6)

	// Doubling would ask for 8; the allocator only has 6 to give.
	require.NoError(t, v.PushBack(5))
	assert.Equal(t, 6, v.Cap())

	require.NoError(t, v.PushBack(6))
	err := v.PushBack(7)
	assert.ErrorIs(t, err, vector.ErrAllocation)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, v.Slice())
}

// shortAllocator hands out one slot fewer than requested.
type shortAllocator struct{}

func (shortAllocator) MaxLen() int { return math.MaxInt32 }

func (shortAllocator) Allocate(n int) ([]int, error) {
	return make([]int, max(0, n-1)), nil
}

func TestShortBlockIsAllocationFailure(t *testing.T) {
	tests := []struct {
		op   string
		call func(v *vector.Vector[int]) error
	}{
		{"PushBack", func(v *vector.Vector[int]) error { return v.PushBack(1) }},
		{"Reserve", func(v *vector.Vector[int]) error { return v.Reserve(8) }},
		{"Assign", func(v *vector.Vector[int]) error { return v.Assign(3, 7) }},
		{"AssignSlice", func(v *vector.Vector[int]) error { return v.AssignSlice([]int{1, 2, 3}) }},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			v := vector.New(vector.WithAllocator[int](shortAllocator{}))

			var err error
			require.NotPanics(t, func() { err = tt.call(v) })
			require.ErrorIs(t, err, vector.ErrAllocation)

			var ae *vector.AllocError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.op, ae.Op)
			assert.Zero(t, v.Len())
			assert.Zero(t, v.Cap())
		})
	}
}

func TestHeapAllocator(t *testing.T) {
	var a vector.HeapAllocator[int64]

	block, err := a.Allocate(8)
	require.NoError(t, err)
	assert.Len(t, block, 8)
	assert.Equal(t, make([]int64, 8), block)

	_, err = a.Allocate(-1)
	assert.Error(t, err)
	_, err = a.Allocate(math.MaxInt)
	assert.Error(t, err)
}

func TestReserveBeyondMaxLen(t *testing.T) {
	v := vector.Of[int64](1, 2, 3)

	err := v.Reserve(math.MaxInt)
	require.ErrorIs(t, err, vector.ErrAllocation)
	assert.Equal(t, []int64{1, 2, 3}, v.Slice())
	assert.Equal(t, 3, v.Cap())
}

// ── Allocation counts (run with -benchmem for the full picture) ──────────────

func TestPushBackWithinCapacityDoesNotAllocate(t *testing.T) {
	v := vector.New[int]()
	require.NoError(t, v.Reserve(1000))

	allocs := testing.AllocsPerRun(100, func() {
		v.Clear()
		for i := range 1000 {
			_ = v.PushBack(i)
		}
	})
	assert.Zero(t, allocs)
}

func TestClearDropsReferences(t *testing.T) {
	v := vector.New[*int]()
	x, y := 1, 2
	require.NoError(t, v.Append(&x, &y))

	v.Clear()
	require.NoError(t, v.Resize(2, nil))

	// Reserved slots hold the zero value, not the old pointers.
	a, _ := v.At(0)
	b, _ := v.At(1)
	assert.Nil(t, a)
	assert.Nil(t, b)
}
