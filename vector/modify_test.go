package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/containers/vector"
)

// TestInsertEraseRoundTrip checks that Insert(i, x) followed by Erase(i)
// restores the original sequence for every valid i, including the end.
func TestInsertEraseRoundTrip(t *testing.T) {
	base := vector.Of(10, 20, 30, 40)

	for i := 0; i <= base.Len(); i++ {
		v, err := base.Clone()
		require.NoError(t, err)

		require.NoError(t, v.Insert(i, 99))
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, 99, got)

		removed, err := v.Erase(i)
		require.NoError(t, err)
		assert.Equal(t, 99, removed)
		assert.True(t, vector.Equal(base, v), "i=%d: got %v", i, v)
	}
}

func TestIndexErrorsLeaveVectorUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		index int
		call  func(v *vector.Vector[int]) error
	}{
		{"insert negative", "Insert", -1, func(v *vector.Vector[int]) error { return v.Insert(-1, 0) }},
		{"insert past end", "Insert", 5, func(v *vector.Vector[int]) error { return v.Insert(5, 0) }},
		{"erase at len", "Erase", 4, func(v *vector.Vector[int]) error { _, err := v.Erase(4); return err }},
		{"erase negative", "Erase", -1, func(v *vector.Vector[int]) error { _, err := v.Erase(-1); return err }},
		{"at len", "At", 4, func(v *vector.Vector[int]) error { _, err := v.At(4); return err }},
		{"set len", "Set", 4, func(v *vector.Vector[int]) error { return v.Set(4, 1) }},
		{"resize negative", "Resize", -2, func(v *vector.Vector[int]) error { return v.Resize(-2, 0) }},
		{"assign negative", "Assign", -1, func(v *vector.Vector[int]) error { return v.Assign(-1, 0) }},
		{"erase range reversed", "EraseRange", 1, func(v *vector.Vector[int]) error { return v.EraseRange(3, 1) }},
		{"erase range past end", "EraseRange", 5, func(v *vector.Vector[int]) error { return v.EraseRange(0, 5) }},
		{"erase range negative", "EraseRange", -1, func(v *vector.Vector[int]) error { return v.EraseRange(-1, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vector.Of(1, 2, 3, 4)

			err := tt.call(v)
			require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

			var re *vector.RangeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.op, re.Op)
			assert.Equal(t, tt.index, re.Index)
			assert.Equal(t, 4, re.Len)

			assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
			assert.Equal(t, 4, v.Cap())
		})
	}
}

func TestInsertMany(t *testing.T) {
	v := vector.Of(1, 5)
	require.NoError(t, v.Insert(1, 2, 3, 4))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())

	require.NoError(t, v.Insert(v.Len(), 6))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, v.Slice())

	require.NoError(t, v.Insert(0))
	assert.Equal(t, 6, v.Len())
}

func TestInsertFromOwnStorage(t *testing.T) {
	v := vector.Of(1, 2, 3)
	require.NoError(t, v.Reserve(10))

	s, err := v.Data().Slice()
	require.NoError(t, err)
	require.NoError(t, v.Insert(1, s...))

	assert.Equal(t, []int{1, 1, 2, 3, 2, 3}, v.Slice())
}

func TestEraseRange(t *testing.T) {
	v := vector.Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.NoError(t, v.EraseRange(2, 5))
	assert.Equal(t, []int{0, 1, 5, 6, 7, 8, 9}, v.Slice())
	assert.Equal(t, 10, v.Cap())

	require.NoError(t, v.EraseRange(3, 3))
	assert.Equal(t, 7, v.Len())

	require.NoError(t, v.EraseRange(0, v.Len()))
	assert.True(t, v.IsEmpty())
}

func TestPopBackAndEnds(t *testing.T) {
	v := vector.New[int]()

	_, err := v.PopBack()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Front()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Back()
	assert.ErrorIs(t, err, vector.ErrEmpty)

	require.NoError(t, v.Append(100, 200, 300))

	front, err := v.Front()
	require.NoError(t, err)
	assert.Equal(t, 100, front)
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 300, back)

	last, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 300, last)
	assert.Equal(t, []int{100, 200}, v.Slice())
}

func TestAssign(t *testing.T) {
	v := vector.Of(1, 2, 3, 4)

	require.NoError(t, v.Assign(2, 7))
	assert.Equal(t, []int{7, 7}, v.Slice())
	assert.Equal(t, 4, v.Cap(), "shrinking assign keeps capacity")

	require.NoError(t, v.Assign(6, 1))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, v.Slice())
	assert.Equal(t, 6, v.Cap())

	require.NoError(t, v.Assign(0, 9))
	assert.True(t, v.IsEmpty())
}

func TestAssignSlice(t *testing.T) {
	v := vector.New[string]()
	require.NoError(t, v.AssignSlice([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, v.Slice())

	// Source aliasing the vector's own storage.
	s, err := v.Data().Slice()
	require.NoError(t, err)
	require.NoError(t, v.AssignSlice(s[1:]))
	assert.Equal(t, []string{"b", "c"}, v.Slice())
	assert.Equal(t, 3, v.Cap())

	require.NoError(t, v.AssignSlice([]string{"w", "x", "y", "z"}))
	assert.Equal(t, []string{"w", "x", "y", "z"}, v.Slice())
	assert.Equal(t, 4, v.Cap())
}

func TestResize(t *testing.T) {
	v := vector.Of(1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, v.Reserve(20))

	require.NoError(t, v.Resize(10, 0))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 0, 0, 0}, v.Slice())
	assert.Equal(t, 20, v.Cap())

	require.NoError(t, v.Resize(2, 0))
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 20, v.Cap(), "shrinking resize keeps capacity")

	// Reserved slots were cleared: growing again shows the fill, not old data.
	require.NoError(t, v.Resize(4, -1))
	assert.Equal(t, []int{1, 2, -1, -1}, v.Slice())
}

func TestClear(t *testing.T) {
	v := vector.Of(1, 2, 3, 4, 5)
	require.NoError(t, v.Reserve(32))

	v.Clear()

	assert.Zero(t, v.Len())
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 32, v.Cap())
}
