package script

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/marcodamonte/containers/vector"
)

// Stable names for the vector error kinds, as written in expect_err and in
// reports.
const (
	KindIndexOutOfRange = "index_out_of_range"
	KindEmpty           = "empty"
	KindAllocation      = "allocation"
	KindOther           = "other"
)

var knownKinds = map[string]bool{
	KindIndexOutOfRange: true,
	KindEmpty:           true,
	KindAllocation:      true,
	KindOther:           true,
}

// Kind classifies an error returned by a vector operation. nil maps to "".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vector.ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, vector.ErrEmpty):
		return KindEmpty
	case errors.Is(err, vector.ErrAllocation):
		return KindAllocation
	default:
		return KindOther
	}
}

// Run replays s on a fresh vector. Operation errors are not Run errors: they
// are recorded in the step results and checked against the expectations.
// Run itself fails only when the vector cannot be built or ctx ends; the
// report gathered so far is returned alongside ctx's error.
func Run(ctx context.Context, s *Script) (*Report, error) {
	v, err := build(s)
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}

	r := &Report{Name: s.Name, Steps: make([]StepResult, 0, len(s.Steps))}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			r.Final = v.Slice()
			return r, fmt.Errorf("script %q stopped before step %d: %w", s.Name, i+1, err)
		}

		value, opErr := apply(v, st)
		res := StepResult{
			Step:     i + 1,
			Op:       st.Op,
			Err:      Kind(opErr),
			Value:    value,
			Len:      v.Len(),
			Cap:      v.Cap(),
			Elements: v.Slice(),
		}
		if opErr != nil {
			res.Message = opErr.Error()
		}
		r.Steps = append(r.Steps, res)
		r.Failures = append(r.Failures, check(st, res, opErr)...)
	}
	r.Final = v.Slice()
	return r, nil
}

func build(s *Script) (*vector.Vector[int], error) {
	var opts []vector.Option[int]
	if s.MaxCapacity > 0 {
		opts = append(opts, vector.WithAllocator[int](&vector.LimitAllocator[int]{Max: s.MaxCapacity}))
	}
	switch {
	case s.Fill != nil:
		return vector.Make(s.Fill.N, s.Fill.Value, opts...)
	case len(s.Initial) > 0:
		return vector.FromSlice(s.Initial, opts...)
	default:
		return vector.New(opts...), nil
	}
}

// apply performs one step. The returned value is set for operations that
// produce an element or a count.
func apply(v *vector.Vector[int], st Step) (*int, error) {
	switch st.Op {
	case OpPushBack:
		if len(st.Values) > 0 {
			return nil, v.Append(st.Values...)
		}
		return nil, v.PushBack(st.Value)
	case OpPopBack:
		return produced(v.PopBack())
	case OpInsert:
		if len(st.Values) > 0 {
			return nil, v.Insert(st.Index, st.Values...)
		}
		return nil, v.Insert(st.Index, st.Value)
	case OpErase:
		return produced(v.Erase(st.Index))
	case OpEraseRange:
		return nil, v.EraseRange(st.Index, st.Last)
	case OpAt:
		return produced(v.At(st.Index))
	case OpSet:
		return nil, v.Set(st.Index, st.Value)
	case OpFront:
		return produced(v.Front())
	case OpBack:
		return produced(v.Back())
	case OpReserve:
		return nil, v.Reserve(st.N)
	case OpResize:
		return nil, v.Resize(st.N, st.Value)
	case OpShrinkToFit:
		return nil, v.ShrinkToFit()
	case OpClear:
		v.Clear()
		return nil, nil
	case OpAssign:
		if st.Values != nil {
			return nil, v.AssignSlice(st.Values)
		}
		return nil, v.Assign(st.N, st.Value)
	case OpSwap:
		v.Swap(vector.Of(st.Values...))
		return nil, nil
	case OpSort:
		vector.Sort(v)
		return nil, nil
	case OpRemove:
		n := vector.RemoveValue(v, st.Value)
		return &n, nil
	case OpFill:
		vector.Fill(v, st.Value)
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidScript, st.Op)
}

func produced(x int, err error) (*int, error) {
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// check compares one step's outcome with its expectations.
func check(st Step, res StepResult, opErr error) []string {
	var fails []string
	failf := func(format string, args ...any) {
		prefix := fmt.Sprintf("step %d (%s): ", res.Step, st.Op)
		fails = append(fails, prefix+fmt.Sprintf(format, args...))
	}

	switch {
	case st.ExpectErr == "" && opErr != nil:
		failf("unexpected error: %v", opErr)
	case st.ExpectErr != "" && opErr == nil:
		failf("expected %s error, got none", st.ExpectErr)
	case st.ExpectErr != "" && st.ExpectErr != res.Err:
		failf("expected %s error, got %s: %v", st.ExpectErr, res.Err, opErr)
	}

	if st.Expect != nil && !slices.Equal(*st.Expect, res.Elements) {
		failf("elements = %v; want %v", res.Elements, *st.Expect)
	}
	if st.ExpectValue != nil {
		switch {
		case res.Value == nil:
			failf("no value produced; want %d", *st.ExpectValue)
		case *res.Value != *st.ExpectValue:
			failf("value = %d; want %d", *res.Value, *st.ExpectValue)
		}
	}
	if st.ExpectLen != nil && *st.ExpectLen != res.Len {
		failf("len = %d; want %d", res.Len, *st.ExpectLen)
	}
	if st.ExpectCap != nil && *st.ExpectCap != res.Cap {
		failf("cap = %d; want %d", res.Cap, *st.ExpectCap)
	}
	return fails
}
