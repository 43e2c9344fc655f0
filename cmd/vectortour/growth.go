package main

import (
	"fmt"
	"testing"

	"github.com/marcodamonte/containers/vector"
)

var sink any

func demoGrowth() {
	fmt.Println("  PushBack into an empty vector, reporting every reallocation:")
	alloc := &vector.LimitAllocator[int]{Max: 1 << 20}
	v := vector.New(vector.WithAllocator[int](alloc))
	prevCap := 0
	for i := range 100 {
		if err := v.PushBack(i); err != nil {
			fmt.Println("  push_back:", err)
			return
		}
		if v.Cap() != prevCap {
			fmt.Printf("  len=%-3d  cap grew %d → %d\n", v.Len(), prevCap, v.Cap())
			prevCap = v.Cap()
		}
	}
	fmt.Printf("  100 pushes, %d allocations\n", alloc.Allocations)

	// Append of many elements grows once, to max(need, 2*cap).
	w := vector.Of(1, 2, 3)
	check("Append(4, 5, 6, 7, 8, 9, 10)", w.Append(4, 5, 6, 7, 8, 9, 10))
	printV("Of(1,2,3).Append(4..10)", w)
}

func demoCapacity() {
	v := vector.New[int]()
	check("Reserve(10)", v.Reserve(10))
	printV("Reserve(10)", v)
	check("Append(1, 2, 3)", v.Append(1, 2, 3))
	printV("Append(1,2,3)", v)
	check("Reserve(4)", v.Reserve(4))
	printV("Reserve(4) (no-op)", v)
	check("ShrinkToFit()", v.ShrinkToFit())
	printV("ShrinkToFit", v)
	v.Clear()
	printV("Clear (keeps cap)", v)
	check("ShrinkToFit()", v.ShrinkToFit())
	printV("ShrinkToFit on empty", v)

	fmt.Println("\n  LimitAllocator caps the storage; a refused growth changes nothing:")
	b := vector.New(vector.WithAllocator[int](&vector.LimitAllocator[int]{Max: 4}))
	check("Append(1, 2, 3, 4)", b.Append(1, 2, 3, 4))
	printV("budget 4, full", b)
	if err := b.PushBack(5); err != nil {
		fmt.Printf("  PushBack(5): %v\n", err)
	}
	printV("after refused PushBack", b)

	fmt.Println("\n  Allocation cost measured with testing.AllocsPerRun:")
	allocs := func(label string, f func()) {
		fmt.Printf("  %-34s %.0f allocs\n", label, testing.AllocsPerRun(50, f))
	}
	allocs("PushBack 1000 (no reserve)", func() {
		v := vector.New[int]()
		for i := range 1000 {
			check("PushBack(i)", v.PushBack(i))
		}
		sink = v
	})
	allocs("Reserve(1000) + PushBack 1000", func() {
		v := vector.New[int]()
		check("Reserve(1000)", v.Reserve(1000))
		for i := range 1000 {
			check("PushBack(i)", v.PushBack(i))
		}
		sink = v
	})
}
