package main

import (
	"fmt"

	"github.com/marcodamonte/containers/vector"
)

func demoIteration() {
	v := vector.Of("a", "b", "c", "d")

	fmt.Print("  All:      ")
	for i, s := range v.All() {
		fmt.Printf("%d=%s ", i, s)
	}
	fmt.Print("\n  Backward: ")
	for i, s := range v.Backward() {
		fmt.Printf("%d=%s ", i, s)
	}
	fmt.Print("\n  Values until \"c\": ")
	for s := range v.Values() {
		if s == "c" {
			break
		}
		fmt.Print(s, " ")
	}
	fmt.Println()

	// Set is not structural, so writing through the vector is fine.
	n := vector.Of(1, 2, 3)
	for i, x := range n.All() {
		check("Set(i, x*10)", n.Set(i, x*10))
	}
	printV("doubled in place", n)

	fmt.Println("  PushBack inside the loop invalidates the iterator:")
	func() {
		defer func() { fmt.Println("  recovered:", recover()) }()
		for _, x := range n.All() {
			check("PushBack(x)", n.PushBack(x))
		}
	}()
}

func demoView() {
	v := vector.Of(1, 2, 3)
	view := v.Data()

	check("Set(0, 42)", view.Set(0, 42))
	x, err := v.At(0)
	check("At(0)", err)
	fmt.Printf("  view.Set(0, 42) → v.At(0) = %d\n", x)

	s, err := view.Slice()
	check("view.Slice()", err)
	fmt.Printf("  view.Slice() = %v  len=%d cap=%d\n", s, len(s), cap(s))

	check("PushBack(4)", v.PushBack(4))
	fmt.Println("  after v.PushBack(4) view.Valid():", view.Valid())
	_, err = view.At(0)
	fmt.Println("  view.At(0):", err)

	fresh := v.Data()
	fmt.Println("  fresh view len:", fresh.Len())

	var empty vector.Vector[int]
	fmt.Println("  empty vector view len:", empty.Data().Len())
}
