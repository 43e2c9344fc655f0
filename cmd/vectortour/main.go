// Command vectortour prints a section-by-section walkthrough of the vector
// package: growth, element access, modifiers, capacity management,
// iteration, borrowed views, algorithms, nesting and guarded access.
//
// Run:
//
//	go run ./cmd/vectortour
package main

import (
	"fmt"

	"github.com/marcodamonte/containers/vector"
)

func main() {
	section("Growth: capacity doubles, reallocations stay logarithmic")
	demoGrowth()

	section("Access: checked At/Set, Front/Back, unchecked indexing")
	demoAccess()

	section("Modifiers: insert, erase, resize, assign, swap")
	demoModifiers()

	section("Capacity: Reserve, ShrinkToFit, allocator budgets, allocation cost")
	demoCapacity()

	section("Iteration: All, Values, Backward, mutation while ranging")
	demoIteration()

	section("Data view: borrowed storage and invalidation")
	demoView()

	section("Algorithms: search, remove, sort, reverse, compare")
	demoAlgorithms()

	section("2D vector: a vector of vectors")
	demoMatrix()

	section("Guarded: sharing one vector between goroutines")
	demoGuarded()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func printV[T any](label string, v *vector.Vector[T]) {
	fmt.Printf("  %-24s %v  len=%d cap=%d\n", label+":", v, v.Len(), v.Cap())
}

// check prints err when a demo call fails, so the state printed next is not
// mistaken for the call's effect.
func check(call string, err error) {
	if err != nil {
		fmt.Printf("  %s failed: %v\n", call, err)
	}
}
