package main

import (
	"fmt"
	"sync"

	"github.com/marcodamonte/containers/vector"
)

// A Vector is not safe for concurrent use. Guarded serialises writers and
// lets readers share an RLock.
func demoGuarded() {
	const goroutines = 8
	const perG = 250

	g := vector.NewGuarded(vector.New[int]())

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range perG {
				err := g.Update(func(v *vector.Vector[int]) error {
					return v.PushBack(id*perG + j)
				})
				check("PushBack", err)
			}
		}(i)
	}
	wg.Wait()

	var sum int
	g.Read(func(v *vector.Vector[int]) {
		for x := range v.Values() {
			sum += x
		}
	})

	n := goroutines * perG
	fmt.Printf("  %d goroutines × %d pushes → len=%d (expected %d)\n", goroutines, perG, g.Len(), n)
	fmt.Printf("  sum=%d (expected %d)\n", sum, n*(n-1)/2)
	fmt.Println("  snapshot is a copy, first 5:", g.Snapshot()[:5])
}
