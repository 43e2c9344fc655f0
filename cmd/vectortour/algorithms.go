package main

import (
	"fmt"
	"strings"

	"github.com/marcodamonte/containers/vector"
)

func demoAlgorithms() {
	v := vector.Of(5, 3, 8, 3, 1, 3)
	printV("v", v)
	fmt.Println("  Index(8):", vector.Index(v, 8), " Contains(7):", vector.Contains(v, 7))

	n := vector.RemoveValue(v, 3)
	printV(fmt.Sprintf("RemoveValue(3) → %d", n), v)

	vector.Sort(v)
	printV("Sort", v)
	i, found := vector.BinarySearch(v, 5)
	fmt.Printf("  BinarySearch(5): i=%d found=%v  IsSorted=%v\n", i, found, vector.IsSorted(v))

	vector.Reverse(v)
	printV("Reverse", v)

	vector.Fill(v, 0)
	printV("Fill(0)", v)

	a := vector.Of(1, 2)
	b := vector.New[int]()
	check("Reserve(16)", b.Reserve(16))
	check("Append(1, 2)", b.Append(1, 2))
	fmt.Println("  Equal ignores capacity:", vector.Equal(a, b))
}

// demoMatrix builds a 3x4 grid as a vector of row vectors.
func demoMatrix() {
	const rows, cols = 3, 4

	grid := vector.New[*vector.Vector[int]]()
	for r := range rows {
		row, err := vector.Make(cols, 0)
		if err != nil {
			fmt.Println("  make row:", err)
			return
		}
		for c := range cols {
			check("row.Set", row.Set(c, r*cols+c))
		}
		check("PushBack(row)", grid.PushBack(row))
	}

	// Rows are independent: one can grow without touching the others.
	last, err := grid.Back()
	if err != nil {
		check("Back()", err)
		return
	}
	check("PushBack(99)", last.PushBack(99))

	for r, row := range grid.All() {
		var sb strings.Builder
		for x := range row.Values() {
			fmt.Fprintf(&sb, "%3d", x)
		}
		fmt.Printf("  row %d:%s\n", r, sb.String())
	}

	cell, err := grid.Unchecked(1).At(2)
	check("grid[1].At(2)", err)
	fmt.Println("  grid[1][2] =", cell)
}
