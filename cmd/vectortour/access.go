package main

import (
	"errors"
	"fmt"

	"github.com/marcodamonte/containers/vector"
)

func demoAccess() {
	v := vector.Of(10, 20, 30)
	printV("v", v)

	x, err := v.At(1)
	check("At(1)", err)
	fmt.Println("  At(1):", x)

	_, err = v.At(3)
	fmt.Println("  At(3):", err)
	fmt.Println("  errors.Is(err, ErrIndexOutOfRange):", errors.Is(err, vector.ErrIndexOutOfRange))

	var re *vector.RangeError
	if errors.As(err, &re) {
		fmt.Printf("  RangeError{Op:%q Index:%d Len:%d}\n", re.Op, re.Index, re.Len)
	}

	check("Set(0, 11)", v.Set(0, 11))
	front, err := v.Front()
	check("Front()", err)
	back, err := v.Back()
	check("Back()", err)
	fmt.Printf("  after Set(0, 11): front=%d back=%d\n", front, back)

	// Unchecked skips the error path; a bad index still panics.
	fmt.Println("  Unchecked(2):", v.Unchecked(2))
	func() {
		defer func() { fmt.Println("  Unchecked(5) panicked:", recover()) }()
		_ = v.Unchecked(5)
	}()

	var empty vector.Vector[string]
	_, err = empty.Front()
	fmt.Println("  zero Vector Front():", err)
}

func demoModifiers() {
	v := vector.New[int]()
	check("Append(1, 2, 3)", v.Append(1, 2, 3))
	printV("Append(1,2,3)", v)

	check("Insert(1, 99)", v.Insert(1, 99))
	printV("Insert(1, 99)", v)

	check("Insert(0, -2, -1)", v.Insert(0, -2, -1))
	printV("Insert(0, -2, -1)", v)

	x, err := v.Erase(2)
	check("Erase(2)", err)
	printV(fmt.Sprintf("Erase(2) → %d", x), v)

	check("EraseRange(0, 2)", v.EraseRange(0, 2))
	printV("EraseRange(0, 2)", v)

	check("Resize(6, 7)", v.Resize(6, 7))
	printV("Resize(6, 7)", v)
	check("Resize(2, 0)", v.Resize(2, 0))
	printV("Resize(2, 0)", v)

	x, err = v.PopBack()
	check("PopBack()", err)
	printV(fmt.Sprintf("PopBack() → %d", x), v)

	if err := v.Insert(5, 0); err != nil {
		fmt.Println("  Insert(5, 0):", err)
	}

	check("Assign(3, 4)", v.Assign(3, 4))
	printV("Assign(3, 4)", v)
	check("AssignSlice([]int{8, 9})", v.AssignSlice([]int{8, 9}))
	printV("AssignSlice([8 9])", v)

	w := vector.Of(100, 200, 300)
	v.Swap(w)
	printV("v after Swap", v)
	printV("w after Swap", w)

	c, err := v.Clone()
	if err != nil {
		check("Clone()", err)
		return
	}
	check("PushBack(400)", c.PushBack(400))
	printV("Clone + PushBack(400)", c)
	printV("original", v)
}
