package main

import "fmt"

// ── Inference ────────────────────────────────────────────────────────────────
// := takes the type of the initializer. A copy of a value is a plain value
// of the same type; taking an address gives a pointer.
//
// Constants without a type stay "untyped" until they are used, so the same
// constant can initialize an int and a float64.

const answer = 42 // untyped integer constant

func demoInference() {
	i := 0
	r := &i // *int
	a := *r // int: the value, not the pointer
	d := &i // *int
	e := &a // *int, pointing at a different variable
	fmt.Printf("  i=%T r=%T a=%T d=%T e=%T\n", i, r, a, d, e)

	a = 42
	fmt.Printf("  after a = 42: i=%d a=%d (a is a copy)\n", i, a)

	var f float64 = answer
	var n int = answer
	fmt.Printf("  answer as float64=%v int=%v\n", f, n)

	// Types of mixed expressions follow the typed operand.
	x := 1.5
	fmt.Printf("  x + answer = %v (%T)\n", x+answer, x+answer)
}
