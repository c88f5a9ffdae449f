package main

import "fmt"

// fact computes val! with a loop. Values below 2 yield 1.
func fact(val int) int {
	ret := 1
	for ; val > 1; val-- {
		ret *= val
	}
	return ret
}

// myFact computes i! recursively. Negative input yields 0.
func myFact(i int) int {
	switch {
	case i == 0:
		return 1
	case i < 0:
		return 0
	default:
		return i * myFact(i-1)
	}
}

func demoFact() {
	fmt.Println("  fact(5)   =", fact(5))
	fmt.Println("  myFact(6) =", myFact(6))
	fmt.Println("  myFact(-1) =", myFact(-1))
}

// ── CallCounter ──────────────────────────────────────────────────────────────
// Go has no function-local statics. State that must outlive a call lives in
// a value the caller creates once and keeps.

// CallCounter counts calls to Next. The zero value starts at 0.
type CallCounter struct {
	n int
}

// Next records a call and returns how many calls have been made so far.
func (c *CallCounter) Next() int {
	c.n++
	return c.n
}

// counter is the closure form of the same thing.
func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func demoCallCounter() {
	var c CallCounter
	fmt.Print("  ")
	for i := 0; i != 10; i++ {
		fmt.Print(c.Next(), " ")
	}
	fmt.Println()

	next := counter()
	next()
	fmt.Println("  closure after two calls:", next())
}
