package main

import (
	"errors"
	"fmt"
)

// ── defer ────────────────────────────────────────────────────────────────────
// `return x` first stores x in the result, then runs deferred calls. A
// deferred closure can therefore change a named result, but not a local
// that was already copied out.

func anonymousResult() int {
	x := 5
	defer func() { x *= 2 }()
	return x // 5
}

func namedResult() (result int) {
	defer func() { result *= 2 }()
	return 5 // 10
}

var errNegative = errors.New("negative input")

// checkedFact wraps every failure with its argument in one place.
func checkedFact(n int) (_ int, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("checkedFact(%d): %w", n, err)
		}
	}()
	if n < 0 {
		return 0, errNegative
	}
	return fact(n), nil
}

func demoDefer() {
	fmt.Println("  anonymousResult:", anonymousResult())
	fmt.Println("  namedResult:    ", namedResult())

	for _, n := range []int{4, -2} {
		v, err := checkedFact(n)
		fmt.Printf("  checkedFact(%d) = %d, %v\n", n, v, err)
	}

	// Deferred calls run last-in, first-out.
	fmt.Print("  ")
	func() {
		for i := range 3 {
			defer fmt.Print(i, " ")
		}
	}()
	fmt.Println()
}
