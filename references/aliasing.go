package main

import "fmt"

// ── Aliasing ─────────────────────────────────────────────────────────────────
// Go has no references, but a pointer plays the same role: writing through
// it changes the variable it points to.

func demoAliasing() {
	{
		a, b := 3, 4
		c := a  // copy
		d := &a // alias for a
		c++
		*d++
		fmt.Println(" ", a, b, c, *d) // 4 4 4 4
	}

	{
		// An assignment is a statement in Go, so there is no
		// "expression with side effects in an unevaluated context".
		a, b := 3, 4
		c := a
		d := a
		fmt.Println(" ", a, b, c, d) // 3 4 3 3
	}

	{
		i := 1
		p := &i

		x := p // x aliases i
		*x = 2
		fmt.Println("  through pointer:", i) // 2

		i = 1
		y := *p // y is just an int
		y = 2
		fmt.Println("  through copy:   ", i, "(y =", y, ")") // 1
	}
}
