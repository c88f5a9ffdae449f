package main

import (
	"fmt"
	"strings"
)

// ── Pointers ─────────────────────────────────────────────────────────────────
// Arguments are copied. To let a function change the caller's variable,
// pass its address.

func resetInt(p *int) { *p = 0 }

// swapInt exchanges the values behind a and b.
func swapInt(a, b *int) {
	if *a == *b {
		return
	}
	*a, *b = *b, *a
}

func demoPointers() {
	i := 1
	resetInt(&i)
	fmt.Println("  after resetInt:", i)

	const ci = 42
	j := ci
	p := &j
	*p = 43
	fmt.Println("  through p:", j)

	a, b := 1, 2
	swapInt(&a, &b)
	fmt.Println("  swapped:", a, b)

	// Multiple results make the pointer version unnecessary.
	a, b = b, a
	fmt.Println("  swapped back:", a, b)
}

// ── Variadics ────────────────────────────────────────────────────────────────
// ...T receives any number of arguments as a []T, and s... spreads a slice.

func errorMsg(msgs ...string) string { return strings.Join(msgs, " ") }

func listSum(vals ...int) int {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return sum
}

// printInts writes the elements separated by spaces.
func printInts(vals ...int) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%d ", v)
	}
	return b.String()
}

func demoVariadic() {
	fmt.Println(" ", errorMsg("Error_1", "Error_2", "Error_3"))
	fmt.Println(" ", listSum(1, 2, 3, 4, 5))

	a := [5]int{0, 1, 2, 3, 4}
	fmt.Println(" ", printInts(a[:]...))
	fmt.Println(" ", printInts(a[1:3]...))
	fmt.Println(" ", listSum())
}

// ── Returning pointers ───────────────────────────────────────────────────────

// getVal returns a pointer to byte ix of b, so the caller can assign
// through it.
func getVal(b []byte, ix int) *byte { return &b[ix] }

// shorterString returns whichever of s1, s2 is shorter, preferring s1 on a
// tie. Writing through the result changes the caller's variable.
func shorterString(s1, s2 *string) *string {
	if len(*s1) <= len(*s2) {
		return s1
	}
	return s2
}

func demoReturnPointers() {
	s := []byte("Hello World?")
	fmt.Println(" ", string(s))
	*getVal(s, 11) = '!'
	fmt.Println(" ", string(s))

	s1, s2 := "Name", "Birthday"
	fmt.Println(" ", *shorterString(&s1, &s2))

	s3, s4 := "Alice", "Bob"
	fmt.Println(" ", *shorterString(&s3, &s4))
	*shorterString(&s3, &s4) = "Calvin"
	fmt.Println("  s4 is now", s4)
}
