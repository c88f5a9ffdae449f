package main

import (
	"fmt"
	"strings"
)

// incrSecond reports v1 and the incremented *v2.
func incrSecond(v1 int, v2 *int) string {
	*v2++
	return fmt.Sprintf("%d %d", v1, *v2)
}

// flip1 receives its arguments by value, so the increment lands on the
// local copy of t1.
func flip1(f func(int, *int) string, t1, t2 int) string {
	return f(t2, &t1)
}

// flip2 forwards a pointer, so the caller sees the increment.
func flip2(f func(int, *int) string, t1 *int, t2 int) string {
	return f(t2, t1)
}

// flip returns f with its two parameters swapped.
func flip[A, B, R any](f func(B, A) R) func(A, B) R {
	return func(a A, b B) R { return f(b, a) }
}

func demoFlip() {
	i, j := 0, 0
	incrSecond(i, &j)
	fmt.Println("  f(i, &j)      →", i, j)

	i, j = 0, 0
	flip1(incrSecond, i, j)
	fmt.Println("  flip1(f, i, j) →", i, j, "(i unchanged)")

	i, j = 0, 0
	flip2(incrSecond, &i, j)
	fmt.Println("  flip2(f, &i, j) →", i, j, "(i changed)")

	repeat := flip(strings.Repeat)
	fmt.Println("  flip(strings.Repeat)(3, \"ab\"):", repeat(3, "ab"))
}
