package main

import "fmt"

// ── Loops ────────────────────────────────────────────────────────────────────
// for is the only loop. Without a condition it is `while (true)`; with only
// a condition it is `while (cond)`.

func demoLoops() {
	ival := 0
	v1, v2 := 1, 2
	ival = v1 + v2
	fmt.Println(" ", ival)

	i := 10
	for i--; i != 0; i-- {
		// an empty body is fine
	}
	fmt.Println(" ", i)

	fmt.Println(" ", duplicate([]int{1, 2, 3}))

	v := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := range v {
		v[i] *= v[i]
	}
	fmt.Println(" ", v)
}

// duplicate appends a copy of every original element. The bound is fixed
// before the loop, so the appended elements are not visited.
func duplicate(v []int) []int {
	for i, sz := 0, len(v); i != sz; i++ {
		v = append(v, v[i])
	}
	return v
}
