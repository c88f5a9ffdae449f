package main

import (
	"fmt"
	"slices"
)

// ── Slices ───────────────────────────────────────────────────────────────────
// []T replaces a vector. A slice of slices is a 2-D table whose rows can
// have different lengths.

func demoSlices() {
	var grid [][]int
	fmt.Printf("  grid=%v len=%d nil=%t\n", grid, len(grid), grid == nil)

	svec := slices.Repeat([]string{"null"}, 10)
	fmt.Printf("  svec=%v\n", svec)

	var v2 []int
	for i := 0; i != 100; i++ {
		v2 = append(v2, i)
	}
	fmt.Printf("  v2: len=%d first=%d last=%d\n", len(v2), v2[0], v2[len(v2)-1])

	v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	squareAll(v)
	fmt.Println(" ", v)
}

// squareAll squares every element in place.
func squareAll(v []int) {
	for i := range v {
		v[i] *= v[i]
	}
}

// ── Indexes ──────────────────────────────────────────────────────────────────
// Iterator differences become index differences: a signed int.

func demoIndexes() {
	v := []int{1, 2, 3, 4, 5}
	begin, end := 0, len(v)
	fmt.Println(" ", distance(begin, end)) // 5
	fmt.Println(" ", distance(end, begin)) // -5

	// Arrays are values; a pointer to an array shares it.
	var arr [10]int // zero-filled, never garbage
	parray := &arr
	parray[3] = 7
	alias := arr[:] // a slice views the array
	alias[4] = 8
	fmt.Println(" ", arr)

	// Nil pointers compare, but there is no pointer arithmetic.
	var p, q *int
	fmt.Println("  p == q:", p == q)
}

// distance returns the signed number of steps from i to j.
func distance(i, j int) int { return j - i }
