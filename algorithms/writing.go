package main

import (
	"fmt"
	"slices"
)

// fill overwrites every element of s with v.
func fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}

// appendN is fill_n through a back inserter: append grows the slice, so
// writing n elements past the end is safe.
func appendN[T any](s []T, n int, v T) []T {
	return append(s, slices.Repeat([]T{v}, n)...)
}

func demoWriting() {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	fmt.Println("  before fill:", v)
	fill(v, 0)
	fmt.Println("  after fill: ", v)

	var vec []int
	vec = append(vec, 42)
	fmt.Println("  back insert:", vec)
	vec = appendN(vec, 10, 0)
	fmt.Println("  appendN 10: ", vec)

	// Un array se copia entero por valor; copy sobre slices devuelve cuántos.
	a1 := [...]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	a2 := a1
	a2[0] = 100
	var a3 [len(a1)]int
	n := copy(a3[:], a1[:])
	fmt.Println("  a1:", a1, "a2:", a2)
	fmt.Printf("  copy → %d elements: %v\n", n, a3)
}
