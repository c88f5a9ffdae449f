package main

import (
	"fmt"
	"slices"
)

// accumulate folds s left to right starting at init. The accumulator type is
// chosen by init, not by the element type.
func accumulate[T, A any](s []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// equalPrefix reports whether every element of a matches the element at the
// same position in b. b may be longer than a; if it is shorter the answer is
// false instead of reading past its end.
func equalPrefix[A, B any](a []A, b []B, eq func(A, B) bool) bool {
	if len(b) < len(a) {
		return false
	}
	return slices.EqualFunc(a, b[:len(a)], eq)
}

func demoReadOnly() {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	val := 42
	present := "is not present"
	if slices.Contains(v, val) {
		present = "is present"
	}
	fmt.Printf("  the value %d %s\n", val, present)

	ia := [...]int{27, 210, 12, 47, 109, 83}
	if i := slices.Index(ia[:], 109); i > 0 {
		fmt.Println("  element before 109:", ia[i-1])
	}

	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	fmt.Println("  sum 1..10:", accumulate(nums, 0, func(a, n int) int { return a + n }))
	// El tipo del acumulador sale del valor inicial.
	fmt.Printf("  as float: %.1f\n", accumulate(nums, 0.5, func(a float64, n int) float64 { return a + float64(n) }))
	words := []string{"Hello", " ", "World"}
	fmt.Printf("  concat: %q\n", accumulate(words, "", func(a, w string) string { return a + w }))

	roster1 := []string{"Hello", "World"}
	roster2 := [][]byte{[]byte("Hello"), []byte("World"), []byte("!!!")}
	fmt.Println("  rosters equal:", equalPrefix(roster1, roster2, func(s string, b []byte) bool {
		return s == string(b)
	}))
}
