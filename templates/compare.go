package main

import (
	"cmp"
	"fmt"
	"slices"
)

// ── compare ──────────────────────────────────────────────────────────────────
// Only < is required of T: 1 when v2 < v1, -1 when v1 < v2, otherwise 0.

func compare[T cmp.Ordered](v1, v2 T) int {
	return compareFunc(v1, v2, cmp.Less[T])
}

// compareFunc takes the ordering as a parameter, the way a default template
// argument would supply it.
func compareFunc[T any](v1, v2 T, less func(a, b T) bool) int {
	if less(v1, v2) {
		return -1
	}
	if less(v2, v1) {
		return 1
	}
	return 0
}

// flexibleCompare orders values of two different types by first converting
// both to an ordered type U.
func flexibleCompare[U cmp.Ordered, A, B any](v1 A, v2 B, convA func(A) U, convB func(B) U) int {
	return compare(convA(v1), convB(v2))
}

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// sum adds two values of the same type; strings concatenate.
func sum[T number | ~string](x, y T) T { return x + y }

// firstPlusZero returns the first element after an arithmetic step, so a
// []string is rejected at compile time.
func firstPlusZero[T number](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0] + 0, true
}

func demoCompare() {
	fmt.Println("  compare(1, 0):", compare(1, 0))
	fmt.Println("  slices.Compare([1 2 3], [4 5 6]):", slices.Compare([]int{1, 2, 3}, []int{4, 5, 6}))
	fmt.Println(`  compare("hi", "mom"):`, compare("hi", "mom"))
	fmt.Println("  reverse order compare(1, 0):", compareFunc(1, 0, func(a, b int) bool { return a > b }))

	type meters int
	type feet int
	fmt.Println("  flexibleCompare(meters(3), feet(9)):",
		flexibleCompare(meters(3), feet(9),
			func(m meters) float64 { return float64(m) },
			func(f feet) float64 { return float64(f) * 0.3048 }))

	fmt.Println("  sum[string]:", sum("hello", "world"))
	f := 3.14
	fmt.Println("  max[int](42, int(3.14)):", max(42, int(f)), " max(42, 3.14):", max(42, f))

	v, _ := firstPlusZero([]float64{0, 1, 2, 3})
	fmt.Printf("  firstPlusZero([]float64): %v (%T)\n", v, v)
}
