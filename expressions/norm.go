package main

import (
	"fmt"
	"math"
)

// Number is any integer or float type, including defined types built on
// them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// l2Norm is the Euclidean distance between x and y. The shorter vector is
// padded with zeros, and the element types may differ.
func l2Norm[T1, T2 Number](x []T1, y []T2) float64 {
	var s float64
	for i := 0; i < max(len(x), len(y)); i++ {
		var a, b float64
		if i < len(x) {
			a = float64(x[i])
		}
		if i < len(y) {
			b = float64(y[i])
		}
		s += (a - b) * (a - b)
	}
	return math.Sqrt(s)
}

func demoNorm() {
	v1 := []int{0, 0}
	v2 := []float64{0.0, 1.0, 2.0}
	fmt.Printf("  l2Norm(%v, %v) = %.6f\n", v1, v2, l2Norm(v1, v2))
	fmt.Printf("  l2Norm([3], [0 4]) = %g\n", l2Norm([]int{3}, []uint8{0, 4}))
}
