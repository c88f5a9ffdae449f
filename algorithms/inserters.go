package main

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// frontInsert inserts each element of src at the front of dst in turn, so the
// inserted block comes out reversed.
func frontInsert[T any](dst, src []T) []T {
	for _, v := range src {
		dst = slices.Insert(dst, 0, v)
	}
	return dst
}

// insertAt inserts src before position pos keeping its order.
func insertAt[T any](dst []T, pos int, src []T) []T {
	return slices.Insert(dst, pos, src...)
}

// writeJoined writes every element followed by sep, like an output iterator
// bound to w.
func writeJoined[T any](w io.Writer, s []T, sep string) {
	for _, v := range s {
		fmt.Fprint(w, v, sep)
	}
}

func demoInserters() {
	lst := []int{1, 2, 3, 4}
	fmt.Println("  front insert:", frontInsert(nil, lst))
	fmt.Println("  insert at 0: ", insertAt(nil, 0, lst))
	fmt.Println("  insert at 1: ", insertAt([]int{0, 9}, 1, lst))

	vec := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	fmt.Print("  ")
	writeJoined(os.Stdout, vec, " ")
	fmt.Println()
}
