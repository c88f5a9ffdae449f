package main

import (
	"fmt"
	"slices"
	"unsafe"
)

// ── Basics ───────────────────────────────────────────────────────────────────
// A slice header is three words. Copying a slice copies the header only;
// slices.Clone copies the elements too. Arrays are values and copy whole.

func demoBasics() {
	v := []int{1, 2, 3}
	fmt.Printf("  sizeof header=%d len=%d empty=%t\n", unsafe.Sizeof(v), len(v), len(v) == 0)

	authors := []string{"Milton", "Shakespeare", "Austen"}
	list2 := slices.Clone(authors)
	list2[0] = "Woolf"
	fmt.Println(" ", authors, list2)

	var ia3 [10]int
	ia3[0] = 42 // the rest stay zero
	digits := [10]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	cp := digits // arrays copy by value
	cp[0] = 100
	fmt.Println(" ", ia3, digits[0], cp[0])

	v6 := slices.Repeat([]int{1}, 3)
	fmt.Println("  three ones:", v6)

	hiya := slices.Repeat([]string{"Hiya!"}, 10)
	fmt.Println("  assign(10, Hiya!):", len(hiya), hiya[9])

	s1, s2 := "Hello", "World"
	s1, s2 = s2, s1
	fmt.Println(" ", s1, s2)

	// Lexicographic comparison, element by element.
	v1 := []int{1, 3, 5, 7, 9, 12}
	fmt.Println(" ",
		slices.Compare(v1, []int{1, 3, 9}) < 0,
		slices.Compare(v1, []int{1, 3, 5, 7}) < 0,
		slices.Equal(v1, []int{1, 3, 5, 7, 9, 12}),
		slices.Equal(v1, []int{1, 3, 9}))
}
