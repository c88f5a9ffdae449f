package main

import (
	"fmt"
	"slices"
)

// ── Insert / erase ───────────────────────────────────────────────────────────
// slices.Insert and slices.Delete return the updated slice; the old one may
// share storage and must not be used afterwards.

// dupOddDropEven duplicates every odd element and removes every even one,
// editing v while walking it.
func dupOddDropEven(v []int) []int {
	for i := 0; i < len(v); {
		if v[i]%2 != 0 {
			v = slices.Insert(v, i, v[i])
			i += 2
		} else {
			v = slices.Delete(v, i, i+1)
		}
	}
	return v
}

// resize grows v with fill or truncates it to n.
func resize[T any](v []T, n int, fill T) []T {
	if n <= len(v) {
		return v[:n:n]
	}
	return append(v, slices.Repeat([]T{fill}, n-len(v))...)
}

func demoInsertErase() {
	var svec []string
	svec = slices.Insert(svec, 0, "Hello!")
	svec = append(svec, slices.Repeat([]string{"Anna"}, 10)...)
	fmt.Println("  svec len:", len(svec))

	v := []string{"quasi", "simba", "frollo", "scar"}
	slist := []string{"Hello!"}
	slist = slices.Insert(slist, 0, v[len(v)-2:]...)
	slist = append(slist, "these", "words", "will", "go", "at", "the", "end")
	slist = slices.Insert(slist, 0, slices.Clone(slist)...)
	fmt.Println(" ", slist)

	// A copy of the last element vs a pointer to it.
	nums := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	e1 := nums[len(nums)-1]
	e1 = -1
	fmt.Println(" ", nums, "(e1 =", e1, ")")
	e2 := &nums[len(nums)-1]
	*e2 = -1
	fmt.Println(" ", nums)

	fmt.Println(" ", dupOddDropEven([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))

	ilist := slices.Repeat([]int{42}, 10)
	fmt.Println(" ", ilist)
	ilist = resize(ilist, 15, 0)
	fmt.Println(" ", ilist)
	ilist = resize(ilist, 25, -1)
	fmt.Println(" ", ilist)
	ilist = resize(ilist, 5, 0)
	fmt.Println(" ", ilist)
}
