package main

import (
	"fmt"
	"strings"
)

// ── Increment ────────────────────────────────────────────────────────────────
// ++ and -- are statements, and = does not yield a value. Chained
// assignment and pre/post increment become separate statements, which also
// removes the order-of-evaluation traps.

func demoIncrement() {
	i, j := 2, 3
	j = 1
	i = j
	fmt.Println(" ", i, j) // 1 1

	i, j = 0, 0
	i++
	j = i
	fmt.Println(" ", i, j) // 1 1
	j = i
	i++
	fmt.Println(" ", i, j) // 2 1

	v := []int{3, 2, 1, 0, -1, -2, -3}
	fmt.Println("  leading non-negatives:", leadingNonNegative(v))

	w := []int{0, 1, 2, 3, 4, 5}
	countdown(w)
	fmt.Println("  countdown:", w)
}

// leadingNonNegative returns the prefix of v before the first negative.
func leadingNonNegative(v []int) []int {
	for i, x := range v {
		if x < 0 {
			return v[:i]
		}
	}
	return v
}

// countdown stores len(v), len(v)-1, ..., 1 in v.
func countdown(v []int) {
	for i, cnt := 0, len(v); i != len(v); i, cnt = i+1, cnt-1 {
		v[i] = cnt
	}
}

// ── Conditions ───────────────────────────────────────────────────────────────

func demoConditions() {
	text := "Hello World!"
	fmt.Println(" ", strings.Join(strings.Split(text, ""), " "))

	// A string is never nil; test for emptiness instead.
	cp := "Hello World!"
	fmt.Println("  non-empty:", cp != "")

	vs := []string{"Hello", "World"}
	it := 0
	it++
	fmt.Println(" ", vs[it])
	fmt.Println("  empty?", vs[it] == "")

	fmt.Println(" ", letterGrade(80), letterGrade(42))
}

// letterGrade replaces `grade < 60 ? "Fail" : "Pass"`.
func letterGrade(grade int) string {
	if grade < 60 {
		return "Fail"
	}
	return "Pass"
}
