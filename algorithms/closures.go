package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func makePlural(n int, word, ending string) string {
	if n > 1 {
		return word + ending
	}
	return word
}

// biggies prints the distinct words of at least sz letters, shortest first,
// separated by sep. words is reordered in place. It returns the words it
// printed.
func biggies(w io.Writer, words []string, sz int, sep string) []string {
	words = elimDups(words)
	slices.SortStableFunc(words, byLength)
	wc := slices.IndexFunc(words, func(s string) bool { return len(s) >= sz })
	if wc < 0 {
		wc = len(words)
	}
	big := words[wc:]
	fmt.Fprintf(w, "%d %s of length %d or longer\n", len(big), makePlural(len(big), "word", "s"), sz)
	for _, s := range big {
		fmt.Fprint(w, s, sep)
	}
	fmt.Fprintln(w)
	return big
}

// ── Capture ──────────────────────────────────────────────────────────────────
// Go closures always capture variables, never values. Copying into a fresh
// local before building the closure gives the by-value behaviour.

func captureByValue() int {
	v1 := 42
	captured := v1
	f := func() int { return captured }
	v1 = 0
	return f() // 42
}

func captureByReference() int {
	v1 := 42
	f := func() int { return v1 }
	v1 = 0
	return f() // 0
}

func captureCopyAndMutate() int {
	v1 := 42
	captured := v1
	f := func() int { captured++; return captured }
	v1 = 0
	return f() // 43
}

func captureReferenceAndMutate() int {
	v1 := 42
	f := func() int { v1++; return v1 }
	v1 = 0
	return f() // 1
}

func checkSize(s string, sz int) bool { return len(s) >= sz }

// bindSecond fixes the second argument of f.
func bindSecond[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R { return f(a, b) }
}

// transformInPlace replaces each element with f applied to it.
func transformInPlace[T any](s []T, f func(T) T) {
	for i, v := range s {
		s[i] = f(v)
	}
}

func demoClosures() {
	f := func() int { return 42 }
	fmt.Println("  f():", f())

	var sb strings.Builder
	biggies(&sb, slices.Clone(sampleWords), 5, " ")
	fmt.Print("  ", sb.String())
	biggies(os.Stdout, slices.Clone(sampleWords), 4, ",")

	fmt.Println("  by value:", captureByValue(), " by reference:", captureByReference())
	fmt.Println("  copy+mutate:", captureCopyAndMutate(), " reference+mutate:", captureReferenceAndMutate())

	check6 := bindSecond(checkSize, 6)
	fmt.Println(`  check6("hello"):`, check6("hello"))
	fmt.Println("  words with ≥6 letters:", slices.DeleteFunc(slices.Clone(sampleWords), func(s string) bool { return !check6(s) }))

	ivec := []int{0, -1, 2, -3, 4, -5, 6, -7, 8, -9}
	transformInPlace(ivec, func(i int) int {
		if i < 0 {
			return -i
		}
		return i
	})
	fmt.Println("  abs:", ivec)
}
