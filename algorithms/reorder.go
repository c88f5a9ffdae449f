package main

import (
	"cmp"
	"fmt"
	"slices"
)

var sampleWords = []string{
	"the", "quick", "red", "fox", "jumps",
	"over", "the", "slow", "red", "turtle",
}

// elimDups sorts words and removes adjacent duplicates in place.
func elimDups(words []string) []string {
	slices.Sort(words)
	return slices.Compact(words)
}

func byLength(a, b string) int { return cmp.Compare(len(a), len(b)) }

func longerThan5(s string) bool { return len(s) >= 5 }

// partition moves every element satisfying pred before the ones that do not
// and returns the index of the first element of the second group. The
// relative order within each group is not preserved.
func partition[T any](s []T, pred func(T) bool) int {
	first := slices.IndexFunc(s, func(v T) bool { return !pred(v) })
	if first < 0 {
		return len(s)
	}
	for i := first + 1; i < len(s); i++ {
		if pred(s[i]) {
			s[first], s[i] = s[i], s[first]
			first++
		}
	}
	return first
}

func demoReorder() {
	words1 := elimDups(slices.Clone(sampleWords))
	fmt.Println("  elimDups:   ", words1)
	// SortFunc no es estable: las palabras de igual longitud pueden salir en
	// cualquier orden.
	slices.SortFunc(words1, byLength)
	fmt.Println("  SortFunc:   ", words1)

	words2 := elimDups(slices.Clone(sampleWords))
	slices.SortStableFunc(words2, byLength)
	fmt.Println("  SortStable: ", words2)

	words3 := slices.Clone(sampleWords)
	pos := partition(words3, longerThan5)
	fmt.Println("  partition:  ", words3)
	fmt.Println("  first short:", words3[pos])
}
