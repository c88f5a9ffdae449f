package main

import (
	"errors"
	"fmt"
)

// ── Grades ───────────────────────────────────────────────────────────────────

var scores = []string{"F", "D", "C", "B", "A", "A++"}

// ErrBadGrade is returned for a grade outside [0, 100].
var ErrBadGrade = errors.New("grade out of range")

// letterGrade maps a numeric grade to a letter. Each letter covers ten
// points above 60; exactly 100 is "A++".
func letterGrade(grade int) (string, error) {
	if grade < 0 || grade > 100 {
		return "", fmt.Errorf("letterGrade(%d): %w", grade, ErrBadGrade)
	}
	if grade < 60 {
		return scores[0], nil
	}
	return scores[(grade-50)/10], nil
}

// ── switch ───────────────────────────────────────────────────────────────────
// Cases do not fall through; a case can list several values.

func countVowels(s string) (vowels, others int) {
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			vowels++
		default:
			others++
		}
	}
	return vowels, others
}

func demoSwitch() {
	for _, g := range []int{100, 87, 42, 101} {
		letter, err := letterGrade(g)
		if err != nil {
			fmt.Println("  error:", err)
			continue
		}
		fmt.Printf("  %d : %s\n", g, letter)
	}

	v, o := countVowels("statements and flow")
	fmt.Printf("  vowels=%d others=%d\n", v, o)

	// A tagless switch replaces an if/else-if chain.
	n := 7
	switch {
	case n < 0:
		fmt.Println("  negative")
	case n%2 == 0:
		fmt.Println("  even")
	default:
		fmt.Println("  odd")
	}
}
