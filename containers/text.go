package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfRange reports a position past the end of a string.
var ErrOutOfRange = errors.New("position out of range")

// substr returns up to n bytes of s starting at pos; n < 0 means "to the
// end". A pos past the end is an error, a count past the end is clamped.
func substr(s string, pos, n int) (string, error) {
	if pos < 0 || pos > len(s) {
		return "", fmt.Errorf("substr(%d): %w", pos, ErrOutOfRange)
	}
	end := len(s)
	if n >= 0 && pos+n < end {
		end = pos + n
	}
	return s[pos:end], nil
}

// replaceAt replaces n bytes at pos with with.
func replaceAt(s string, pos, n int, with string) string {
	return s[:pos] + with + s[pos+n:]
}

// findFirstOf returns the index of the first byte of s that is in set, or -1.
func findFirstOf(s, set string) int { return strings.IndexAny(s, set) }

// findFirstNotOf returns the index of the first byte of s not in set, or -1.
func findFirstNotOf(s, set string) int {
	return strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(set, r) })
}

func demoStrings() {
	s1 := "Hello World!!!"
	s4, _ := substr(s1, 6, 5)
	s6, _ := substr(s1, 6, -1)
	s7, _ := substr(s1, 6, 20)
	_, err := substr(s1, 16, -1)
	fmt.Printf("  %q %q %q err=%v\n", s4, s6, s7, err)

	cp := "Stately, plump Buck"
	s := cp[:7]
	s += cp[7:]
	fmt.Println(" ", s)

	s, s2 := "Go Primer", "Go Primer"
	s += " 4th Ed."
	s2 += " 4th Ed."
	s = replaceAt(s, 10, 3, "5th")
	s2 = replaceAt(s2, 10, 3, "Fifth")
	fmt.Println(" ", s, "|", s2)

	const numbers = "0123456789"
	fmt.Println(" ",
		strings.Index("AnnaBelle", "Anna"),
		strings.Index("annabelle", "Anna"),
		findFirstOf("r2d2", numbers),
		findFirstNotOf("03714p3", numbers))

	i := 42
	str := strconv.Itoa(i)
	d, _ := strconv.ParseFloat(str, 64)
	fmt.Printf("  %q → %v\n", str, d)
}
