package main

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ── Building ─────────────────────────────────────────────────────────────────
// A string is an immutable byte sequence. The zero value is "".

func demoBuild() {
	var s1 string
	s2 := s1
	s3 := "hiya"
	s4 := strings.Repeat("x", 10)
	fmt.Printf("  s1=%q s2=%q s3=%q s4=%q\n", s1, s2, s3, s4)

	// len counts bytes, not characters.
	word := "año"
	fmt.Printf("  len(%q)=%d  runes=%d\n", word, len(word), len([]rune(word)))
}

// ── Iterating ────────────────────────────────────────────────────────────────

func demoIterate() {
	str := "some string"
	fmt.Print("  ")
	for _, c := range str {
		fmt.Printf("%c ", c)
	}
	fmt.Println()

	// range decodes UTF-8; indexing returns raw bytes.
	s := "héllo"
	for i, r := range s {
		fmt.Printf("  byte %d: rune %q\n", i, r)
	}
	fmt.Printf("  s[1] = %#x (first byte of é)\n", s[1])

	hello := "Hello World!!!"
	fmt.Printf("  %d punctuation characters in %q\n", countPunct(hello), hello)
}

// countPunct counts punctuation runes in s.
func countPunct(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsPunct(r) {
			n++
		}
	}
	return n
}

// ── Rewriting ────────────────────────────────────────────────────────────────
// Strings cannot be modified in place. Convert to []rune (or []byte), edit,
// and convert back, or build a new string.

var upper = cases.Upper(language.Und)

func demoRewrite() {
	s := "Hello World!!!"
	fmt.Println(" ", upper.String(s))

	// Language-aware casing handles letters that change length.
	fmt.Println(" ", upper.String("straße"), "/", cases.Upper(language.Turkish).String("istanbul"))

	fmt.Println(" ", upperFirstWord("some string"))

	const keep = "Keep out!"
	fmt.Print("  ")
	for _, c := range keep {
		fmt.Print(string(c))
	}
	fmt.Println()
}

// upperFirstWord upper-cases s up to its first whitespace.
func upperFirstWord(s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs) && !unicode.IsSpace(rs[i]); i++ {
		rs[i] = unicode.ToUpper(rs[i])
	}
	return string(rs)
}
