// Package wordxform rewrites text through a dictionary of word rules and
// counts word frequencies.
//
// A rule file has one rule per line: the key, one separator, and the
// replacement, which runs to the end of the line and may contain spaces.
//
//	brb be right back
//	k okay?
package wordxform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// ErrNoRule is the sentinel behind every *RuleError.
var ErrNoRule = errors.New("no rule")

// RuleError reports a key that has no replacement text.
type RuleError struct {
	Line int
	Key  string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("line %d: no rule for %s", e.Line, e.Key)
}

func (e *RuleError) Unwrap() error { return ErrNoRule }

// BuildMap reads rules from r. Blank lines are skipped and a later rule for
// the same key replaces an earlier one.
func BuildMap(r io.Reader) (map[string]string, error) {
	rules := make(map[string]string)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}
		i := strings.IndexFunc(line, unicode.IsSpace)
		if i < 0 || i+1 >= len(line) {
			key := line
			if i >= 0 {
				key = line[:i]
			}
			return nil, &RuleError{Line: n, Key: key}
		}
		rules[line[:i]] = line[i+1:]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return rules, nil
}

// Transform returns the replacement for word, or word itself when no rule
// matches.
func Transform(word string, rules map[string]string) string {
	if r, ok := rules[word]; ok {
		return r
	}
	return word
}

// WordTransform copies in to out line by line, replacing every word that
// has a rule. Words are re-joined with single spaces.
func WordTransform(rules map[string]string, in io.Reader, out io.Writer) error {
	bw := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		words := strings.Fields(sc.Text())
		for i, w := range words {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(Transform(w, rules))
		}
		bw.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return bw.Flush()
}

// Articles is the exclusion set used by the word counting demos.
var Articles = map[string]bool{
	"The": true, "But": true, "And": true, "Or": true, "An": true, "A": true,
	"the": true, "but": true, "and": true, "or": true, "an": true, "a": true,
}

// CountWords counts whitespace-separated words in r, skipping any word in
// exclude. A nil exclude counts everything.
func CountWords(r io.Reader, exclude map[string]bool) (map[string]int, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if w := sc.Text(); !exclude[w] {
			counts[w]++
		}
	}
	return counts, sc.Err()
}

// WordCount is one entry of SortedCounts.
type WordCount struct {
	Word  string
	Count int
}

// SortedCounts returns counts ordered by word.
func SortedCounts(counts map[string]int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for _, w := range slices.Sorted(maps.Keys(counts)) {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	return out
}
