package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// pair is the value type of an ordered map.
type pair[K, V any] struct {
	First  K
	Second V
}

// process returns the last word and its length, or the zero pair for an
// empty slice.
func process(words []string) pair[string, int] {
	if len(words) == 0 {
		return pair[string, int]{}
	}
	last := words[len(words)-1]
	return pair[string, int]{last, len(last)}
}

// orderedPairs returns the entries of m sorted by key.
func orderedPairs[K cmp.Ordered, V any](m map[K]V) []pair[K, V] {
	out := make([]pair[K, V], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, pair[K, V]{k, m[k]})
	}
	return out
}

// multimap keeps every value inserted under a key, in insertion order.
type multimap[K cmp.Ordered, V any] map[K][]V

func (m multimap[K, V]) insert(k K, v V) {
	m[k] = append(m[k], v)
}

// equalRange is every value stored under k; empty when k is absent.
func (m multimap[K, V]) equalRange(k K) []V {
	return m[k]
}

func (m multimap[K, V]) size() int {
	n := 0
	for _, vs := range m {
		n += len(vs)
	}
	return n
}

func demoMaps() {
	authors := map[string]string{"Joyce": "James", "Austen": "Jane", "Dickens": "Charles"}
	first := orderedPairs(authors)[0]
	fmt.Println("  first by key:", first.First, first.Second)

	fmt.Printf("  process: %+v\n", process([]string{"a", "pair", "of", "words"}))
	fmt.Printf("  process(nil): %+v\n", process(nil))
}

func demoMultimap() {
	authors := multimap[string, string]{}
	authors.insert("Joyce, James", "Ulysses")
	authors.insert("Austen, Jane", "Pride and Prejudice")
	authors.insert("Dickens, Charles", "Oliver Twist")
	authors.insert("Barth, John", "Sot-Weed Factor")
	authors.insert("Barth, John", "Lost in the Funhouse")

	search := "Barth, John"
	fmt.Printf("  %d books, %d by %s:\n", authors.size(), len(authors.equalRange(search)), search)
	for _, book := range authors.equalRange(search) {
		fmt.Println("   ", book)
	}
	fmt.Println("  books by Nobody:", len(authors.equalRange("Nobody")))
}
