package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// set is a map with empty values. Iteration order is random, so callers sort
// the keys when order matters.
type set[K cmp.Ordered] map[K]struct{}

func setOf[K cmp.Ordered](keys ...K) set[K] {
	s := make(set[K], len(keys))
	s.insert(keys...)
	return s
}

func (s set[K]) insert(keys ...K) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

func (s set[K]) contains(k K) bool {
	_, ok := s[k]
	return ok
}

func (s set[K]) sorted() []K {
	return slices.Sorted(maps.Keys(s))
}

// multiset counts occurrences instead of discarding duplicates.
type multiset[K cmp.Ordered] map[K]int

func multisetOf[K cmp.Ordered](keys ...K) multiset[K] {
	m := make(multiset[K])
	for _, k := range keys {
		m[k]++
	}
	return m
}

// size is the total number of elements, duplicates included.
func (m multiset[K]) size() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

func demoSets() {
	var ivec []int
	for i := range 10 {
		ivec = append(ivec, i, i)
	}
	iset := setOf(ivec...)
	miset := multisetOf(ivec...)
	fmt.Println("  vector/set/multiset sizes:", len(ivec), len(iset), miset.size())

	// Las claves de un map no se pueden modificar en sitio: solo borrar e insertar.
	fmt.Println("  ordered keys:", setOf(5, 3, 9, 0, 1).sorted())

	set2 := set[int]{}
	fmt.Print("  growing set: ", len(set2))
	set2.insert(2, 4, 6, 8, 2, 4, 6, 8)
	fmt.Print(" ", len(set2))
	set2.insert(1, 3, 5, 7, 1, 3, 5, 7)
	fmt.Println(" ", len(set2))

	exclude := setOf("The", "But", "And", "Or", "An", "A", "the", "but", "and", "or", "an", "a")
	fmt.Println(`  exclude contains "An":`, exclude.contains("An"), ` "Ann":`, exclude.contains("Ann"))
}
