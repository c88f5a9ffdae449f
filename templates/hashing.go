package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/marcodamonte/primer/internal/sales"
	"github.com/marcodamonte/primer/internal/strvec"
)

// salesMultiset groups records by their hash; records with equal fields
// land in the same bucket and may repeat.
type salesMultiset struct {
	buckets map[uint64][]sales.Data
}

func newSalesMultiset() *salesMultiset {
	return &salesMultiset{buckets: make(map[uint64][]sales.Data)}
}

func (m *salesMultiset) insert(d sales.Data) {
	h := d.Hash()
	m.buckets[h] = append(m.buckets[h], d)
}

// count reports how many records equal to d were inserted.
func (m *salesMultiset) count(d sales.Data) int {
	n := 0
	for _, e := range m.buckets[d.Hash()] {
		if sales.Equal(e, d) {
			n++
		}
	}
	return n
}

// values returns every record ordered by ISBN.
func (m *salesMultiset) values() []sales.Data {
	var out []sales.Data
	for _, h := range slices.Sorted(maps.Keys(m.buckets)) {
		out = append(out, m.buckets[h]...)
	}
	slices.SortStableFunc(out, sales.CompareISBN)
	return out
}

func demoHashing() {
	sv := strvec.Of("Hello", "World", "!")
	sv.EmplaceBack("!", "!", "!")
	fmt.Println("  StrVec:", sv)

	set := newSalesMultiset()
	set.insert(sales.New("123-234345-456", 5, 2.99))
	set.insert(sales.New("321-432543-654", 2, 8.99))
	set.insert(sales.New("456-567678-987", 6, 1.99))
	set.insert(sales.New("123-234345-456", 5, 2.99))
	for _, d := range set.values() {
		fmt.Printf("  %016x %s\n", d.Hash(), d)
	}
	fmt.Println("  count(123-234345-456 x5):", set.count(sales.New("123-234345-456", 5, 2.99)))
}
