package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/marcodamonte/primer/internal/sales"
)

// intVec shows the two flavours of sorted(): one that may reorder the
// receiver and one that must leave it alone.
type intVec []int

// sortInPlace reorders v itself.
func (v intVec) sortInPlace() intVec {
	slices.Sort(v)
	return v
}

// sorted returns a sorted copy and leaves v as it was.
func (v intVec) sorted() intVec {
	return slices.Sorted(slices.Values(v))
}

func demoTemporaries() {
	v := intVec{4, 3, 2, 1, 0}
	fmt.Println("  sorted copy:", v.sorted(), " v:", v)
	fmt.Println("  in place:   ", v.sortInPlace(), " v:", v)

	s1, s2 := "a value", "another"
	fmt.Println(`  (s1+s2) index of 'a':`, strings.IndexByte(s1+s2, 'a'))

	// Un struct se copia campo a campo al asignar o al pasarlo por valor.
	item := sales.New("0-201-78345-X", 3, 20)
	cp := item
	cp.Combine(item)
	vec := []sales.Data{item}
	fmt.Println("  item:", item.String())
	fmt.Println("  copy after Combine:", cp.String())
	fmt.Println("  element in slice:", vec[0].String())
}
