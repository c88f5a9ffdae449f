package main

import (
	"fmt"
	"slices"

	"github.com/marcodamonte/primer/internal/blob"
)

// squares returns a Blob of n elements where element i is i*i, written
// through Set.
func squares(n int) *blob.Blob[int] {
	b := blob.FromSeq(func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	})
	for i := range b.Len() {
		_ = b.Set(i, i*i)
	}
	return b
}

func demoBlob() {
	ia := blob.New[int]()
	ia2 := blob.New(0, 1, 2, 3, 4)
	names := blob.New[string]()
	prices := blob.New[float64]()
	fmt.Println("  sizes:", ia.Len(), ia2.Len(), names.Len(), prices.Len())

	articles := blob.New("a", "an", "the")
	fmt.Println("  articles:", articles.Values())

	sq := squares(10)
	fmt.Println("  squares:", sq.Values())

	// Construcción desde cualquier secuencia, con o sin conversión.
	ia3 := [...]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	vi := []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	w := []string{"now", "is", "the", "time"}
	a1 := blob.FromSeq(slices.Values(ia3[:]))
	a2 := blob.FromSeq(slices.Values(vi))
	a3 := blob.FromSeq(slices.Values(w))
	fmt.Printf("  a1=%v a2=%v (%T) a3=%v\n", a1.Values(), a2.Values(), a2.Values(), a3.Values())
	fmt.Println("  Equal(a1, squares(10)):", blob.Equal(a1, sq))

	p := blob.NewPtr(a3, 0)
	for {
		v, err := p.Deref()
		if err != nil {
			break
		}
		fmt.Print("  ", v)
		_ = p.Incr()
	}
	fmt.Println()

	for _, b := range []interface{ Release() }{ia, ia2, names, prices, articles, sq, a1, a2, a3} {
		b.Release()
	}
}
