package quote

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Basket holds the items of one customer. The zero value is an empty basket.
type Basket struct {
	items []Item
}

// AddItem stores a copy of sale, so later changes to sale do not alter the
// basket.
func (b *Basket) AddItem(sale Item) {
	b.items = append(b.items, sale.Clone())
}

// Len reports how many copies the basket holds.
func (b *Basket) Len() int { return len(b.items) }

// TotalReceipt prints one line per ISBN, in ascending ISBN order, followed
// by the grand total, and returns that total. Copies of the same ISBN are
// priced together by the first item added for it, so bulk discounts apply
// to the combined count.
func (b *Basket) TotalReceipt(w io.Writer) float64 {
	sorted := slices.Clone(b.items)
	slices.SortStableFunc(sorted, func(x, y Item) int { return cmp.Compare(x.ISBN(), y.ISBN()) })

	var sum float64
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].ISBN() == sorted[i].ISBN() {
			j++
		}
		sum += PrintTotal(w, sorted[i], j-i)
		i = j
	}
	fmt.Fprintf(w, "Total Sales: %g\n", sum)
	return sum
}
