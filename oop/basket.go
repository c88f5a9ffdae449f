package main

import (
	"io"
	"os"

	"github.com/marcodamonte/primer/internal/quote"
)

// fillBasket adds the sample order and prints the receipt to w.
func fillBasket(w io.Writer) float64 {
	var basket quote.Basket
	list := quote.NewQuote("0-201-82470-1", 50)
	bulk := quote.NewBulkQuote("0-201-54848-8", 50, 3, 0.25)

	for _, it := range []quote.Item{list, list, bulk, list, bulk, bulk, bulk} {
		basket.AddItem(it)
	}
	return basket.TotalReceipt(w)
}

func demoBasket() {
	fillBasket(indent{os.Stdout})
}

// indent prefixes every write with two spaces. Callers write whole lines.
type indent struct{ w io.Writer }

func (i indent) Write(p []byte) (int, error) {
	if _, err := io.WriteString(i.w, "  "); err != nil {
		return 0, err
	}
	return i.w.Write(p)
}
