// Package quote models book pricing strategies behind one interface.
//
// Quote charges list price. BulkQuote and LimitedQuote share the
// quantity/discount pair held by DiscQuote and differ only in how they
// apply it. Basket collects copies of any Item and prints a receipt.
package quote

import (
	"fmt"
	"io"
)

// Item is anything that can be priced by ISBN.
type Item interface {
	ISBN() string
	// NetPrice returns the price of n copies after any discount.
	NetPrice(n int) float64
	// Clone returns an independent copy of the concrete value.
	Clone() Item
	Debug() string
}

// ── Quote ────────────────────────────────────────────────────────────────────

// Quote sells every copy at Price.
type Quote struct {
	BookNo string
	Price  float64
}

var _ Item = (*Quote)(nil)

func NewQuote(book string, price float64) *Quote {
	return &Quote{BookNo: book, Price: price}
}

func (q *Quote) ISBN() string { return q.BookNo }

func (q *Quote) NetPrice(n int) float64 { return float64(n) * q.Price }

func (q *Quote) Clone() Item { c := *q; return &c }

func (q *Quote) Debug() string { return fmt.Sprintf("%s %g", q.BookNo, q.Price) }

// ── DiscQuote ────────────────────────────────────────────────────────────────

// DiscQuote holds the data every discount strategy needs. It is not priced
// directly: a strategy type embeds it and supplies NetPrice and Clone.
type DiscQuote struct {
	Quote
	Quantity int
	Discount float64
}

// DiscountPolicy returns the quantity and the discount rate.
func (d *DiscQuote) DiscountPolicy() (int, float64) { return d.Quantity, d.Discount }

func (d *DiscQuote) Debug() string {
	return fmt.Sprintf("%s %g %d %g", d.BookNo, d.Price, d.Quantity, d.Discount)
}

// ── BulkQuote ────────────────────────────────────────────────────────────────

// BulkQuote discounts every copy once at least Quantity are bought.
type BulkQuote struct {
	DiscQuote
}

var _ Item = (*BulkQuote)(nil)

func NewBulkQuote(book string, price float64, qty int, disc float64) *BulkQuote {
	return &BulkQuote{DiscQuote{Quote: Quote{BookNo: book, Price: price}, Quantity: qty, Discount: disc}}
}

func (b *BulkQuote) NetPrice(n int) float64 {
	if n >= b.Quantity {
		return (1 - b.Discount) * float64(n) * b.Price
	}
	return float64(n) * b.Price
}

func (b *BulkQuote) Clone() Item { c := *b; return &c }

// ── LimitedQuote ─────────────────────────────────────────────────────────────

// LimitedQuote discounts at most Quantity copies; the rest sell at Price.
type LimitedQuote struct {
	DiscQuote
}

var _ Item = (*LimitedQuote)(nil)

func NewLimitedQuote(book string, price float64, qty int, disc float64) *LimitedQuote {
	return &LimitedQuote{DiscQuote{Quote: Quote{BookNo: book, Price: price}, Quantity: qty, Discount: disc}}
}

func (l *LimitedQuote) NetPrice(n int) float64 {
	discounted := min(n, l.Quantity)
	return float64(discounted)*(1-l.Discount)*l.Price + float64(n-discounted)*l.Price
}

func (l *LimitedQuote) Clone() Item { c := *l; return &c }

// PrintTotal writes the price of n copies of item to w and returns it.
func PrintTotal(w io.Writer, item Item, n int) float64 {
	ret := item.NetPrice(n)
	fmt.Fprintf(w, "ISBN: %s # sold: %d total due: %g\n", item.ISBN(), n, ret)
	return ret
}
