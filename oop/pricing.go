package main

import (
	"fmt"
	"os"

	"github.com/marcodamonte/primer/internal/quote"
)

// discounted is every Item that exposes its discount policy. It composes
// quote.Item with one more method.
type discounted interface {
	quote.Item
	DiscountPolicy() (int, float64)
}

// policyOf reports the discount policy of item, if it has one.
func policyOf(item quote.Item) (qty int, disc float64, ok bool) {
	d, ok := item.(discounted)
	if !ok {
		return 0, 0, false
	}
	qty, disc = d.DiscountPolicy()
	return qty, disc, true
}

// describe names the concrete pricing strategy behind item.
func describe(item quote.Item) string {
	switch v := item.(type) {
	case *quote.BulkQuote:
		return fmt.Sprintf("bulk: %d+ copies at %g%% off", v.Quantity, v.Discount*100)
	case *quote.LimitedQuote:
		return fmt.Sprintf("limited: first %d copies at %g%% off", v.Quantity, v.Discount*100)
	case *quote.Quote:
		return "list price"
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("unknown %T", v)
	}
}

func demoPricing() {
	base := quote.NewQuote("0-201-82470-1", 50)
	fmt.Println("  debug:", base.Debug())
	fmt.Print("  ")
	quote.PrintTotal(os.Stdout, base, 1)

	bulk := quote.NewBulkQuote("0-201-82470-1", 50, 5, 0.19)
	fmt.Println("  debug:", bulk.Debug())
	fmt.Print("  ")
	quote.PrintTotal(os.Stdout, bulk, 10)

	// El puntero a la parte embebida solo ve los métodos de Quote.
	var item quote.Item = &bulk.Quote
	fmt.Println("  embedded Quote prices 10 at:", item.NetPrice(10))
}

func demoAssertions() {
	items := []quote.Item{
		quote.NewQuote("0-201-82470-1", 50),
		quote.NewBulkQuote("0-201-54848-8", 50, 10, 0.25),
		quote.NewLimitedQuote("0-201-54848-8", 50, 10, 0.25),
		nil,
	}
	for _, it := range items {
		if qty, disc, ok := policyOf(it); ok {
			fmt.Printf("  policy %d/%g → ", qty, disc)
		} else {
			fmt.Print("  no policy → ")
		}
		fmt.Println(describe(it))
	}
}

func demoContainers() {
	// Guardar el struct embebido por valor pierde la estrategia: solo queda
	// el precio de lista.
	bulk := quote.NewBulkQuote("0-201-54848-8", 50, 10, 0.25)
	values := []quote.Quote{*quote.NewQuote("0-201-82470-1", 50), bulk.Quote}
	fmt.Println("  []Quote, last NetPrice(15):", values[len(values)-1].NetPrice(15))

	items := []quote.Item{quote.NewQuote("0-201-82470-1", 50), bulk}
	fmt.Println("  []Item,  last NetPrice(15):", items[len(items)-1].NetPrice(15))
}
