package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcodamonte/primer/internal/sales"
)

const storesYAML = `stores:
  - - {isbn: 0-201-78345-X, units: 3, price: 20}
    - {isbn: 0-201-70353-X, units: 4, price: 24.99}
    - {isbn: 0-201-78345-X, units: 2, price: 25}
  - - {isbn: 0-399-82477-1, units: 2, price: 45.39}
  - - {isbn: 0-201-78345-X, units: 1, price: 30}
`

func demoBookstore() {
	stores, err := sales.LoadStores(strings.NewReader(storesYAML))
	if err != nil {
		fmt.Println("  load:", err)
		return
	}
	for _, m := range sales.FindBook(stores, "0-201-78345-X") {
		fmt.Printf("  store %d holds %d record(s)\n", m.Store, len(m.Sales))
	}

	fmt.Println("  report:")
	_ = sales.ReportResults(strings.NewReader("0-201-78345-X 0-399-82477-1 9-999-99999-9"), indent{os.Stdout}, stores)

	// Tiendas generadas: la misma semilla da siempre los mismos datos.
	fake := sales.FakeStores(17, 2, 4)
	isbn := fake[0][0].ISBN()
	fmt.Println("  generated stores, looking up", isbn)
	_ = sales.ReportResults(strings.NewReader(isbn), indent{os.Stdout}, fake)
}

// indent prefixes every write with two spaces. Callers write whole lines.
type indent struct{ w io.Writer }

func (i indent) Write(p []byte) (int, error) {
	if _, err := io.WriteString(i.w, "  "); err != nil {
		return 0, err
	}
	return i.w.Write(p)
}
