package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcodamonte/primer/internal/sales"
	"github.com/marcodamonte/primer/internal/strvec"
)

const transactions = `0-201-78345-X 3 20.00
0-201-78345-X 2 25.00
0-201-88954-4 5 12.00
0-201-88954-4 7 12.00
0-201-88954-4 2 12.00
0-399-82477-1 2 45.39
`

// sumRecords reads records from r and writes one total per run of
// consecutive records with the same ISBN.
func sumRecords(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	var total sales.Data
	if err := total.Read(br); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for {
		var trans sales.Data
		err := trans.Read(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if total.ISBN() == trans.ISBN() {
			total.Combine(trans)
			continue
		}
		fmt.Fprintln(w, total)
		total = trans
	}
	fmt.Fprintln(w, total)
	return nil
}

func demoSales() {
	if err := sumRecords(strings.NewReader(transactions), indentWriter{os.Stdout}); err != nil {
		fmt.Println("  error:", err)
	}

	a := sales.New("0-201-78345-X", 3, 20)
	b := sales.New("0-201-78345-X", 2, 25)
	fmt.Println("  a + b:", sales.Add(a, b))
	fmt.Println("  a == a:", sales.Equal(a, a), " a != b:", !sales.Equal(a, b))

	var bad sales.Data
	err := bad.Read(strings.NewReader("0-201-78345-X three 20"))
	fmt.Printf("  bad input → %v, record reset: %q\n", err, bad.ISBN())
}

func demoIndex() {
	v := strvec.Of("Alice", "Bob", "Calvin")
	v.PushBack("David")
	s := "Eve"
	v.PushBack(s)
	fmt.Println("  v[2], size, capacity:", *v.Index(2), v.Len(), v.Cap())
	*v.Index(0) = "Alicia"
	fmt.Println("  after v[0] = Alicia:", v)
}

// indentWriter prefixes every write with two spaces. Callers write whole
// lines.
type indentWriter struct{ w io.Writer }

func (i indentWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(i.w, "  "); err != nil {
		return 0, err
	}
	return i.w.Write(p)
}
