package sales

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Match is the run of records one store holds for an ISBN.
type Match struct {
	Store int
	Sales []Data
}

// Total accumulates the run, starting from an empty record for isbn.
func (m Match) Total(isbn string) Data {
	sum := Data{BookNo: isbn}
	for _, s := range m.Sales {
		sum.Combine(s)
	}
	return sum
}

// FindBook returns, for every store holding isbn, the store index and its
// records for that book. Each store must be sorted by ISBN.
func FindBook(stores [][]Data, isbn string) []Match {
	var ret []Match
	for i, store := range stores {
		lo, _ := slices.BinarySearchFunc(store, isbn, func(d Data, t string) int {
			return strings.Compare(d.BookNo, t)
		})
		hi := lo
		for hi < len(store) && store[hi].BookNo == isbn {
			hi++
		}
		if lo != hi {
			ret = append(ret, Match{Store: i, Sales: store[lo:hi]})
		}
	}
	return ret
}

// ReportResults reads ISBNs from in and writes, for each, either a not-found
// line or one line per store with that store's accumulated sales.
func ReportResults(in io.Reader, out io.Writer, stores [][]Data) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		isbn := sc.Text()
		trans := FindBook(stores, isbn)
		if len(trans) == 0 {
			fmt.Fprintf(out, "%s not found in any stores\n", isbn)
			continue
		}
		for _, m := range trans {
			fmt.Fprintf(out, "store %d sales: %s\n", m.Store, m.Total(isbn))
		}
	}
	return sc.Err()
}

// SortStores sorts every store by ISBN, keeping the order of equal ISBNs.
func SortStores(stores [][]Data) {
	for _, s := range stores {
		slices.SortStableFunc(s, CompareISBN)
	}
}
