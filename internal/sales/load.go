package sales

import (
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"
)

// storeFile is the YAML layout read by LoadStores:
//
//	stores:
//	  - - {isbn: 0-201-78345-X, units: 3, price: 20}
//	    - {isbn: 0-201-78345-X, units: 2, price: 25}
//	  - - {isbn: 0-399-82477-1, units: 2, price: 45.39}
type storeFile struct {
	Stores [][]record `yaml:"stores"`
}

type record struct {
	ISBN  string  `yaml:"isbn"`
	Units int     `yaml:"units"`
	Price float64 `yaml:"price"`
}

// LoadStores decodes stores from YAML and sorts each one by ISBN.
func LoadStores(r io.Reader) ([][]Data, error) {
	var f storeFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode stores: %w", err)
	}
	stores := make([][]Data, len(f.Stores))
	for i, s := range f.Stores {
		stores[i] = make([]Data, 0, len(s))
		for j, rec := range s {
			if rec.ISBN == "" {
				return nil, fmt.Errorf("store %d record %d: %w: missing isbn", i, j, ErrBadRecord)
			}
			if rec.Units < 0 {
				return nil, fmt.Errorf("store %d record %d: %w: negative units", i, j, ErrBadRecord)
			}
			stores[i] = append(stores[i], New(rec.ISBN, rec.Units, rec.Price))
		}
	}
	SortStores(stores)
	return stores, nil
}

// FakeStores generates n stores of perStore records each. The same seed
// always yields the same stores. ISBNs are drawn from a small catalogue so
// that books repeat within and across stores.
func FakeStores(seed uint64, n, perStore int) [][]Data {
	f := gofakeit.New(seed)

	catalogue := make([]string, max(1, perStore/2))
	for i := range catalogue {
		catalogue[i] = f.Numerify("0-###-#####-#")
	}

	stores := make([][]Data, n)
	for i := range stores {
		stores[i] = make([]Data, perStore)
		for j := range stores[i] {
			isbn := catalogue[f.Number(0, len(catalogue)-1)]
			stores[i][j] = New(isbn, f.Number(1, 10), f.Price(5, 60))
		}
	}
	SortStores(stores)
	return stores
}
