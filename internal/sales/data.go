// Package sales holds the bookstore sales record and the lookups built on
// it: combining records, searching several stores for an ISBN and loading
// store data from YAML or from a seeded generator.
package sales

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ErrBadRecord is returned by Read when the input is not "isbn units price".
var ErrBadRecord = errors.New("bad sales record")

// Data is the running total of sales for one ISBN.
type Data struct {
	BookNo    string
	UnitsSold int
	Revenue   float64
}

// New records n copies of isbn sold at price each.
func New(isbn string, n int, price float64) Data {
	return Data{BookNo: isbn, UnitsSold: n, Revenue: float64(n) * price}
}

func (d Data) ISBN() string { return d.BookNo }

// AvgPrice is Revenue / UnitsSold, or 0 when nothing was sold.
func (d Data) AvgPrice() float64 {
	if d.UnitsSold == 0 {
		return 0
	}
	return d.Revenue / float64(d.UnitsSold)
}

// Combine adds rhs into d. The ISBNs are not checked.
func (d *Data) Combine(rhs Data) *Data {
	d.UnitsSold += rhs.UnitsSold
	d.Revenue += rhs.Revenue
	return d
}

// Add returns lhs + rhs, leaving both untouched.
func Add(lhs, rhs Data) Data {
	sum := lhs
	sum.Combine(rhs)
	return sum
}

func Equal(lhs, rhs Data) bool {
	return lhs.BookNo == rhs.BookNo && lhs.UnitsSold == rhs.UnitsSold && lhs.Revenue == rhs.Revenue
}

// String formats the record as "isbn units revenue avg".
func (d Data) String() string {
	return fmt.Sprintf("%s %d %g %g", d.BookNo, d.UnitsSold, d.Revenue, d.AvgPrice())
}

// Read parses one "isbn units price" record from r into d. On any failure d
// is reset to the zero record and the error is returned. Pass a buffered
// reader when reading several records from the same stream.
func (d *Data) Read(r io.Reader) error {
	var (
		isbn  string
		units int
		price float64
	)
	if _, err := fmt.Fscan(r, &isbn, &units, &price); err != nil {
		*d = Data{}
		if errors.Is(err, io.EOF) && isbn == "" {
			return io.EOF
		}
		return fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	if units < 0 {
		*d = Data{}
		return fmt.Errorf("%w: negative units %d", ErrBadRecord, units)
	}
	*d = New(isbn, units, price)
	return nil
}

// Hash mixes the three fields so that equal records hash equally.
func (d Data) Hash() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(d.BookNo)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(d.UnitsSold))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(d.Revenue))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// CompareISBN orders records by ISBN only.
func CompareISBN(lhs, rhs Data) int { return cmp.Compare(lhs.BookNo, rhs.BookNo) }
