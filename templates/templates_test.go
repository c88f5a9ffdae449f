package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/primer/internal/sales"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, compare(1, 0))
	assert.Equal(t, -1, compare("hi", "mom"))
	assert.Equal(t, 0, compare(2.5, 2.5))
	assert.Equal(t, -1, compareFunc(1, 0, func(a, b int) bool { return a > b }))
}

func TestFlexibleCompare(t *testing.T) {
	type meters int
	type feet int
	toM := func(m meters) float64 { return float64(m) }
	ftToM := func(f feet) float64 { return float64(f) * 0.3048 }

	assert.Equal(t, 1, flexibleCompare(meters(3), feet(9), toM, ftToM))
	assert.Equal(t, -1, flexibleCompare(meters(3), feet(10), toM, ftToM))
}

func TestSum(t *testing.T) {
	assert.Equal(t, "helloworld", sum("hello", "world"))
	assert.Equal(t, 5, sum(2, 3))

	v, ok := firstPlusZero([]float64{1.5, 2})
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	_, ok = firstPlusZero[int](nil)
	assert.False(t, ok)
}

func TestSquares(t *testing.T) {
	sq := squares(5)
	defer sq.Release()
	assert.Equal(t, []int{0, 1, 4, 9, 16}, sq.Values())
}

func TestFooCount(t *testing.T) {
	type marker struct{}
	before := fooCountOf[marker]()
	newFoo(marker{})
	newFoo(marker{})
	assert.Equal(t, before+2, fooCountOf[marker]())
	assert.Equal(t, "bar specialised for int", newFoo(0).bar())
	assert.Equal(t, "generic bar for string", newFoo("").bar())
}

func TestOwned_ClosesOnce(t *testing.T) {
	var buf bytes.Buffer
	o := owned[int]{p: new(int), deleter: debugDelete[int](&buf)}
	o.Close()
	o.Close()
	assert.Equal(t, "  deleting int\n", buf.String())
}

func TestPrintAll(t *testing.T) {
	var buf bytes.Buffer
	printAll(&buf, 0, "Hello World!", 42)
	assert.Equal(t, "0, Hello World!, 42", buf.String())

	buf.Reset()
	printAll(&buf)
	assert.Empty(t, buf.String())
	assert.Equal(t, 4, countArgs(0, "s", 42, 3.14))
}

func TestDebugRep(t *testing.T) {
	s := "hi"
	assert.Equal(t, `"hi"`, debugRep(s))
	assert.True(t, strings.HasPrefix(debugRep(&s), "pointer: 0x"))
	assert.True(t, strings.HasSuffix(debugRep(&s), ` "hi"`))
	assert.Equal(t, "null pointer", debugRep((*string)(nil)))
	assert.Equal(t, "42", debugRep(42))
	assert.Equal(t, "null pointer", debugRepPtr[int](nil))

	var buf bytes.Buffer
	errorMsg(&buf, "fcn", 7)
	assert.Equal(t, `"fcn", 7`, buf.String())
}

func TestFlip(t *testing.T) {
	i, j := 0, 0
	assert.Equal(t, "0 1", flip1(incrSecond, i, j))
	assert.Equal(t, 0, i)

	assert.Equal(t, "0 1", flip2(incrSecond, &i, j))
	assert.Equal(t, 1, i)

	assert.Equal(t, "ababab", flip(strings.Repeat)(3, "ab"))
}

func TestSalesMultiset(t *testing.T) {
	set := newSalesMultiset()
	a := sales.New("123-234345-456", 5, 2.99)
	set.insert(a)
	set.insert(sales.New("321-432543-654", 2, 8.99))
	set.insert(a)

	assert.Equal(t, 2, set.count(a))
	assert.Zero(t, set.count(sales.New("123-234345-456", 4, 2.99)))

	vals := set.values()
	require.Len(t, vals, 3)
	assert.Equal(t, "123-234345-456", vals[0].ISBN())
	assert.Equal(t, "321-432543-654", vals[2].ISBN())
}
