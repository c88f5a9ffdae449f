package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFact(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {5, 120}, {6, 720}, {-3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fact(tt.in), "fact(%d)", tt.in)
	}
}

// TestMyFact agrees with fact for n >= 0 and returns 0 for negatives.
func TestMyFact(t *testing.T) {
	for n := 0; n <= 10; n++ {
		assert.Equal(t, fact(n), myFact(n))
	}
	assert.Zero(t, myFact(-1))
}

func TestCallCounter(t *testing.T) {
	var c CallCounter
	for want := 1; want <= 10; want++ {
		assert.Equal(t, want, c.Next())
	}

	var other CallCounter
	assert.Equal(t, 1, other.Next(), "counters are independent")

	next := counter()
	next()
	assert.Equal(t, 2, next())
}

func TestResetAndSwap(t *testing.T) {
	i := 9
	resetInt(&i)
	assert.Zero(t, i)

	a, b := 1, 2
	swapInt(&a, &b)
	assert.Equal(t, [2]int{2, 1}, [2]int{a, b})
}

func TestVariadics(t *testing.T) {
	assert.Equal(t, "Error_1 Error_2", errorMsg("Error_1", "Error_2"))
	assert.Equal(t, 15, listSum(1, 2, 3, 4, 5))
	assert.Zero(t, listSum())
	assert.Equal(t, "0 1 2 ", printInts(0, 1, 2))
}

func TestGetVal(t *testing.T) {
	s := []byte("Hello World?")
	*getVal(s, 11) = '!'
	assert.Equal(t, "Hello World!", string(s))
}

func TestShorterString(t *testing.T) {
	s3, s4 := "Alice", "Bob"
	*shorterString(&s3, &s4) = "Calvin"
	assert.Equal(t, "Alice", s3)
	assert.Equal(t, "Calvin", s4)

	x, y := "ab", "cd"
	assert.Same(t, &x, shorterString(&x, &y), "ties prefer the first")
}

func TestDeferResults(t *testing.T) {
	assert.Equal(t, 5, anonymousResult())
	assert.Equal(t, 10, namedResult())

	_, err := checkedFact(-2)
	require.ErrorIs(t, err, errNegative)
	assert.EqualError(t, err, "checkedFact(-2): negative input")
}
