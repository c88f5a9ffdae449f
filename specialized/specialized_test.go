package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTuples(t *testing.T) {
	isbn, cnt, price := splitItem(item{"0-999-78345-X", 3, 20})
	assert.Equal(t, "0-999-78345-X", isbn)
	assert.Equal(t, 3, cnt)
	assert.Equal(t, 20.0, price)

	assert.Equal(t, 3, fieldCount(item{}))
	assert.Equal(t, 0, fieldCount(42))
	assert.Equal(t, 0, fieldCount(nil))
}

func TestBitset(t *testing.T) {
	assert.Equal(t, "1111011101111", newBitset(13, 0xbeef).String())
	assert.Equal(t, "00001011111011101111", newBitset(20, 0xbeef).String())

	b := newBitset(32, 1)
	assert.True(t, b.any())
	assert.False(t, b.none())
	assert.False(t, b.all())
	assert.Equal(t, 1, b.count())
	assert.Equal(t, 32, b.size())

	b.flip()
	assert.Equal(t, 31, b.count())
	assert.False(t, b.test(0))
	b.reset()
	assert.True(t, b.none())
	b.setAll()
	assert.True(t, b.all())
	v, err := b.toUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xffffffff), v)
}

func TestBitset_Wide(t *testing.T) {
	wide := newBitset(128, ^uint64(0))
	assert.Equal(t, 64, wide.count())
	v, err := wide.toUint64()
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), v)

	wide.set(100)
	_, err = wide.toUint64()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestParseBitset(t *testing.T) {
	str := "1111111000000011001101"
	b5, err := parseBitset(8, str, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, "00001100", b5.String())

	b6, err := parseBitset(8, str, len(str)-4, -1)
	require.NoError(t, err)
	assert.Equal(t, "00001101", b6.String())

	b4, err := parseBitset(32, "1100", 0, -1)
	require.NoError(t, err)
	assert.True(t, b4.test(2))
	assert.True(t, b4.test(3))
	assert.Equal(t, 2, b4.count())

	_, err = parseBitset(8, "10x1", 0, -1)
	assert.ErrorIs(t, err, ErrBadDigit)
}

func TestDigitSource(t *testing.T) {
	src := NewDigitSource(7)
	first := src.Digits(100)
	second := src.Digits(100)
	assert.NotEqual(t, first, second, "a shared source keeps advancing")
	for _, d := range first {
		assert.True(t, d >= 0 && d <= 9, d)
	}

	assert.Equal(t, first, NewDigitSource(7).Digits(100))
	assert.Equal(t, freshDigits(20), freshDigits(20))
}

func TestNormalHistogram(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	hist := normalHistogram(r, 4, 1.5, 200, 9)
	total := 0
	for _, n := range hist {
		total += n
	}
	assert.LessOrEqual(t, total, 200)
	assert.Greater(t, hist[4], hist[0], "the mean bucket beats the tail")
}

func TestUniformAndBernoulli(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, f := range uniformFloats(r, 50) {
		assert.True(t, f >= 0 && f < 1)
	}
	assert.False(t, bernoulli(r, 0))
	assert.True(t, bernoulli(r, 1))
}

func TestPadInternal(t *testing.T) {
	assert.Equal(t, "-#########16", padInternal("-16", 12, '#'))
	assert.Equal(t, "#####3.14159", padInternal("3.14159", 12, '#'))
	assert.Equal(t, "toolongvalue!", padInternal("toolongvalue!", 12, '#'))
}

func TestLocalized(t *testing.T) {
	assert.Equal(t, "1,234,567", localized(language.English, 1234567))
	assert.Equal(t, "1.234.567", localized(language.German, 1234567))
}
