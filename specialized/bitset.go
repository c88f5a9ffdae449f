package main

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrOverflow is returned by toUint64 when a bit above 63 is set.
var ErrOverflow = errors.New("bitset: value does not fit in 64 bits")

// ErrBadDigit is returned when a bit string holds something other than 0/1.
var ErrBadDigit = errors.New("bitset: invalid digit")

// bitset is a fixed-size sequence of n bits. Bit 0 is the least significant
// and prints last.
type bitset struct {
	n     int
	words []uint64
}

// newBitset returns n bits initialised from the low bits of val; bits of val
// beyond n are dropped.
func newBitset(n int, val uint64) *bitset {
	b := &bitset{n: n, words: make([]uint64, (n+63)/64)}
	if len(b.words) > 0 {
		b.words[0] = val
		b.trim()
	}
	return b
}

// parseBitset reads up to n characters of s starting at pos. The last
// character read becomes bit 0.
func parseBitset(nbits int, s string, pos, n int) (*bitset, error) {
	if pos > len(s) {
		pos = len(s)
	}
	s = s[pos:]
	if n >= 0 && n < len(s) {
		s = s[:n]
	}
	if len(s) > nbits {
		s = s[:nbits]
	}
	b := newBitset(nbits, 0)
	for i := range len(s) {
		switch s[len(s)-1-i] {
		case '1':
			b.set(i)
		case '0':
		default:
			return nil, fmt.Errorf("%w %q", ErrBadDigit, s[len(s)-1-i])
		}
	}
	return b, nil
}

// trim clears the unused high bits of the last word.
func (b *bitset) trim() {
	if r := b.n % 64; r != 0 {
		b.words[len(b.words)-1] &= 1<<r - 1
	}
}

func (b *bitset) size() int { return b.n }

func (b *bitset) test(i int) bool { return b.words[i/64]&(1<<(i%64)) != 0 }

func (b *bitset) set(i int) { b.words[i/64] |= 1 << (i % 64) }

// setAll turns every bit on.
func (b *bitset) setAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.trim()
}

func (b *bitset) reset() { clear(b.words) }

func (b *bitset) flip() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.trim()
}

func (b *bitset) count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b *bitset) any() bool  { return b.count() > 0 }
func (b *bitset) none() bool { return b.count() == 0 }
func (b *bitset) all() bool  { return b.count() == b.n }

func (b *bitset) toUint64() (uint64, error) {
	for _, w := range b.words[min(1, len(b.words)):] {
		if w != 0 {
			return 0, ErrOverflow
		}
	}
	if len(b.words) == 0 {
		return 0, nil
	}
	return b.words[0], nil
}

func (b *bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := b.n - 1; i >= 0; i-- {
		if b.test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func demoBitsets() {
	fmt.Println("  32 bits of 1:    ", newBitset(32, 1))
	fmt.Println("  13 bits of beef: ", newBitset(13, 0xbeef))
	fmt.Println("  20 bits of beef: ", newBitset(20, 0xbeef))

	wide := newBitset(128, ^uint64(0))
	fmt.Println("  128 bits, count:", wide.count())
	ul, err := wide.toUint64()
	fmt.Println("  toUint64:", ul, err)

	str := "1111111000000011001101"
	b5, _ := parseBitset(8, str, 5, 4)
	b6, _ := parseBitset(8, str, len(str)-4, -1)
	fmt.Println("  substrings:", b5, b6)

	b := newBitset(32, 1)
	fmt.Println("  any/none/all/count/size:", b.any(), b.none(), b.all(), b.count(), b.size())
	b.flip()
	fmt.Println("  flipped:", b)
	b.reset()
	fmt.Println("  reset:  ", b)
	b.setAll()
	fmt.Println("  set:    ", b)
	fmt.Println("  rotate 0xbeef left 4 in 16 bits:", fmt.Sprintf("%016b", bits.RotateLeft16(0xbeef, 4)))
}
