package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// DigitSource hands out uniformly distributed digits 0..9. It is created once
// and passed to whoever needs numbers, so successive calls continue the same
// sequence instead of starting over.
type DigitSource struct {
	r *rand.Rand
}

// NewDigitSource seeds a PCG generator; equal seeds give equal sequences.
func NewDigitSource(seed uint64) *DigitSource {
	return &DigitSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// Digits returns the next n digits.
func (d *DigitSource) Digits(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = d.r.IntN(10)
	}
	return out
}

// freshDigits builds a new source on every call, so it returns the same
// digits every time.
func freshDigits(n int) []int {
	return NewDigitSource(0).Digits(n)
}

// uniformFloats returns n values in [0, 1).
func uniformFloats(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}

// normalHistogram draws samples from N(mean, stddev), rounds them and counts
// how many land in each bucket [0, buckets).
func normalHistogram(r *rand.Rand, mean, stddev float64, samples, buckets int) []int {
	hist := make([]int, buckets)
	for range samples {
		v := int(math.Round(r.NormFloat64()*stddev + mean))
		if v >= 0 && v < buckets {
			hist[v]++
		}
	}
	return hist
}

// bernoulli is true with probability p.
func bernoulli(r *rand.Rand, p float64) bool { return r.Float64() < p }

func demoRandom() {
	src := NewDigitSource(0)
	fmt.Println("  first 10: ", src.Digits(10))
	fmt.Println("  next 10:  ", src.Digits(10))
	fmt.Println("  fresh:    ", freshDigits(10), "(always the same)")

	e1, e2 := NewDigitSource(32767), NewDigitSource(32767)
	fmt.Println("  equal seeds match:", fmt.Sprint(e1.Digits(5)) == fmt.Sprint(e2.Digits(5)))

	r := rand.New(rand.NewPCG(1, 2))
	fmt.Printf("  uniform: %.3f\n", uniformFloats(r, 5))

	for i, n := range normalHistogram(r, 4, 1.5, 200, 9) {
		fmt.Printf("  %d: %s\n", i, strings.Repeat("#", n))
	}

	heads := 0
	for range 100 {
		if bernoulli(r, 0.55) {
			heads++
		}
	}
	fmt.Println("  bernoulli(0.55) in 100 draws:", heads)
}
