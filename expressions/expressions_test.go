package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestL2Norm(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mixed lengths", l2Norm([]int{0, 0}, []float64{0, 1, 2}), math.Sqrt(5)},
		{"y shorter", l2Norm([]float64{3, 4}, []int{}), 5},
		{"equal", l2Norm([]int{1, 2}, []int64{1, 2}), 0},
		{"both empty", l2Norm([]int{}, []int{}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-12)
		})
	}
}

func TestLeadingNonNegative(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1, 0}, leadingNonNegative([]int{3, 2, 1, 0, -1, 2}))
	assert.Equal(t, []int{1, 2}, leadingNonNegative([]int{1, 2}))
	assert.Empty(t, leadingNonNegative([]int{-1}))
}

func TestCountdown(t *testing.T) {
	v := make([]int, 6)
	countdown(v)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, v)
}

func TestLetterGrade(t *testing.T) {
	assert.Equal(t, "Pass", letterGrade(60))
	assert.Equal(t, "Fail", letterGrade(59))
}

func TestBits(t *testing.T) {
	x := setBit(0, 27)
	assert.True(t, hasBit(x, 27))
	assert.False(t, hasBit(x, 26))
	assert.Zero(t, clearBit(x, 27))
}
