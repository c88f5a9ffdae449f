package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulate(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(t, 55, accumulate(nums, 0, func(a, n int) int { return a + n }))
	assert.Equal(t, "abc", accumulate([]string{"a", "b", "c"}, "", func(a, s string) string { return a + s }))
	assert.Equal(t, 7, accumulate([]int(nil), 7, func(a, n int) int { return a + n }))
}

func TestEqualPrefix(t *testing.T) {
	eq := func(s string, b []byte) bool { return s == string(b) }
	long := [][]byte{[]byte("Hello"), []byte("World"), []byte("!!!")}

	assert.True(t, equalPrefix([]string{"Hello", "World"}, long, eq))
	assert.False(t, equalPrefix([]string{"Hello", "There"}, long, eq))
	assert.False(t, equalPrefix([]string{"a", "b", "c", "d"}, long, eq), "shorter b never matches")
}

func TestFill(t *testing.T) {
	v := []int{1, 2, 3}
	fill(v, 0)
	assert.Equal(t, []int{0, 0, 0}, v)
	assert.Equal(t, []int{42, 0, 0}, appendN([]int{42}, 2, 0))
}

func TestElimDups(t *testing.T) {
	got := elimDups(slices.Clone(sampleWords))
	assert.Equal(t, []string{"fox", "jumps", "over", "quick", "red", "slow", "the", "turtle"}, got)
}

func TestStableSortByLength(t *testing.T) {
	words := elimDups(slices.Clone(sampleWords))
	slices.SortStableFunc(words, byLength)
	assert.Equal(t, []string{"fox", "red", "the", "over", "slow", "jumps", "quick", "turtle"}, words)
}

func TestPartition(t *testing.T) {
	words := slices.Clone(sampleWords)
	pos := partition(words, longerThan5)

	assert.Equal(t, 3, pos)
	assert.Equal(t, "fox", words[pos])
	for _, w := range words[:pos] {
		assert.True(t, longerThan5(w), w)
	}
	for _, w := range words[pos:] {
		assert.False(t, longerThan5(w), w)
	}

	all := []int{2, 4}
	assert.Equal(t, 2, partition(all, func(n int) bool { return n%2 == 0 }))
}

func TestBiggies(t *testing.T) {
	var sb strings.Builder
	got := biggies(&sb, slices.Clone(sampleWords), 5, " ")

	assert.Equal(t, []string{"jumps", "quick", "turtle"}, got)
	assert.Equal(t, "3 words of length 5 or longer\njumps quick turtle \n", sb.String())

	sb.Reset()
	got = biggies(&sb, slices.Clone(sampleWords), 10, ",")
	assert.Empty(t, got)
	assert.True(t, strings.HasPrefix(sb.String(), "0 word of length 10"))
}

func TestCapture(t *testing.T) {
	assert.Equal(t, 42, captureByValue())
	assert.Equal(t, 0, captureByReference())
	assert.Equal(t, 43, captureCopyAndMutate())
	assert.Equal(t, 1, captureReferenceAndMutate())
}

func TestBindSecond(t *testing.T) {
	check6 := bindSecond(checkSize, 6)
	assert.False(t, check6("hello"))
	assert.True(t, check6("turtles"))
}

func TestInserters(t *testing.T) {
	lst := []int{1, 2, 3, 4}
	assert.Equal(t, []int{4, 3, 2, 1}, frontInsert(nil, lst))
	assert.Equal(t, []int{1, 2, 3, 4}, insertAt(nil, 0, lst))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 9}, insertAt([]int{0, 9}, 1, lst))

	var sb strings.Builder
	writeJoined(&sb, []int{1, 2}, " ")
	assert.Equal(t, "1 2 ", sb.String())
}
