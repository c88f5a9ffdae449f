package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveOdd(t *testing.T) {
	l := listOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	removeOdd(l)
	assert.Equal(t, "0 2 4 6 8", listString(l))
}

func TestInsertEachAtFront(t *testing.T) {
	assert.Equal(t, "! World Hello", listString(insertEachAtFront([]string{"Hello", "World", "!"})))
}

func TestForwardList_RemoveIf(t *testing.T) {
	fl := newForwardList(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	fl.removeIf(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{1, 3, 5, 7, 9}, fl.values())

	empty := newForwardList[int]()
	empty.removeIf(func(int) bool { return true })
	assert.Empty(t, empty.values())
}

func TestDupOddDropEven(t *testing.T) {
	got := dupOddDropEven([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, []int{1, 1, 3, 3, 5, 5, 7, 7, 9, 9}, got)
}

func TestResize(t *testing.T) {
	v := []int{42, 42}
	v = resize(v, 4, -1)
	assert.Equal(t, []int{42, 42, -1, -1}, v)
	v = resize(v, 1, 0)
	assert.Equal(t, []int{42}, v)
	assert.Equal(t, 1, cap(v))
}

func TestSubstr(t *testing.T) {
	s := "hello world"
	tests := []struct {
		pos, n int
		want   string
	}{
		{0, 5, "hello"},
		{6, -1, "world"},
		{6, 11, "world"},
		{11, -1, ""},
	}
	for _, tt := range tests {
		got, err := substr(s, tt.pos, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := substr(s, 12, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFind(t *testing.T) {
	const numbers = "0123456789"
	assert.Equal(t, 1, findFirstOf("r2d2", numbers))
	assert.Equal(t, 5, findFirstNotOf("03714p3", numbers))
	assert.Equal(t, -1, findFirstNotOf("123", numbers))
	assert.Equal(t, "Go Primer 5th Ed.", replaceAt("Go Primer 4th Ed.", 10, 3, "5th"))
}

func TestStack(t *testing.T) {
	var s Stack[string]
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push("a")
	s.Push("b")
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "b", top)

	v, _ := s.Pop()
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, s.Len())
}
