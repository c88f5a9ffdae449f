package main

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		grade int
		want  string
	}{
		{0, "F"}, {59, "F"}, {60, "D"}, {69, "D"}, {70, "C"},
		{85, "B"}, {90, "A"}, {99, "A"}, {100, "A++"},
	}
	for _, tt := range tests {
		got, err := letterGrade(tt.grade)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "grade %d", tt.grade)
	}

	_, err := letterGrade(101)
	assert.ErrorIs(t, err, ErrBadGrade)
	_, err = letterGrade(-1)
	assert.ErrorIs(t, err, ErrBadGrade)
}

func TestDuplicate(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, duplicate([]int{1, 2, 3}))
	assert.Empty(t, duplicate(nil))
}

func TestCountVowels(t *testing.T) {
	v, o := countVowels("Hello")
	assert.Equal(t, 2, v)
	assert.Equal(t, 3, o)
}

// TestParseGrade checks that both kinds of failure keep their cause
// reachable through the InputError.
func TestParseGrade(t *testing.T) {
	letter, err := parseGrade("75")
	require.NoError(t, err)
	assert.Equal(t, "C", letter)

	_, err = parseGrade("abc")
	var inErr *InputError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, "abc", inErr.Value)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	_, err = parseGrade("140")
	assert.ErrorIs(t, err, ErrBadGrade)
}

func TestSafeIndex(t *testing.T) {
	s, err := safeIndex([]string{"a"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	_, err = safeIndex([]string{"a"}, 3)
	assert.ErrorContains(t, err, "index out of range")
}

func TestRunFails(t *testing.T) {
	assert.Error(t, run())
}
