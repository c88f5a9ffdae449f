package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountPunct(t *testing.T) {
	assert.Equal(t, 3, countPunct("Hello World!!!"))
	assert.Equal(t, 0, countPunct(""))
	assert.Equal(t, 2, countPunct("¿qué?"))
}

func TestUpperFirstWord(t *testing.T) {
	assert.Equal(t, "SOME string", upperFirstWord("some string"))
	assert.Equal(t, "ÁRBOL", upperFirstWord("árbol"))
	assert.Equal(t, " lead", upperFirstWord(" lead"))
}

func TestUpperCaser(t *testing.T) {
	assert.Equal(t, "HELLO WORLD!!!", upper.String("Hello World!!!"))
	assert.Equal(t, "STRASSE", upper.String("straße"))
}

func TestSquareAll(t *testing.T) {
	v := []int{1, 2, 3, -4}
	squareAll(v)
	assert.Equal(t, []int{1, 4, 9, 16}, v)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5, distance(0, 5))
	assert.Equal(t, -5, distance(5, 0))
}
