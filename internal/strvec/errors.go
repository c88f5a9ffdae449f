package strvec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel behind every *RangeError.
var ErrOutOfRange = errors.New("index out of range")

// RangeError reports a checked access outside [0, Len).
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("strvec %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }
