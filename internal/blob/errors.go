package blob

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the sentinel behind every *RangeError.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnbound is returned by a Ptr whose sequence no longer exists.
	ErrUnbound = errors.New("unbound blob pointer")

	// ErrReleased is returned by a Blob handle after Release.
	ErrReleased = errors.New("blob handle released")
)

// RangeError reports an access outside the current contents.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("blob: %s on empty Blob", e.Op)
	}
	return fmt.Sprintf("blob: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
