package main

import (
	"errors"
	"fmt"
)

// ErrSmallIntRange is returned for values outside [0, 255].
var ErrSmallIntRange = errors.New("bad SmallInt value")

// SmallInt holds a value in [0, 255]. The zero value is 0.
type SmallInt struct {
	val int
}

// NewSmallInt is the checked conversion from int.
func NewSmallInt(i int) (SmallInt, error) {
	if i < 0 || i > 255 {
		return SmallInt{}, fmt.Errorf("%w: %d", ErrSmallIntRange, i)
	}
	return SmallInt{val: i}, nil
}

// Int is the conversion back to int. It is always explicit.
func (s SmallInt) Int() int { return s.val }

// AddSmall adds two SmallInts; the sum must still fit.
func AddSmall(a, b SmallInt) (SmallInt, error) {
	return NewSmallInt(a.val + b.val)
}

func demoSmallInt() {
	if _, err := NewSmallInt(256); err != nil {
		fmt.Println("  NewSmallInt(256):", err)
	}

	si, _ := NewSmallInt(4)
	fmt.Println("  si.Int() + 3 =", si.Int()+3)

	f := 3.14
	si, _ = NewSmallInt(int(f)) // float → int → SmallInt
	fmt.Println("  float64(si.Int()) + 2.71 =", float64(si.Int())+2.71)

	var s1, s2 SmallInt
	s3, _ := AddSmall(s1, s2)
	fmt.Println("  zero + zero =", s3.Int())

	big, _ := NewSmallInt(200)
	if _, err := AddSmall(big, big); err != nil {
		fmt.Println("  200 + 200:", err)
	}
}
