package main

import "fmt"

// Stack is a LIFO adaptor over a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int    { return len(s.items) }
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

func demoStack() {
	var intStack Stack[int]
	for ix := 0; ix != 10; ix++ {
		intStack.Push(ix)
	}
	fmt.Print("  ")
	for !intStack.Empty() {
		v, _ := intStack.Pop()
		fmt.Print(v, " ")
	}
	fmt.Println()
}
