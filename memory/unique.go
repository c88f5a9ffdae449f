package main

import "fmt"

// unique is a single-owner pointer. Copying the struct is not prevented by
// the compiler, so ownership moves only through release and reset.
type unique[T any] struct {
	p *T
}

func makeUnique[T any](v T) unique[T] {
	return unique[T]{p: &v}
}

// get returns the owned value and whether there is one.
func (u *unique[T]) get() (T, bool) {
	if u.p == nil {
		var zero T
		return zero, false
	}
	return *u.p, true
}

// release gives up ownership without destroying the value.
func (u *unique[T]) release() *T {
	p := u.p
	u.p = nil
	return p
}

// reset drops the current value and takes ownership of p.
func (u *unique[T]) reset(p *T) {
	u.p = p
}

func demoUnique() {
	p1 := makeUnique("Stegosaurus")
	p2 := unique[string]{}
	p2.reset(p1.release())
	v, _ := p2.get()
	fmt.Println("  p2 after taking p1:", v)
	_, ok := p1.get()
	fmt.Println("  p1 still owns something:", ok)

	p3 := makeUnique("Trex")
	p2.reset(p3.release())
	v, _ = p2.get()
	fmt.Println("  p2 after taking p3:", v)
}
