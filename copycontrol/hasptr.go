package main

import "fmt"

// ── Value-like ───────────────────────────────────────────────────────────────
// Each copy owns its own string.

type valuePtr struct {
	ps *string
	i  int
}

func newValuePtr(s string) valuePtr {
	return valuePtr{ps: &s}
}

func (h valuePtr) clone() valuePtr {
	s := *h.ps
	return valuePtr{ps: &s, i: h.i}
}

func (h *valuePtr) set(s string) { *h.ps = s }
func (h valuePtr) get() string   { return *h.ps }

// swapValues intercambia los punteros, no el texto.
func swapValues(a, b *valuePtr) {
	a.ps, b.ps = b.ps, a.ps
	a.i, b.i = b.i, a.i
}

// ── Pointer-like ─────────────────────────────────────────────────────────────
// Copies share one string and a use count. The string is dropped when the
// last copy is destroyed.

type sharedPtr struct {
	ps  *string
	i   int
	use *int
}

func newSharedPtr(s string) sharedPtr {
	n := 1
	return sharedPtr{ps: &s, use: &n}
}

func (h sharedPtr) copy() sharedPtr {
	*h.use++
	return h
}

// assign makes h share rhs's string. Incrementing rhs first keeps h.assign(h)
// from dropping the string it is about to keep.
func (h *sharedPtr) assign(rhs sharedPtr) {
	*rhs.use++
	h.destroy()
	*h = rhs
}

// destroy drops h's share and reports whether it was the last one.
func (h *sharedPtr) destroy() bool {
	if h.use == nil {
		return false
	}
	*h.use--
	last := *h.use == 0
	if last {
		h.ps = nil
	}
	h.use = nil
	return last
}

func (h sharedPtr) useCount() int {
	if h.use == nil {
		return 0
	}
	return *h.use
}

func (h sharedPtr) get() string { return *h.ps }

func demoHasPtr() {
	v1 := newValuePtr("hello")
	v2 := v1.clone()
	v2.set("bye")
	fmt.Printf("  value-like: v1=%q v2=%q\n", v1.get(), v2.get())
	swapValues(&v1, &v2)
	fmt.Printf("  after swap: v1=%q v2=%q\n", v1.get(), v2.get())

	p1 := newSharedPtr("hello")
	p2 := p1.copy()
	*p2.ps = "bye"
	fmt.Printf("  pointer-like: p1=%q p2=%q use=%d\n", p1.get(), p2.get(), p1.useCount())
	p3 := newSharedPtr("other")
	p3.assign(p1)
	fmt.Println("  after p3 = p1, use:", p1.useCount())
	for _, h := range []*sharedPtr{&p1, &p2, &p3} {
		if h.destroy() {
			fmt.Println("  last share dropped")
		}
	}
}
