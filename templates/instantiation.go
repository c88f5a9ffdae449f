package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

type pair[A, B any] struct {
	First  A
	Second B
}

type twin[T any] = pair[T, T]

type partNo[T any] = pair[T, uint]

// ── Per-instantiation state ──────────────────────────────────────────────────
// A generic type cannot have its own package-level variable per type
// argument, so the count lives in a map keyed by the type name.

var fooCount = map[string]int{}

type foo[T any] struct{ val T }

func newFoo[T any](v T) foo[T] {
	fooCount[typeName[T]()]++
	return foo[T]{val: v}
}

func fooCountOf[T any]() int { return fooCount[typeName[T]()] }

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", &zero)[1:]
}

// bar has one body for every T except int.
func (foo[T]) bar() string {
	var zero T
	if _, ok := any(zero).(int); ok {
		return "bar specialised for int"
	}
	return "generic bar for " + typeName[T]()
}

// ── Custom deleter ───────────────────────────────────────────────────────────

// owned runs its deleter exactly once when closed.
type owned[T any] struct {
	p       *T
	deleter func(*T)
}

func (o *owned[T]) Close() {
	if o.p == nil {
		return
	}
	o.deleter(o.p)
	o.p = nil
}

// debugDelete returns a deleter that logs to w before dropping the pointer.
func debugDelete[T any](w io.Writer) func(*T) {
	l := log.New(w, "  ", 0)
	return func(*T) { l.Printf("deleting %s", typeName[T]()) }
}

func demoInstantiation() {
	var authors twin[string]
	authors.First, authors.Second = "Austen", "Joyce"
	books := partNo[string]{"Go Primer", 5}
	fmt.Printf("  twin=%+v partNo=%+v\n", authors, books)

	fi := newFoo(1)
	newFoo(2)
	newFoo("s")
	fmt.Println("  foo[int] count:", fooCountOf[int](), " foo[string] count:", fooCountOf[string]())
	fmt.Println(" ", fi.bar(), "/", newFoo("x").bar())

	d := owned[float64]{p: new(float64), deleter: debugDelete[float64](os.Stdout)}
	s := owned[string]{p: new(string), deleter: debugDelete[string](os.Stdout)}
	defer d.Close()
	defer s.Close()
}
