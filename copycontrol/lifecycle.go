package main

import (
	"fmt"
	"io"
	"os"
)

// tracer announces its own construction, copies, assignments and
// destruction on w.
type tracer struct {
	w    io.Writer
	name string
}

func newTracer(w io.Writer, name string) *tracer {
	fmt.Fprintf(w, "%s: construct\n", name)
	return &tracer{w: w, name: name}
}

// clone is the copy constructor.
func (t *tracer) clone(name string) *tracer {
	fmt.Fprintf(t.w, "%s: copy of %s\n", name, t.name)
	return &tracer{w: t.w, name: name}
}

// assign is copy assignment.
func (t *tracer) assign(src *tracer) {
	fmt.Fprintf(t.w, "%s: assign from %s\n", t.name, src.name)
}

func (t *tracer) destroy() {
	fmt.Fprintf(t.w, "%s: destroy\n", t.name)
}

// traceScope builds x1, copies it into x2, assigns back and lets both go out
// of scope. Deferred calls run last-in first-out, which matches destruction
// in reverse order of construction.
func traceScope(w io.Writer) {
	x1 := newTracer(w, "x1")
	defer x1.destroy()
	x2 := x1.clone("x2")
	defer x2.destroy()
	x1.assign(x2)
}

func demoLifecycle() {
	traceScope(indent{os.Stdout})
}

// indent prefixes every write with two spaces. Callers write whole lines.
type indent struct{ w io.Writer }

func (i indent) Write(p []byte) (int, error) {
	if _, err := io.WriteString(i.w, "  "); err != nil {
		return 0, err
	}
	return i.w.Write(p)
}
