package main

import (
	"fmt"
	"io"
	"os"
)

// ── Promotion and shadowing ──────────────────────────────────────────────────

type base struct {
	basename string
}

func (b base) name() string { return b.basename }

func (b base) print(w io.Writer) { fmt.Fprintln(w, b.basename) }

type derived struct {
	base
	i int
}

// print shadows base.print; the embedded one stays reachable as d.base.print.
func (d derived) print(w io.Writer) {
	d.base.print(w)
	fmt.Fprintln(w, " ", d.i)
}

type printer interface{ print(io.Writer) }

// ── Dispatch ─────────────────────────────────────────────────────────────────

type fcner interface{ fcn() int }

type baseF struct{}

func (baseF) fcn() int { return 0 }

// describe calls fcn on the receiver it was declared on. An outer type that
// embeds baseF and defines its own fcn does not change what runs here.
func (b baseF) describe() string { return fmt.Sprintf("fcn() = %d", b.fcn()) }

// d1 inherits fcn from baseF and adds fcnN, which is unrelated to fcn.
type d1 struct{ baseF }

func (d1) fcnN(int) int { return 1 }

func (d1) f2() string { return "d1.f2" }

// d2 defines its own fcn, so it satisfies fcner with 3.
type d2 struct{ d1 }

func (d2) fcn() int { return 3 }

func (d2) fcnN(int) int { return 2 }

func (d2) f2() string { return "d2.f2" }

// olf picks its answer from the dynamic type of v; Go has no overloading.
func olf(v any) string {
	switch v.(type) {
	case int:
		return "int"
	case float64:
		return "float64"
	case rune:
		return "rune"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func demoEmbedding() {
	b := base{"Microsoft"}
	d := derived{base{"Windows"}, 10}
	for _, p := range []printer{b, d} {
		fmt.Print("  ")
		p.print(os.Stdout)
	}
	fmt.Println("  promoted name():", d.name())

	for _, f := range []fcner{baseF{}, d1{}, d2{}} {
		fmt.Printf("  %T.fcn() = %d\n", f, f.fcn())
	}
	fmt.Println("  d2{}.describe():", d2{}.describe(), "(no virtual dispatch)")
	fmt.Println("  d1.fcnN / d2.fcnN:", d1{}.fcnN(42), d2{}.fcnN(42), " d2.d1.fcnN:", d2{}.d1.fcnN(42))
	fmt.Println("  f2:", d1{}.f2(), d2{}.f2())

	fmt.Println("  olf(42), olf(3.14), olf('*'):", olf(42), olf(3.14), olf('*'))
}
