package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// printAll writes the arguments separated by ", ".
func printAll(w io.Writer, args ...any) {
	for i, a := range args {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		fmt.Fprint(w, a)
	}
}

// countArgs is sizeof... for a variadic parameter.
func countArgs(args ...any) int { return len(args) }

// debugRep describes v for diagnostics. Strings are quoted and pointers
// show both the address and what they point to.
func debugRep(v any) string {
	switch x := v.(type) {
	case string:
		return `"` + x + `"`
	case *string:
		if x == nil {
			return "null pointer"
		}
		return fmt.Sprintf("pointer: %p %s", x, debugRep(*x))
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// debugRepPtr is the generic pointer form for any element type.
func debugRepPtr[T any](p *T) string {
	if p == nil {
		return "null pointer"
	}
	return fmt.Sprintf("pointer: %p %s", p, debugRep(*p))
}

// errorMsg prints every argument through debugRep.
func errorMsg(w io.Writer, args ...any) {
	reps := make([]any, len(args))
	for i, a := range args {
		reps[i] = debugRep(a)
	}
	printAll(w, reps...)
}

func demoVariadic() {
	i, d, s := 0, 3.14, "how now brown cow"
	fmt.Println("  argument counts:", countArgs(i, s, 42, d), countArgs(s, 42, "hi"), countArgs(d, s), countArgs("hi"))

	fmt.Print("  ")
	printAll(os.Stdout, i, "Hello World!", 42)
	fmt.Println()

	hi := "hi"
	fmt.Println(" ", debugRep(hi))
	fmt.Println(" ", strings.HasPrefix(debugRep(&hi), "pointer: 0x"), debugRepPtr(&i) != "")
	fmt.Println(" ", debugRep("hi world!"))

	fmt.Print("  ")
	errorMsg(os.Stdout, "fcnName", 42, "other")
	fmt.Println()
}
