package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// printString writes each string followed by sep. A value of this type
// carries its own state, like a function object.
type printString struct {
	w   io.Writer
	sep string
}

func newPrintString() printString {
	return printString{w: os.Stdout, sep: " "}
}

func (p printString) print(s string) {
	fmt.Fprint(p.w, s, p.sep)
}

func shorterString(a, b string) int { return cmp.Compare(len(a), len(b)) }

// sizeComp is the closure a capturing lambda becomes.
func sizeComp(sz int) func(string) bool {
	return func(s string) bool { return len(s) >= sz }
}

func plus[T cmp.Ordered](a, b T) T { return a + b }

func negate(v int) int { return -v }

// greater reverses the natural order.
func greater[T cmp.Ordered](a, b T) int { return cmp.Compare(b, a) }

func demoFuncObjects() {
	i := -42
	fmt.Println("  absInt:", i, absInt(i))

	fmt.Print("  ")
	printString{w: os.Stdout, sep: "?"}.print("Yes")
	printer := newPrintString()
	printer.print("Hello World!")
	fmt.Println()

	names := []string{"Alice", "Bob", "Calvin"}
	fmt.Print("  ")
	star := printString{w: os.Stdout, sep: "*"}
	for _, n := range names {
		star.print(n)
	}
	fmt.Println()

	words := []string{"David", "Alice", "Eve", "Bob", "Calvin"}
	slices.SortStableFunc(words, shorterString)
	fmt.Println("  stable by length:", words)
	fmt.Println("  at least 5 letters:", slices.IndexFunc(words, sizeComp(5)), "is the first index")

	fmt.Println("  plus, negate:", plus(10, 20), negate(plus(10, 20)), plus(10, negate(10)))

	svec := []string{"David", "Alice", "Eve", "Bob", "Calvin"}
	slices.SortFunc(svec, greater[string])
	fmt.Println("  descending:", svec)
}

// ── Function table ──────────────────────────────────────────────────────────

var (
	ErrUnknownOp = errors.New("unknown operator")
	ErrDivByZero = errors.New("division by zero")
)

var binops = map[string]func(a, b int) int{
	"+": plus[int],
	"-": func(a, b int) int { return a - b },
	"*": func(a, b int) int { return a * b },
	"/": divide,
	"%": mod,
}

func divide(a, b int) int { return a / b }
func mod(a, b int) int    { return a % b }

// apply looks op up in the table. A zero divisor is reported instead of
// letting the runtime panic.
func apply(op string, a, b int) (int, error) {
	f, ok := binops[op]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	if b == 0 && (op == "/" || op == "%") {
		return 0, ErrDivByZero
	}
	return f(a, b), nil
}

func demoBinops() {
	for _, op := range slices.Sorted(maps.Keys(binops)) {
		v, _ := apply(op, 10, 5)
		fmt.Printf("  10 %s 5 = %d\n", op, v)
	}
	fmt.Println("  13 mod 5 =", binops["%"](13, 5))

	if _, err := apply("/", 1, 0); err != nil {
		fmt.Println("  1 / 0:", err)
	}
	if _, err := apply("^", 2, 3); err != nil {
		fmt.Println("  2 ^ 3:", err)
	}
}
