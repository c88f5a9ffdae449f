package main

import (
	"fmt"
	"math/bits"
	"strconv"
	"unsafe"
)

// ── Bits ─────────────────────────────────────────────────────────────────────
// A uint64 used as a set of 64 flags.

func setBit(x uint64, n uint) uint64   { return x | 1<<n }
func clearBit(x uint64, n uint) uint64 { return x &^ (1 << n) }
func hasBit(x uint64, n uint) bool     { return x&(1<<n) != 0 }

func demoBits() {
	var quiz1 uint64
	quiz1 = setBit(quiz1, 27)
	fmt.Println("  student 27 passed:", hasBit(quiz1, 27), " ones:", bits.OnesCount64(quiz1))
	quiz1 = clearBit(quiz1, 27)
	fmt.Println("  after clear:", hasBit(quiz1, 27))
}

// ── Conversions ──────────────────────────────────────────────────────────────
// Every conversion is explicit. `any` with a type assertion stands in for
// void*, and strconv converts between text and numbers.

func demoConversions() {
	var p *int
	fmt.Println("  sizeof pointer:", unsafe.Sizeof(p), " sizeof int:", unsafe.Sizeof(*p))

	a := [...]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	var b [len(a)]int
	fmt.Println("  len(a) as a constant:", len(b))

	i := 0
	d := 3.5
	i = int(d) // truncates toward zero
	fmt.Println(" ", d, i)

	var box any = 3.14159
	if dp, ok := box.(float64); ok {
		fmt.Println("  unboxed:", dp)
	}
	if _, ok := box.(string); !ok {
		fmt.Println("  box does not hold a string")
	}

	n, err := strconv.Atoi("42x")
	fmt.Printf("  Atoi(\"42x\") = %d, %v\n", n, err)
}
