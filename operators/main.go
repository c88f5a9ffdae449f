package main

import "github.com/fatih/color"

// Chapter 14: operations on user types. Go has no operator overloading, so
// each operator becomes a named method or function.
//
// Run:
//
//	go run ./operators
func main() {
	section("Sales records: read, +=, +, ==, print")
	demoSales()

	section("Indexing a StrVec")
	demoIndex()

	section("Function values in place of function objects")
	demoFuncObjects()

	section("Function table")
	demoBinops()

	section("SmallInt: checked conversion")
	demoSmallInt()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
