package main

import "github.com/fatih/color"

// Chapter 4: operators and expressions.
//
// Run:
//
//	go run ./expressions
func main() {
	section("Generic L2 norm over mixed element types")
	demoNorm()

	section("Assignment and increment")
	demoIncrement()

	section("Conditions and the missing ternary")
	demoConditions()

	section("Bits")
	demoBits()

	section("Sizes and conversions")
	demoConversions()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
