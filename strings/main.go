package main

import "github.com/fatih/color"

// Chapter 3: strings, runes and slices.
//
// Run:
//
//	go run ./strings
func main() {
	section("Building strings")
	demoBuild()

	section("Iterating: bytes vs runes")
	demoIterate()

	section("Rewriting characters")
	demoRewrite()

	section("Slices: fill, append, modify in place")
	demoSlices()

	section("Index arithmetic and arrays")
	demoIndexes()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
