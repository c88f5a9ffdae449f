package main

import "github.com/fatih/color"

// Chapter 17: specialized library facilities.
//
// Run:
//
//	go run ./specialized
func main() {
	section("Tuples: structs and multiple results")
	demoTuples()

	section("Bookstore: findBook across stores")
	demoBookstore()

	section("Bitsets")
	demoBitsets()

	section("Random numbers: seeded sources and distributions")
	demoRandom()

	section("Formatted output")
	demoFormatting()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
