package main

import "github.com/fatih/color"

// Chapter 16: generic functions and types.
//
// Run:
//
//	go run ./templates
func main() {
	section("Generic compare")
	demoCompare()

	section("Generic Blob and its Ptr")
	demoBlob()

	section("Generic aliases and per-instantiation state")
	demoInstantiation()

	section("Variadic functions and debugRep")
	demoVariadic()

	section("Forwarding: flip")
	demoFlip()

	section("StrVec EmplaceBack and hashing sales records")
	demoHashing()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
