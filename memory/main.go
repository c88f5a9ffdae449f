package main

import "github.com/fatih/color"

// Chapter 12: dynamic memory and ownership.
//
// Run:
//
//	go run ./memory
//
// Para ver qué variables escapan al heap:
//
//	go build -gcflags="-m" ./memory
func main() {
	section("Stack vs heap: escape analysis")
	demoEscape()

	section("Shared ownership: Blob handles and use count")
	demoShared()

	section("Unique ownership: release and reset")
	demoUnique()

	section("Weak observer: Ptr over a Blob")
	demoWeak()

	section("Raw storage: allocate, construct, destroy, deallocate")
	demoAllocator()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
