package main

import "github.com/fatih/color"

// Chapter 13: copy control. Go has no constructors or destructors, so every
// copy, assignment and teardown here is an explicit method call.
//
// Run:
//
//	go run ./copycontrol
func main() {
	section("Lifecycle tracing")
	demoLifecycle()

	section("Value-like vs pointer-like handles")
	demoHasPtr()

	section("Message/Folder bookkeeping")
	demoMessages()

	section("StrVec: copy and move")
	demoStrVec()

	section("Temporaries and receivers")
	demoTemporaries()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
