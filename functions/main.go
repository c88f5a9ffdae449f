package main

import "github.com/fatih/color"

// Chapter 6: functions.
//
// Run:
//
//	go run ./functions
func main() {
	section("Factorial: iterative and recursive")
	demoFact()

	section("State that survives calls")
	demoCallCounter()

	section("Pointer parameters")
	demoPointers()

	section("Variadic parameters")
	demoVariadic()

	section("Returning pointers into the caller's data")
	demoReturnPointers()

	section("defer and named results")
	demoDefer()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
