package main

import "github.com/fatih/color"

// Chapter 9: sequential containers.
//
// Run:
//
//	go run ./containers
func main() {
	section("Construction, assignment, comparison")
	demoBasics()

	section("Lists: insert and erase while iterating")
	demoLists()

	section("Slices: insert, erase, resize")
	demoInsertErase()

	section("Capacity growth: append, Grow, Clip, StrVec")
	demoCapacity()

	section("String operations")
	demoStrings()

	section("Stack[T] adaptor")
	demoStack()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
