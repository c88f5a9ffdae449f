package main

import "github.com/fatih/color"

// Chapter 10: generic algorithms over slices.
//
// Run:
//
//	go run ./algorithms
func main() {
	section("Read-only algorithms: find, accumulate, equal")
	demoReadOnly()

	section("Writing algorithms: fill, append as back inserter, copy")
	demoWriting()

	section("Reordering: elimDups, sort vs stable sort, partition")
	demoReorder()

	section("Closures: biggies, capture, partial application")
	demoClosures()

	section("Inserters and output iterators")
	demoInserters()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
