package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Chapter 11: associative containers.
//
// Run from the chapter directory so testdata/ resolves:
//
//	cd associative && go run .
func main() {
	section("Sets and multisets")
	demoSets()

	section("Maps: ordered iteration, pairs")
	demoMaps()

	section("Multimap: equal range for one author")
	demoMultimap()

	section("Word count with exclusions")
	demoWordCount()

	section("Word transformation")
	if err := transformFiles(os.Stdout, "testdata/dict.txt", "testdata/message.txt"); err != nil {
		fmt.Fprintln(os.Stderr, "word transform:", err)
		os.Exit(1)
	}
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
