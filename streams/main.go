package main

import (
	"os"

	"github.com/fatih/color"
)

// Chapter 8: the I/O library.
//
// Reads "name phone..." records from stdin:
//
//	printf 'morgan 2015552368 8625550123\ndrew 9735550130\n' | go run ./streams
func main() {
	section("Buffered output and flushing")
	demoBuffering()

	section("Reading with error state")
	demoScanState()

	section("Records from stdin")
	if err := demoPeople(os.Stdin, os.Stdout); err != nil {
		color.Red("  %v", err)
		os.Exit(1)
	}
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
