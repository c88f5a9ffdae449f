package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Chapter 5: statements, and errors as values.
//
// The program exits with status 1: the last section returns an error on
// purpose and main turns it into the exit code.
//
// Run:
//
//	go run ./statements; echo "exit=$?"
func main() {
	section("Simple statements and loops")
	demoLoops()

	section("if/else and switch")
	demoSwitch()

	section("Errores: centinelas, tipos, wrapping")
	demoErrors()

	section("panic vs error")
	demoRecover()

	section("Error escaping main")
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, " ", err)
		os.Exit(1)
	}
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
