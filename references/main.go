package main

import "github.com/fatih/color"

// Chapter 2: variables, inferred types, values and pointers.
//
// Run:
//
//	go run ./references
func main() {
	section("Inference: :=, var, untyped constants")
	demoInference()

	section("Aliasing: copies vs pointers")
	demoAliasing()

	section("Local types and zero values")
	demoLocalTypes()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
