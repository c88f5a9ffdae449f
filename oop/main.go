package main

import "github.com/fatih/color"

// Chapter 15: object-oriented programming with interfaces and embedding.
//
// Run:
//
//	go run ./oop
func main() {
	section("Dynamic binding through an interface")
	demoPricing()

	section("Type assertion and type switch")
	demoAssertions()

	section("Embedding: promotion, shadowing, no virtual dispatch")
	demoEmbedding()

	section("Containers of interface values")
	demoContainers()

	section("Basket receipt")
	demoBasket()
}

var banner = color.New(color.FgCyan, color.Bold)

func section(title string) {
	banner.Printf("\n━━━ %s ━━━\n", title)
}
