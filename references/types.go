package main

import "fmt"

// ── Local types ──────────────────────────────────────────────────────────────
// A type can be declared inside a function. Every field starts at its zero
// value, so no initializer list is needed for the common defaults.

func demoLocalTypes() {
	type salesData struct {
		bookNo    string
		unitsSold uint
		revenue   float64
	}

	var s salesData
	fmt.Printf("  zero value: %+v\n", s)

	s = salesData{bookNo: "0-201-78345-X", unitsSold: 3, revenue: 60}
	fmt.Printf("  literal:    %+v\n", s)

	t := s // struct assignment copies every field
	t.unitsSold++
	fmt.Printf("  copy edited: s.unitsSold=%d t.unitsSold=%d\n", s.unitsSold, t.unitsSold)
}
