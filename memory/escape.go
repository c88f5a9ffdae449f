package main

import (
	"fmt"
	"strings"
)

// ── Stack ────────────────────────────────────────────────────────────────────

// returnValue devuelve una copia; x no escapa.
func returnValue() int {
	x := 42
	return x
}

// ── Heap ─────────────────────────────────────────────────────────────────────

// returnPointer devuelve la dirección de x, que tiene que sobrevivir al
// frame: x escapa al heap. No hay delete; el GC la recoge cuando nadie la
// referencia.
func returnPointer() *int {
	x := 42
	return &x
}

// newNines es el equivalente de reservar un string de n nueves.
func newNines(n int) *string {
	s := strings.Repeat("9", n)
	return &s
}

// newDigits reserva un slice ya inicializado.
func newDigits() *[]int {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	return &v
}

func demoEscape() {
	fmt.Printf("  returnValue()   → %d  (copia en stack)\n", returnValue())

	p := returnPointer()
	fmt.Printf("  returnPointer() → %d  (x escapó al heap)\n", *p)

	// new(T) siempre devuelve memoria a cero: no existe "sin inicializar".
	pi, ps := new(int), new(string)
	fmt.Printf("  new(int) → %d, new(string) → %q\n", *pi, *ps)

	fmt.Println("  newNines(10):", *newNines(10))
	fmt.Println("  newDigits(): ", *newDigits())

	// Dos punteros al mismo objeto: poner uno a nil no invalida al otro, y
	// el objeto vive mientras alguno lo alcance.
	q := p
	p = nil
	fmt.Println("  q after p = nil:", *q, p == nil)
}
