package main

import (
	"testing"

	"github.com/marcodamonte/primer/internal/blob"
)

// BenchmarkReturnValue mide el costo de un valor que se queda en el stack.
func BenchmarkReturnValue(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink = returnValue()
	}
	_ = sink
}

// BenchmarkReturnPointer mide una asignación en heap por llamada.
func BenchmarkReturnPointer(b *testing.B) {
	var sink *int
	for i := 0; i < b.N; i++ {
		sink = returnPointer()
	}
	_ = sink
}

// BenchmarkShareRelease mide el conteo de referencias: ninguna asignación
// más allá del handle.
func BenchmarkShareRelease(b *testing.B) {
	owner := blob.New(1, 2, 3)
	defer owner.Release()
	for i := 0; i < b.N; i++ {
		owner.Share().Release()
	}
}
