package main

import (
	"fmt"
	"log"
	"os"

	"github.com/marcodamonte/primer/internal/blob"
)

var traceLog = log.New(os.Stdout, "  ", 0)

// tracedBlob returns a Blob that reports its own destruction on stdout.
func tracedBlob(name string, vals ...int) *blob.Blob[int] {
	return blob.NewWithConfig(blob.Config[int]{
		Logger: traceLog,
		OnDestroy: func(data []int) {
			traceLog.Printf("%s destroyed: %v", name, data)
		},
	}, vals...)
}

// reassign releases dst and returns a new handle sharing src, which is what
// assigning one shared pointer to another does.
func reassign[T any](dst, src *blob.Blob[T]) *blob.Blob[T] {
	dst.Release()
	return src.Share()
}

func demoShared() {
	p := tracedBlob("p", 42)
	q := p.Share()
	fmt.Println("  q.UseCount():", q.UseCount())

	r := tracedBlob("r", 42)
	r = reassign(r, q) // la secuencia original de r se destruye aquí
	fmt.Println("  after r = q, use count:", r.UseCount())

	for _, h := range []*blob.Blob[int]{p, q, r} {
		h.Release()
	}

	x := blob.New("Hello", "World")
	back, _ := x.Back()
	fmt.Println("  StrBlob back:", back)
	x.Release()
}
