package main

import (
	"errors"
	"fmt"

	"github.com/marcodamonte/primer/internal/blob"
)

// walk dereferences p until it runs off the end and returns what it saw and
// the error that stopped it.
func walk[T any](p *blob.Ptr[T]) ([]T, error) {
	var seen []T
	for {
		v, err := p.Deref()
		if err != nil {
			return seen, err
		}
		seen = append(seen, v)
		if err := p.Incr(); err != nil {
			return seen, err
		}
	}
}

func demoWeak() {
	sp := blob.New(42)
	fmt.Print("  use count: ", sp.UseCount())
	wp := blob.NewPtr(sp, 0)
	fmt.Println(" → after NewPtr:", sp.UseCount())
	v, _ := wp.Deref()
	fmt.Println("  wp.Deref():", v)
	sp.Release()
	if _, err := wp.Deref(); errors.Is(err, blob.ErrUnbound) {
		fmt.Println("  after release:", err)
	}

	b := blob.New("Hello", "World")
	p := blob.NewPtr(b, 0)
	seen, err := walk(p)
	fmt.Printf("  walked %v, stopped with: %v\n", seen, err)
	b.Release()
}
