package main

import (
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/marcodamonte/primer/internal/strvec"
)

// ── Capacidad ────────────────────────────────────────────────────────────────
// append duplica la capacidad mientras el slice es chico (el factor baja para
// slices grandes). slices.Grow reserva por adelantado y slices.Clip recorta
// cap a len, como shrink_to_fit.

func demoCapacity() {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	fmt.Print("  ", cap(v), " ")
	v = append(v, 10)
	fmt.Print(cap(v), " ")
	v = slices.Clip(v)
	fmt.Println(cap(v))

	var ivec []int
	report := func() { fmt.Printf("  ivec: size: %d capacity: %d\n", len(ivec), cap(ivec)) }
	report()
	for ix := 0; ix != 24; ix++ {
		ivec = append(ivec, ix)
	}
	report()
	ivec = slices.Grow(ivec, 50-len(ivec))
	report()
	for len(ivec) != cap(ivec) {
		ivec = append(ivec, 0)
	}
	report()
	ivec = append(ivec, 42)
	report()
	ivec = slices.Clip(ivec)
	report()

	// StrVec makes the doubling rule explicit and logs each reallocation.
	sv := strvec.New(strvec.Config{Logger: log.New(os.Stdout, "  ", 0)})
	for _, name := range []string{"Alice", "Bob", "Calvin", "David", "Eve"} {
		sv.PushBack(name)
	}
	fmt.Printf("  StrVec %v size=%d capacity=%d\n", sv, sv.Len(), sv.Cap())
	sv.Free()
}
