package main

import (
	"fmt"
	"log"
	"os"

	"github.com/marcodamonte/primer/internal/strvec"
)

func demoStrVec() {
	v := strvec.NewFrom(strvec.Config{Logger: log.New(os.Stdout, "  ", 0)}, "Alice", "Bob", "Calvin")
	v.PushBack("David")
	s := "Eve"
	v.PushBack(s)
	fmt.Println("  size/capacity:", v.Len(), v.Cap())

	c := v.Clone()
	c.PushBack("Frank")
	fmt.Println("  clone:", c, " original:", v)

	m := v.Take()
	fmt.Printf("  moved: %v  source len=%d cap=%d\n", m, v.Len(), v.Cap())
	m.Free()
	c.Free()
}
