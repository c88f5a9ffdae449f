package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/primer/internal/strvec"
)

// tracingAllocator records every step a StrVec takes over its storage.
type tracingAllocator struct {
	w io.Writer
}

func (a tracingAllocator) Allocate(n int) []string {
	fmt.Fprintf(a.w, "allocate %d\n", n)
	return make([]string, n)
}

func (a tracingAllocator) Construct(slot *string, v string) {
	fmt.Fprintf(a.w, "construct %q\n", v)
	*slot = v
}

func (a tracingAllocator) Destroy(slot *string) {
	fmt.Fprintf(a.w, "destroy %q\n", *slot)
	*slot = ""
}

func (a tracingAllocator) Deallocate(buf []string) {
	fmt.Fprintf(a.w, "deallocate %d\n", len(buf))
}

// buildAndFree constructs an empty string, ten c's and "hi" into fresh
// storage and frees it again, tracing to w.
func buildAndFree(w io.Writer) {
	v := strvec.NewFrom(strvec.Config{Allocator: tracingAllocator{w: w}},
		"", strings.Repeat("c", 10), "hi")
	v.Free()
}

func demoAllocator() {
	var sb strings.Builder
	buildAndFree(&sb)
	for line := range strings.Lines(sb.String()) {
		fmt.Print("  ", line)
	}
}
