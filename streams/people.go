package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/primer/internal/person"
)

// demoPeople parses records from in and prints one line per person.
func demoPeople(in io.Reader, out io.Writer) error {
	people, err := person.Parse(in)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Fprintln(out, "  (no records on stdin)")
		return nil
	}
	for _, p := range people {
		fmt.Fprintf(out, "  %-10s %s\n", p.Name, strings.Join(p.Phones, ", "))
	}
	return nil
}
