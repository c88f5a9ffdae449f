// Package person parses "name phone phone..." records, one per line.
package person

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Info is one parsed record.
type Info struct {
	Name   string   `yaml:"name"`
	Phones []string `yaml:"phones,omitempty"`
}

// Parse reads one record per non-blank line of r. The first word is the
// name and every following word is a phone number.
func Parse(r io.Reader) ([]Info, error) {
	var people []Info
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		info := Info{Name: fields[0]}
		if len(fields) > 1 {
			info.Phones = fields[1:]
		}
		people = append(people, info)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return people, nil
}

// WriteYAML encodes people as a YAML sequence.
func WriteYAML(w io.Writer, people []Info) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(people); err != nil {
		return fmt.Errorf("encode people: %w", err)
	}
	return enc.Close()
}
