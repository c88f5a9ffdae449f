package main

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// padInternal right-aligns v in width characters, filling with fill between
// the sign and the digits.
func padInternal(v string, width int, fill byte) string {
	if len(v) >= width {
		return v
	}
	sign := ""
	if strings.HasPrefix(v, "-") || strings.HasPrefix(v, "+") {
		sign, v = v[:1], v[1:]
	}
	return sign + strings.Repeat(string(fill), width-len(v)-len(sign)) + v
}

// localized formats n with the digit grouping of tag.
func localized(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}

func demoFormatting() {
	fmt.Printf("  bools: %v %v / %t %t\n", 1, 0, true, false)

	fmt.Printf("  default: %d %d\n", 20, 1024)
	fmt.Printf("  octal:   %o %o  with base: %#o %#o\n", 20, 1024, 20, 1024)
	fmt.Printf("  hex:     %x %x  with base: %#x %#x\n", 20, 1024, 20, 1024)

	sqrt2 := math.Sqrt(2)
	fmt.Printf("  precision 6: %g  12: %.12g  3: %.3g\n", sqrt2, sqrt2, sqrt2)
	v := 100 * sqrt2
	fmt.Printf("  default %g  scientific %e  fixed %f  hexfloat %x\n", v, v, v, v)
	fmt.Printf("  10.0 → %v, with point: %#g\n", 10.0, 10.0)

	i, d := -16, 3.14159
	fmt.Printf("  i: %12d|next col\n  d: %12g|next col\n", i, d)
	fmt.Printf("  i: %-12d|next col\n  d: %-12g|next col\n", i, d)
	fmt.Printf("  i: %s|next col\n  d: %s|next col\n",
		padInternal(fmt.Sprint(i), 12, '#'), padInternal(fmt.Sprint(d), 12, '#'))

	fmt.Println("  en:", localized(language.English, 1234567), " de:", localized(language.German, 1234567))
}
