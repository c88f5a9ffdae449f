package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// ── Buffering ────────────────────────────────────────────────────────────────
// os.Stdout is not buffered: every Write is a system call, the same as a
// stream in unitbuf mode. bufio.Writer collects writes until Flush or until
// its buffer fills.

// bufferedState writes msg through a bufio.Writer over dst and reports what
// dst held before and after Flush.
func bufferedState(msg string) (before, after string) {
	var dst bytes.Buffer
	w := bufio.NewWriter(&dst)
	fmt.Fprint(w, msg)
	before = dst.String()
	w.Flush()
	return before, dst.String()
}

func demoBuffering() {
	fmt.Println("  Hello World!")

	before, after := bufferedState("hi!")
	fmt.Printf("  before Flush: %q  after Flush: %q\n", before, after)

	// A nul byte is just data; nothing terminates Go strings.
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "  hi!%c (with a trailing NUL)\n", 0)
	w.Flush()
}

// ── Scan state ───────────────────────────────────────────────────────────────
// There is no fail bit to clear: each Fscan call returns an error and the
// caller decides whether to skip the bad token and go on.

// sumInts adds every integer token in r and counts the tokens it skipped.
func sumInts(r io.Reader) (sum, skipped int) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		var n int
		if _, err := fmt.Sscan(sc.Text(), &n); err != nil {
			skipped++
			continue
		}
		sum += n
	}
	return sum, skipped
}

func demoScanState() {
	sum, skipped := sumInts(strings.NewReader("1 2 three 4\n5 x"))
	fmt.Printf("  sum=%d skipped=%d\n", sum, skipped)
}
