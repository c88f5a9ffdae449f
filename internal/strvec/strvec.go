// Package strvec provides StrVec, a growable vector of strings that manages
// its own storage instead of leaning on append.
//
// Raw storage comes from an Allocator. Elements are constructed into that
// storage one at a time, destroyed last-to-first, and only then is the
// storage handed back. Growth doubles the capacity (starting at 1), so a
// sequence of N PushBack calls costs amortized O(1) each.
//
// Lifecycle:
//
//	v := strvec.Of("Alice", "Bob")  // exact-size buffer, cap == len
//	v.PushBack("Calvin")             // reallocates to cap 4
//	w := v.Clone()                   // deep copy, independent buffer
//	u := v.Take()                    // u owns the buffer, v is empty
//	u.Free()                         // destroy elements, release storage
package strvec

import (
	"fmt"
	"io"
	"iter"
	"log"
	"slices"
	"strings"
)

// Allocator hands out raw string storage and manages the lifetime of the
// elements placed in it.
type Allocator interface {
	// Allocate returns unconstructed storage for n elements.
	Allocate(n int) []string
	// Construct places v into an unconstructed slot.
	Construct(slot *string, v string)
	// Destroy ends the lifetime of the element in slot.
	Destroy(slot *string)
	// Deallocate releases storage obtained from Allocate. Every element in it
	// must already have been destroyed.
	Deallocate(buf []string)
}

// heapAllocator is the default Allocator: storage is a plain slice and
// destroying an element clears it so the GC can reclaim the string data.
type heapAllocator struct{}

func (heapAllocator) Allocate(n int) []string          { return make([]string, n) }
func (heapAllocator) Construct(slot *string, v string) { *slot = v }
func (heapAllocator) Destroy(slot *string)             { *slot = "" }
func (heapAllocator) Deallocate([]string)              {}

// Config holds StrVec construction parameters. The zero value is valid.
type Config struct {
	// Allocator supplies storage. If nil, a slice-backed allocator is used.
	Allocator Allocator

	// Logger receives reallocation traces. If nil, output is discarded.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Allocator == nil {
		c.Allocator = heapAllocator{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c
}

// StrVec is an owning, contiguous vector of strings.
//
// buf holds the whole allocation (len(buf) is the capacity); the constructed
// elements are buf[:n]. The zero value is an empty vector ready to use.
type StrVec struct {
	cfg Config
	buf []string
	n   int
}

// New returns an empty vector using cfg.
func New(cfg Config) *StrVec {
	return &StrVec{cfg: cfg.withDefaults()}
}

// NewFrom returns a vector holding values in a buffer of exactly len(values).
func NewFrom(cfg Config, values ...string) *StrVec {
	v := New(cfg)
	v.buf, v.n = v.allocNCopy(values)
	return v
}

// Of is NewFrom with the default configuration.
func Of(values ...string) *StrVec {
	return NewFrom(Config{}, values...)
}

func (v *StrVec) config() Config {
	if v.cfg.Allocator == nil || v.cfg.Logger == nil {
		v.cfg = v.cfg.withDefaults()
	}
	return v.cfg
}

// Len reports the number of constructed elements.
func (v *StrVec) Len() int { return v.n }

// Cap reports the number of elements the current buffer can hold.
func (v *StrVec) Cap() int { return len(v.buf) }

// PushBack appends s, reallocating first when the buffer is full.
func (v *StrVec) PushBack(s string) {
	v.chkNAlloc()
	v.config().Allocator.Construct(&v.buf[v.n], s)
	v.n++
}

// EmplaceBack constructs the new last element directly in its slot from
// the concatenation of parts.
func (v *StrVec) EmplaceBack(parts ...string) {
	v.chkNAlloc()
	v.config().Allocator.Construct(&v.buf[v.n], strings.Join(parts, ""))
	v.n++
}

// At returns the element at i, or a *RangeError when i is out of bounds.
func (v *StrVec) At(i int) (string, error) {
	if i < 0 || i >= v.n {
		return "", &RangeError{Op: "at", Index: i, Len: v.n}
	}
	return v.buf[i], nil
}

// Index returns a pointer to the element at i. Like indexing a slice, it
// panics when i is out of range.
func (v *StrVec) Index(i int) *string {
	return &v.buf[:v.n][i]
}

// All iterates over the constructed elements in order.
func (v *StrVec) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (v *StrVec) Values() []string {
	return slices.Clone(v.buf[:v.n])
}

// String formats the elements like a slice: [a b c].
func (v *StrVec) String() string {
	return fmt.Sprint(v.buf[:v.n])
}

// ── Copy ─────────────────────────────────────────────────────────────────────

// Clone returns a deep copy whose buffer is sized exactly to v.Len().
func (v *StrVec) Clone() *StrVec {
	out := &StrVec{cfg: v.config()}
	out.buf, out.n = out.allocNCopy(v.buf[:v.n])
	return out
}

// CopyFrom replaces the contents of v with a copy of src. The new buffer is
// fully built before the old one is released, so v.CopyFrom(v) is safe.
func (v *StrVec) CopyFrom(src *StrVec) {
	buf, n := v.allocNCopy(src.buf[:src.n])
	v.free()
	v.buf, v.n = buf, n
}

// Assign replaces the contents of v with values.
func (v *StrVec) Assign(values ...string) {
	buf, n := v.allocNCopy(values)
	v.free()
	v.buf, v.n = buf, n
}

// ── Move ─────────────────────────────────────────────────────────────────────

// Take transfers ownership of v's buffer to a new vector. v is left empty
// with zero capacity and remains usable.
func (v *StrVec) Take() *StrVec {
	out := &StrVec{cfg: v.config(), buf: v.buf, n: v.n}
	v.buf, v.n = nil, 0
	return out
}

// MoveFrom releases v's buffer and takes ownership of src's. src is left
// empty with zero capacity. Moving a vector into itself is a no-op.
func (v *StrVec) MoveFrom(src *StrVec) {
	if v == src {
		return
	}
	v.free()
	v.buf, v.n = src.buf, src.n
	src.buf, src.n = nil, 0
}

// ── Destruction ──────────────────────────────────────────────────────────────

// Free destroys every element, last to first, and releases the buffer.
// The vector is empty afterwards and may be reused.
func (v *StrVec) Free() {
	v.free()
	v.buf, v.n = nil, 0
}

// free destroys buf[:n] in reverse order and deallocates buf without
// resetting the fields; callers install the replacement state.
func (v *StrVec) free() {
	if v.buf == nil {
		return
	}
	alloc := v.config().Allocator
	for p := v.n; p > 0; {
		p--
		alloc.Destroy(&v.buf[p])
	}
	alloc.Deallocate(v.buf)
}

// ── Growth ───────────────────────────────────────────────────────────────────

func (v *StrVec) chkNAlloc() {
	if v.n == len(v.buf) {
		v.reallocate()
	}
}

// reallocate moves the elements into a buffer of max(1, 2*Len()) slots.
// The moved-from slots are left empty and destroyed with the old buffer.
func (v *StrVec) reallocate() {
	cfg := v.config()
	newCap := 1
	if v.n > 0 {
		newCap = 2 * v.n
	}

	next := cfg.Allocator.Allocate(newCap)
	for i := 0; i < v.n; i++ {
		cfg.Allocator.Construct(&next[i], v.buf[i])
		v.buf[i] = ""
	}

	cfg.Logger.Printf("[strvec] reallocate: len=%d cap %d → %d", v.n, len(v.buf), newCap)

	v.free()
	v.buf = next
}

// allocNCopy allocates exactly len(src) slots and copy-constructs src into
// them.
func (v *StrVec) allocNCopy(src []string) ([]string, int) {
	if len(src) == 0 {
		return nil, 0
	}
	alloc := v.config().Allocator
	buf := alloc.Allocate(len(src))
	for i, s := range src {
		alloc.Construct(&buf[i], s)
	}
	return buf, len(src)
}
