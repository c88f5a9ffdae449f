// Package blob provides Blob, a sequence shared by several handles, and Ptr,
// a non-owning cursor over it.
//
// Every handle returned by New or Share keeps the sequence alive; the
// sequence is destroyed when the last handle calls Release. A Ptr does not
// count as an owner: before each use it re-checks that the sequence still
// exists and fails with ErrUnbound when it does not.
//
//	names := blob.New("Hello", "World")
//	alias := names.Share()        // UseCount() == 2
//	p := blob.NewPtr(names, 0)
//	names.Release()               // alias still owns the data
//	alias.Release()               // data destroyed
//	_, err := p.Deref()           // errors.Is(err, blob.ErrUnbound)
package blob

import (
	"io"
	"iter"
	"log"
	"slices"
)

// Config holds optional hooks for a Blob. The zero value is valid.
type Config[T any] struct {
	// OnDestroy is called once with the elements when the last handle is
	// released.
	OnDestroy func([]T)

	// Logger receives ownership traces. If nil, output is discarded.
	Logger *log.Logger
}

func (c Config[T]) withDefaults() Config[T] {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c
}

// shared is the control block every handle and Ptr points to.
type shared[T any] struct {
	cfg   Config[T]
	data  []T
	refs  int
	alive bool
}

func (s *shared[T]) release() {
	s.refs--
	s.cfg.Logger.Printf("[blob] release: use_count=%d", s.refs)
	if s.refs > 0 {
		return
	}
	data := s.data
	s.data, s.alive = nil, false
	s.cfg.Logger.Printf("[blob] destroyed %d element(s)", len(data))
	if s.cfg.OnDestroy != nil {
		s.cfg.OnDestroy(data)
	}
}

// Blob is one owning handle to a shared sequence.
type Blob[T any] struct {
	s *shared[T]
}

// StrBlob is the string instantiation.
type StrBlob = Blob[string]

// New returns the first handle to a sequence holding vals.
func New[T any](vals ...T) *Blob[T] {
	return NewWithConfig(Config[T]{}, vals...)
}

// NewWithConfig is New with hooks.
func NewWithConfig[T any](cfg Config[T], vals ...T) *Blob[T] {
	return &Blob[T]{s: &shared[T]{
		cfg:   cfg.withDefaults(),
		data:  slices.Clone(vals),
		refs:  1,
		alive: true,
	}}
}

// FromSeq builds a Blob from any iterator, the way a range constructor
// accepts a pair of iterators of a different container.
func FromSeq[T any](seq iter.Seq[T]) *Blob[T] {
	return New(slices.Collect(seq)...)
}

// mustLive panics when b was released; using a released owner is a bug in
// the caller, not a runtime condition.
func (b *Blob[T]) mustLive() *shared[T] {
	if b.s == nil {
		panic("blob: use of released handle")
	}
	return b.s
}

// Share returns another owning handle to the same sequence.
func (b *Blob[T]) Share() *Blob[T] {
	s := b.mustLive()
	s.refs++
	return &Blob[T]{s: s}
}

// Release gives up this handle. The sequence is destroyed when no handle
// remains. Releasing twice is a no-op.
func (b *Blob[T]) Release() {
	if b.s == nil {
		return
	}
	s := b.s
	b.s = nil
	s.release()
}

// Released reports whether Release has been called on this handle.
func (b *Blob[T]) Released() bool { return b.s == nil }

// UseCount reports how many handles share the sequence (0 once released).
func (b *Blob[T]) UseCount() int {
	if b.s == nil {
		return 0
	}
	return b.s.refs
}

func (b *Blob[T]) Len() int {
	if b.s == nil {
		return 0
	}
	return len(b.s.data)
}

func (b *Blob[T]) Empty() bool { return b.Len() == 0 }

// PushBack appends v; every handle observes the new element.
func (b *Blob[T]) PushBack(v T) {
	s := b.mustLive()
	s.data = append(s.data, v)
}

// check validates i against the current contents.
func (b *Blob[T]) check(i int, op string) (*shared[T], error) {
	if b.s == nil {
		return nil, ErrReleased
	}
	if i < 0 || i >= len(b.s.data) {
		return nil, &RangeError{Op: op, Index: i, Len: len(b.s.data)}
	}
	return b.s, nil
}

// PopBack removes the last element.
func (b *Blob[T]) PopBack() error {
	s, err := b.check(0, "pop_back")
	if err != nil {
		return err
	}
	var zero T
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]
	return nil
}

func (b *Blob[T]) Front() (T, error) {
	s, err := b.check(0, "front")
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[0], nil
}

func (b *Blob[T]) Back() (T, error) {
	s, err := b.check(0, "back")
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[len(s.data)-1], nil
}

// At returns the element at i.
func (b *Blob[T]) At(i int) (T, error) {
	s, err := b.check(i, "at")
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[i], nil
}

// Set overwrites the element at i.
func (b *Blob[T]) Set(i int, v T) error {
	s, err := b.check(i, "set")
	if err != nil {
		return err
	}
	s.data[i] = v
	return nil
}

// Values returns a copy of the elements.
func (b *Blob[T]) Values() []T {
	if b.s == nil {
		return nil
	}
	return slices.Clone(b.s.data)
}

// All iterates over the elements in order.
func (b *Blob[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if b.s == nil {
			return
		}
		for i, v := range b.s.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Blob[T]) bool {
	return slices.Equal(a.Values(), b.Values())
}
