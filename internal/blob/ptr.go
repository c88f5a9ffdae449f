package blob

// Ptr is a non-owning cursor into a Blob. It does not keep the sequence
// alive; every operation first checks that it still exists.
//
// The zero value is an unbound Ptr: every operation returns ErrUnbound.
type Ptr[T any] struct {
	s    *shared[T]
	curr int
}

// StrBlobPtr is the string instantiation.
type StrBlobPtr = Ptr[string]

// NewPtr returns a cursor at position idx of b's sequence. A released b
// yields an unbound Ptr.
func NewPtr[T any](b *Blob[T], idx int) *Ptr[T] {
	return &Ptr[T]{s: b.s, curr: idx}
}

// lock is the liveness check: the sequence must still exist and i must be
// a valid position in it.
func (p *Ptr[T]) lock(i int, op string) (*shared[T], error) {
	if p.s == nil || !p.s.alive {
		return nil, ErrUnbound
	}
	if i < 0 || i >= len(p.s.data) {
		return nil, &RangeError{Op: op, Index: i, Len: len(p.s.data)}
	}
	return p.s, nil
}

// Pos reports the current position.
func (p *Ptr[T]) Pos() int { return p.curr }

// Deref returns the element under the cursor.
func (p *Ptr[T]) Deref() (T, error) {
	s, err := p.lock(p.curr, "dereference past end")
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[p.curr], nil
}

// Set writes v under the cursor; every owner of the sequence observes it.
func (p *Ptr[T]) Set(v T) error {
	s, err := p.lock(p.curr, "dereference past end")
	if err != nil {
		return err
	}
	s.data[p.curr] = v
	return nil
}

// Incr advances the cursor. It fails when the cursor is already past the
// last element.
func (p *Ptr[T]) Incr() error {
	if _, err := p.lock(p.curr, "increment past end"); err != nil {
		return err
	}
	p.curr++
	return nil
}

// Decr moves the cursor back. It fails, leaving the cursor unchanged, when
// the cursor is already at the first element.
func (p *Ptr[T]) Decr() error {
	if _, err := p.lock(p.curr-1, "decrement past begin"); err != nil {
		return err
	}
	p.curr--
	return nil
}

// Next advances the cursor and returns a copy positioned where it was.
func (p *Ptr[T]) Next() (Ptr[T], error) {
	prev := *p
	if err := p.Incr(); err != nil {
		return prev, err
	}
	return prev, nil
}

// Prev moves the cursor back and returns a copy positioned where it was.
func (p *Ptr[T]) Prev() (Ptr[T], error) {
	prev := *p
	if err := p.Decr(); err != nil {
		return prev, err
	}
	return prev, nil
}
