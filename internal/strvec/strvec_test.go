package strvec_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/primer/internal/strvec"
)

// recordingAllocator counts every lifecycle call so tests can check that
// each constructed element is destroyed exactly once.
type recordingAllocator struct {
	allocated   []int
	constructed int
	destroyed   []string
	deallocated int
}

func (r *recordingAllocator) Allocate(n int) []string {
	r.allocated = append(r.allocated, n)
	return make([]string, n)
}

func (r *recordingAllocator) Construct(slot *string, v string) {
	r.constructed++
	*slot = v
}

func (r *recordingAllocator) Destroy(slot *string) {
	r.destroyed = append(r.destroyed, *slot)
	*slot = ""
}

func (r *recordingAllocator) Deallocate([]string) { r.deallocated++ }

// ── Growth ───────────────────────────────────────────────────────────────────

// TestPushBack_DoublingFromEmpty checks the doubling rule from capacity 0:
// four appends observe capacities 1, 2, 4, 4.
func TestPushBack_DoublingFromEmpty(t *testing.T) {
	var v strvec.StrVec

	var caps []int
	for _, name := range []string{"Alice", "Bob", "Calvin", "David"} {
		v.PushBack(name)
		caps = append(caps, v.Cap())
	}

	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []int{1, 2, 4, 4}, caps)
	assert.Equal(t, []string{"Alice", "Bob", "Calvin", "David"}, v.Values())
}

// TestPushBack_FromExactBuffer mirrors a list-initialized vector: three
// elements in a buffer of three, then two more appends.
func TestPushBack_FromExactBuffer(t *testing.T) {
	v := strvec.Of("Alice", "Bob", "Calvin")
	require.Equal(t, 3, v.Cap())

	v.PushBack("David")
	v.PushBack("Eve")

	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 6, v.Cap())
	assert.Equal(t, "Calvin", *v.Index(2))
}

// TestPushBack_CapacityNeverBelowSize appends N elements and checks the
// capacity invariant after every step.
func TestPushBack_CapacityNeverBelowSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 1000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			v := strvec.New(strvec.Config{})
			for i := 0; i < n; i++ {
				v.PushBack(fmt.Sprint(i))
				require.GreaterOrEqual(t, v.Cap(), v.Len())
			}
			assert.Equal(t, n, v.Len())
		})
	}
}

func TestEmplaceBack(t *testing.T) {
	v := strvec.Of("Hello", "World", "!")
	v.EmplaceBack("!", "!", "!")

	assert.Equal(t, []string{"Hello", "World", "!", "!!!"}, v.Values())
}

func TestReallocateLogs(t *testing.T) {
	var buf bytes.Buffer
	v := strvec.New(strvec.Config{Logger: log.New(&buf, "", 0)})

	v.PushBack("a")
	v.PushBack("b")

	assert.Contains(t, buf.String(), "cap 0 → 1")
	assert.Contains(t, buf.String(), "cap 1 → 2")
}

// ── Access ───────────────────────────────────────────────────────────────────

func TestAt(t *testing.T) {
	v := strvec.Of("a", "b")

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = v.At(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, strvec.ErrOutOfRange))

	var rangeErr *strvec.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 2, rangeErr.Index)
	assert.Equal(t, 2, rangeErr.Len)
}

func TestIndexPanicsOutOfRange(t *testing.T) {
	v := strvec.Of("a")
	v.PushBack("b") // cap 2, len 2
	v.PushBack("c") // cap 4, len 3: slot 3 exists but is not constructed

	assert.Panics(t, func() { _ = v.Index(3) })
}

func TestAllStopsEarly(t *testing.T) {
	v := strvec.Of("a", "b", "c")

	var seen []string
	for i, s := range v.All() {
		seen = append(seen, s)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

// ── Copy ─────────────────────────────────────────────────────────────────────

// TestClone_Independent verifies a copy is equal by value and that mutating
// either side leaves the other untouched.
func TestClone_Independent(t *testing.T) {
	src := strvec.Of("Alice", "Bob")
	src.PushBack("Calvin")

	cp := src.Clone()
	assert.Equal(t, src.Values(), cp.Values())
	assert.Equal(t, cp.Len(), cp.Cap(), "clone buffer is sized exactly")

	*cp.Index(0) = "Zed"
	src.PushBack("David")

	assert.Equal(t, []string{"Alice", "Bob", "Calvin", "David"}, src.Values())
	assert.Equal(t, []string{"Zed", "Bob", "Calvin"}, cp.Values())
}

func TestCopyFrom(t *testing.T) {
	dst := strvec.Of("old")
	src := strvec.Of("x", "y")

	dst.CopyFrom(src)
	assert.Equal(t, []string{"x", "y"}, dst.Values())

	*src.Index(0) = "changed"
	assert.Equal(t, "x", *dst.Index(0))
}

// TestCopyFrom_Self must not destroy the source before the copy is built.
func TestCopyFrom_Self(t *testing.T) {
	v := strvec.Of("a", "b", "c")
	v.CopyFrom(v)

	assert.Equal(t, []string{"a", "b", "c"}, v.Values())
}

func TestAssign(t *testing.T) {
	v := strvec.Of("a")
	v.Assign("p", "q", "r")

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, "[p q r]", v.String())
}

// ── Move ─────────────────────────────────────────────────────────────────────

func TestTake_LeavesSourceEmpty(t *testing.T) {
	src := strvec.Of("Alice", "Bob", "Calvin")
	dst := src.Take()

	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
	assert.Equal(t, []string{"Alice", "Bob", "Calvin"}, dst.Values())

	// the moved-from vector is still usable
	src.PushBack("again")
	assert.Equal(t, 1, src.Len())
}

func TestMoveFrom(t *testing.T) {
	alloc := &recordingAllocator{}
	dst := strvec.NewFrom(strvec.Config{Allocator: alloc}, "old1", "old2")
	src := strvec.NewFrom(strvec.Config{Allocator: alloc}, "new")

	dst.MoveFrom(src)

	assert.Equal(t, []string{"new"}, dst.Values())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
	assert.Equal(t, []string{"old2", "old1"}, alloc.destroyed, "old buffer freed in reverse")
}

func TestMoveFrom_Self(t *testing.T) {
	v := strvec.Of("a", "b")
	v.MoveFrom(v)

	assert.Equal(t, []string{"a", "b"}, v.Values())
}

// ── Destruction ──────────────────────────────────────────────────────────────

// TestFree_ReverseOrderExactlyOnce checks that Free destroys each element
// once, last to first, and releases the buffer.
func TestFree_ReverseOrderExactlyOnce(t *testing.T) {
	alloc := &recordingAllocator{}
	v := strvec.NewFrom(strvec.Config{Allocator: alloc}, "a", "b", "c", "d")

	v.Free()

	assert.Equal(t, []string{"d", "c", "b", "a"}, alloc.destroyed)
	assert.Equal(t, 1, alloc.deallocated)
	assert.Equal(t, 0, v.Len())

	v.Free() // idempotent
	assert.Len(t, alloc.destroyed, 4)
}

// TestLifecycleBalanced pushes through several reallocations and checks that
// every construct, including the moves, is paired with one destroy.
func TestLifecycleBalanced(t *testing.T) {
	alloc := &recordingAllocator{}
	v := strvec.New(strvec.Config{Allocator: alloc})
	for i := 0; i < 9; i++ {
		v.PushBack(fmt.Sprint(i))
	}
	cp := v.Clone()

	v.Free()
	cp.Free()

	assert.Equal(t, alloc.constructed, len(alloc.destroyed))
	assert.Equal(t, len(alloc.allocated), alloc.deallocated)
	assert.Equal(t, []int{1, 2, 4, 8, 16, 9}, alloc.allocated)
}
