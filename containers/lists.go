package main

import (
	"container/list"
	"fmt"
	"strings"
)

// ── container/list ───────────────────────────────────────────────────────────
// A doubly linked list. Removing an element does not disturb the others, so
// erase-while-iterating keeps the next pointer before calling Remove.

func listString(l *list.List) string {
	var parts []string
	for e := l.Front(); e != nil; e = e.Next() {
		parts = append(parts, fmt.Sprint(e.Value))
	}
	return strings.Join(parts, " ")
}

func listOf[T any](vals ...T) *list.List {
	l := list.New()
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

// removeOdd erases every odd element of a list of ints.
func removeOdd(l *list.List) {
	for e := l.Front(); e != nil; {
		next := e.Next()
		if e.Value.(int)%2 != 0 {
			l.Remove(e)
		}
		e = next
	}
}

// insertEachAtFront inserts every word before the previously inserted one,
// which reverses them.
func insertEachAtFront(words []string) *list.List {
	l := list.New()
	var at *list.Element
	for _, w := range words {
		if at == nil {
			at = l.PushFront(w)
		} else {
			at = l.InsertBefore(w, at)
		}
	}
	return l
}

// ── forwardList ──────────────────────────────────────────────────────────────
// A singly linked list can only unlink the node after a known one, so
// erasing needs the predecessor. A sentinel head plays before_begin.

type node[T any] struct {
	val  T
	next *node[T]
}

type forwardList[T any] struct {
	head node[T] // sentinel
}

func newForwardList[T any](vals ...T) *forwardList[T] {
	fl := &forwardList[T]{}
	tail := &fl.head
	for _, v := range vals {
		tail.next = &node[T]{val: v}
		tail = tail.next
	}
	return fl
}

// eraseAfter unlinks the node after prev and returns the one that follows.
func (fl *forwardList[T]) eraseAfter(prev *node[T]) *node[T] {
	prev.next = prev.next.next
	return prev.next
}

// removeIf erases every element for which pred is true.
func (fl *forwardList[T]) removeIf(pred func(T) bool) {
	prev, curr := &fl.head, fl.head.next
	for curr != nil {
		if pred(curr.val) {
			curr = fl.eraseAfter(prev)
		} else {
			prev, curr = curr, curr.next
		}
	}
}

func (fl *forwardList[T]) values() []T {
	var out []T
	for n := fl.head.next; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

func demoLists() {
	ilist := list.New()
	for ix := 0; ix != 4; ix++ {
		ilist.PushFront(ix)
	}
	fmt.Println(" ", listString(ilist))

	fmt.Println(" ", listString(insertEachAtFront([]string{"Hello", "World", "!"})))

	lst := listOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	removeOdd(lst)
	fmt.Println("  evens:", listString(lst))

	flst := newForwardList(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	flst.removeIf(func(v int) bool { return v%2 == 0 })
	fmt.Println("  odds: ", flst.values())
}
