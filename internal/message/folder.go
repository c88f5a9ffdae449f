package message

import (
	"cmp"
	"maps"
	"slices"
)

// Folder is a named set of messages. Messages add and remove themselves;
// use Message.Save and Message.Remove rather than editing a Folder.
type Folder struct {
	Name string

	msgs map[*Message]struct{}
}

func NewFolder(name string) *Folder {
	return &Folder{Name: name, msgs: make(map[*Message]struct{})}
}

func (f *Folder) Len() int { return len(f.msgs) }

// Contains reports whether m is filed in f.
func (f *Folder) Contains(m *Message) bool {
	_, ok := f.msgs[m]
	return ok
}

// Messages returns the messages in f ordered by contents, then by ID.
func (f *Folder) Messages() []*Message {
	ms := slices.Collect(maps.Keys(f.msgs))
	slices.SortFunc(ms, func(a, b *Message) int {
		if c := cmp.Compare(a.contents, b.contents); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return ms
}

// Clear takes every message out of f, updating each message as well.
func (f *Folder) Clear() {
	for m := range f.msgs {
		delete(m.folders, f)
	}
	clear(f.msgs)
}

func (f *Folder) addMsg(m *Message) {
	if f.msgs == nil {
		f.msgs = make(map[*Message]struct{})
	}
	f.msgs[m] = struct{}{}
}

func (f *Folder) remMsg(m *Message) { delete(f.msgs, m) }
