// Package message keeps messages and the folders that file them in sync.
//
// A Message records the folders it is saved in and every Folder records its
// messages. Each operation below updates both sides, so for every live pair
// m is in f's set exactly when f is in m's set.
package message

import (
	"cmp"
	"io"
	"log"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Config holds optional settings for a Message. The zero value is valid.
type Config struct {
	// Logger receives folder bookkeeping traces. If nil, output is discarded.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c
}

// Message is a piece of text that may be filed in several folders.
type Message struct {
	ID uuid.UUID

	cfg      Config
	contents string
	folders  map[*Folder]struct{}
}

// New returns a message that is not in any folder.
func New(contents string) *Message {
	return NewWithConfig(Config{}, contents)
}

func NewWithConfig(cfg Config, contents string) *Message {
	return &Message{
		ID:       uuid.New(),
		cfg:      cfg.withDefaults(),
		contents: contents,
		folders:  make(map[*Folder]struct{}),
	}
}

func (m *Message) Contents() string { return m.contents }

// Folders returns the folders holding m, sorted by name.
func (m *Message) Folders() []*Folder {
	fs := slices.Collect(maps.Keys(m.folders))
	slices.SortFunc(fs, func(a, b *Folder) int { return cmp.Compare(a.Name, b.Name) })
	return fs
}

// Save files m in f.
func (m *Message) Save(f *Folder) {
	m.folders[f] = struct{}{}
	f.addMsg(m)
	m.cfg.Logger.Printf("[message] %s saved in %q", m.short(), f.Name)
}

// Remove takes m out of f.
func (m *Message) Remove(f *Folder) {
	delete(m.folders, f)
	f.remMsg(m)
	m.cfg.Logger.Printf("[message] %s removed from %q", m.short(), f.Name)
}

// Clone returns a new message with the same contents, filed in the same
// folders as m.
func (m *Message) Clone() *Message {
	c := &Message{
		ID:       uuid.New(),
		cfg:      m.cfg,
		contents: m.contents,
		folders:  maps.Clone(m.folders),
	}
	c.addToFolders()
	return c
}

// CopyFrom makes m a copy of src: same contents and same folders. m keeps
// its ID. Copying a message onto itself changes nothing.
func (m *Message) CopyFrom(src *Message) {
	if m == src {
		return
	}
	m.removeFromFolders()
	m.contents = src.contents
	m.folders = maps.Clone(src.folders)
	m.addToFolders()
}

// Take returns a new message that replaces m in all of m's folders. m is
// left empty and in no folder.
func (m *Message) Take() *Message {
	dst := NewWithConfig(m.cfg, "")
	dst.MoveFrom(m)
	return dst
}

// MoveFrom replaces src with m in all of src's folders, after taking m out
// of its own. src is left empty and in no folder.
func (m *Message) MoveFrom(src *Message) {
	if m == src {
		return
	}
	m.removeFromFolders()
	m.contents, src.contents = src.contents, ""
	m.moveFolders(src)
}

// Destroy takes m out of every folder. m stays usable as an unfiled message.
func (m *Message) Destroy() {
	m.removeFromFolders()
	clear(m.folders)
}

// Swap exchanges the contents and folders of a and b.
func Swap(a, b *Message) {
	if a == b {
		return
	}
	a.removeFromFolders()
	b.removeFromFolders()
	a.folders, b.folders = b.folders, a.folders
	a.contents, b.contents = b.contents, a.contents
	a.addToFolders()
	b.addToFolders()
}

func (m *Message) addToFolders() {
	for f := range m.folders {
		f.addMsg(m)
	}
}

func (m *Message) removeFromFolders() {
	for f := range m.folders {
		f.remMsg(m)
	}
}

// moveFolders hands src's folder set to m and re-points every folder.
func (m *Message) moveFolders(src *Message) {
	m.folders = src.folders
	for f := range m.folders {
		f.remMsg(src)
		f.addMsg(m)
	}
	src.folders = make(map[*Folder]struct{})
	m.cfg.Logger.Printf("[message] %s took the folders of %s", m.short(), src.short())
}

func (m *Message) short() string { return m.ID.String()[:8] }
