package domain

import (
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

// History is a linear undo/redo buffer of full document snapshots. A snapshot
// is never modified once pushed.
type History struct {
	snapshots [][]byte
	index     int
	saved     uint64
}

// NewHistory returns a history holding doc as its only entry.
func NewHistory(doc *m.Document) *History {
	h := &History{}
	h.Reset(doc)

	return h
}

// Push records doc after an edit. Entries after the current one, the stale
// redo branch, are discarded.
func (h *History) Push(doc *m.Document) {
	snapshot := codec.Marshal(doc)

	clear(h.snapshots[h.index+1:])
	h.snapshots = append(h.snapshots[:h.index+1], snapshot)
	h.index = len(h.snapshots) - 1
}

// Reset drops every entry and records doc as the only one.
func (h *History) Reset(doc *m.Document) {
	clear(h.snapshots)
	h.snapshots = h.snapshots[:0]
	h.index = -1
	h.Push(doc)
}

func (h *History) CanUndo() bool {
	return h.index > 0
}

func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Index returns the position of the current snapshot.
func (h *History) Index() int {
	return h.index
}

// Current returns the encoded document of the current entry. The slice must
// not be modified.
func (h *History) Current() []byte {
	return h.snapshots[h.index]
}

// Undo steps back one entry and replaces t's document with it. Callers must
// check CanUndo first.
func (h *History) Undo(t *Tree) {
	if !h.CanUndo() {
		panic(errors.AssertionFailedf("undo at history index %d", h.index))
	}

	h.index--
	h.restore(t)
}

// Redo steps forward one entry and replaces t's document with it. Callers
// must check CanRedo first.
func (h *History) Redo(t *Tree) {
	if !h.CanRedo() {
		panic(errors.AssertionFailedf("redo at history index %d of %d", h.index, len(h.snapshots)))
	}

	h.index++
	h.restore(t)
}

func (h *History) restore(t *Tree) {
	doc := &m.Document{}
	if err := codec.Unmarshal(h.snapshots[h.index], doc); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "history snapshot %d", h.index))
	}

	t.Replace(doc)
}

// MarkSaved records the current entry as the state last written to disk.
func (h *History) MarkSaved() {
	h.saved = xxhash.Sum64(h.snapshots[h.index])
}

// Modified reports whether the current entry differs from the one recorded by
// MarkSaved.
func (h *History) Modified() bool {
	return xxhash.Sum64(h.snapshots[h.index]) != h.saved
}
