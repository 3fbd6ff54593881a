package domain

import (
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/codec"
)

// Lookup errors
var (
	// ErrNotFound indicates an id that is not part of the document.
	ErrNotFound = errors.New("node not found")

	// ErrNotGroup indicates an operation that needs a group was given a test.
	ErrNotGroup = errors.New("node is not a group")

	// ErrNotTest indicates an operation that needs a test was given a group.
	ErrNotTest = errors.New("node is not a test")

	// ErrRoot indicates an operation that cannot be applied to the root group.
	ErrRoot = errors.New("operation not allowed on the root group")
)

// Structural errors
var (
	// ErrCycle indicates a move or group that would place a node inside itself.
	ErrCycle = errors.New("cannot move a node into itself or its descendants")

	// ErrEmptySelection indicates an operation that needs at least one node.
	ErrEmptySelection = errors.New("no nodes selected")

	// ErrIDsExhausted indicates the document has no ids left to hand out.
	ErrIDsExhausted = errors.New("document has run out of node ids")
)

// Loading errors. Both satisfy errors.Is(err, codec.ErrInvalid), so callers
// can report every unreadable input the same way.
var (
	// ErrInconsistent indicates a decoded document whose links break the tree
	// invariants.
	ErrInconsistent = errors.Mark(errors.New("document links are inconsistent"), codec.ErrInvalid)

	// ErrCorruptClipboard indicates clipboard data that cannot be pasted.
	ErrCorruptClipboard = errors.Mark(errors.New("clipboard data is corrupt"), codec.ErrInvalid)
)

// History and clipboard errors
var (
	// ErrNothingToUndo indicates Undo at the start of the history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates Redo at the end of the history.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrClipboardEmpty indicates Paste before any Copy or Cut.
	ErrClipboardEmpty = errors.New("clipboard is empty")

	// ErrNoPath indicates Save on a document that was never opened or saved.
	ErrNoPath = errors.New("document has no file name")
)
