package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/testbook/internal/model"
)

func TestHistory_New(t *testing.T) {
	h := NewHistory(NewTree().Document())

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Index())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_AddUndoRedo(t *testing.T) {
	tr := NewTree()
	h := NewHistory(tr.Document())

	id := tr.Add(m.RootID, m.KindTest)
	h.Push(tr.Document())
	require.Equal(t, 2, tr.Len())
	assert.True(t, h.CanUndo())

	h.Undo(tr)
	assert.Equal(t, 1, tr.Len())
	assert.False(t, tr.Exists(id))
	assert.True(t, h.CanRedo())

	h.Redo(tr)
	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr.Exists(id))
	assert.False(t, h.CanRedo())
	require.NoError(t, tr.Check())
}

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	tr := buildTree(t)
	h := NewHistory(tr.Document())

	states := [][]byte{encoded(tr)}
	edits := []func(){
		func() { tr.Add(apiID, m.KindGroup) },
		func() { tr.Delete(logoutID) },
		func() { require.NoError(t, tr.Move([]m.ID{healthID}, apiID)) },
		func() { tr.SortRecursive(m.RootID) },
		func() { tr.Ungroup(apiID) },
	}

	for _, edit := range edits {
		edit()
		h.Push(tr.Document())
		states = append(states, encoded(tr))
	}

	for i := len(states) - 2; i >= 0; i-- {
		h.Undo(tr)
		require.Equal(t, states[i], encoded(tr), "undo to %d", i)
		require.NoError(t, tr.Check())
	}

	assert.False(t, h.CanUndo())

	for i := 1; i < len(states); i++ {
		h.Redo(tr)
		require.Equal(t, states[i], encoded(tr), "redo to %d", i)
	}

	assert.False(t, h.CanRedo())
}

func TestHistory_PushDropsRedo(t *testing.T) {
	tr := NewTree()
	h := NewHistory(tr.Document())

	tr.Add(m.RootID, m.KindTest)
	h.Push(tr.Document())
	tr.Add(m.RootID, m.KindTest)
	h.Push(tr.Document())

	h.Undo(tr)
	h.Undo(tr)
	require.Equal(t, 3, h.Len())

	tr.Add(m.RootID, m.KindGroup)
	h.Push(tr.Document())

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Index())
	assert.False(t, h.CanRedo())
}

func TestHistory_Boundaries(t *testing.T) {
	tr := NewTree()
	h := NewHistory(tr.Document())

	assert.Panics(t, func() { h.Undo(tr) })
	assert.Panics(t, func() { h.Redo(tr) })
}

func TestHistory_SnapshotsAreIsolated(t *testing.T) {
	tr := buildTree(t)
	h := NewHistory(tr.Document())

	tr.Test(loginID).Endpoint = "/changed"
	h.Push(tr.Document())
	h.Undo(tr)

	assert.Equal(t, "/login", tr.Test(loginID).Endpoint)

	tr.Test(loginID).Endpoint = "/mutated after undo"
	h.Redo(tr)
	h.Undo(tr)

	assert.Equal(t, "/login", tr.Test(loginID).Endpoint)
}

func TestHistory_Modified(t *testing.T) {
	tr := NewTree()
	h := NewHistory(tr.Document())
	h.MarkSaved()

	assert.False(t, h.Modified())

	tr.Add(m.RootID, m.KindTest)
	h.Push(tr.Document())
	assert.True(t, h.Modified())

	h.Undo(tr)
	assert.False(t, h.Modified())

	h.Redo(tr)
	h.MarkSaved()
	assert.False(t, h.Modified())

	h.Reset(tr.Document())
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.Modified())
}
