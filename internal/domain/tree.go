// Package domain implements the editing core of a test book: the document
// tree and its structural operations, the clipboard and the undo history.
//
// The tree is mutated from a single goroutine. Operations whose preconditions
// are the caller's responsibility (dangling ids, deleting the root, adding
// under a test) panic with an assertion error; Editor checks user input
// before calling them.
package domain

import (
	"slices"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/testbook/internal/model"
)

// NewGroupName is the name given to groups created by Add and GroupNodes.
const NewGroupName = "New group"

// Tree owns a document and the auxiliary id sets that refer into it: the
// selection, the open editor tabs and the nodes hidden by the filter.
type Tree struct {
	doc      *m.Document
	selected map[m.ID]struct{}
	tabs     []m.ID
	hidden   map[m.ID]struct{}
	filter   string
}

// NewTree returns a tree over a new document holding only the root group.
func NewTree() *Tree {
	return NewTreeFrom(m.NewDocument())
}

// NewTreeFrom returns a tree over doc. doc must satisfy the tree invariants.
func NewTreeFrom(doc *m.Document) *Tree {
	return &Tree{
		doc:      doc,
		selected: make(map[m.ID]struct{}),
		hidden:   make(map[m.ID]struct{}),
	}
}

// Document returns the live document. Callers must not modify it directly.
func (t *Tree) Document() *m.Document {
	return t.doc
}

// Replace swaps in doc, which must satisfy the tree invariants, and prunes the
// auxiliary sets of ids that no longer exist.
func (t *Tree) Replace(doc *m.Document) {
	t.doc = doc

	for id := range t.selected {
		if !t.Exists(id) {
			delete(t.selected, id)
		}
	}

	t.tabs = slices.DeleteFunc(t.tabs, func(id m.ID) bool { return !t.Exists(id) })
	t.Filter(t.filter)
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.doc.Nodes)
}

func (t *Tree) Exists(id m.ID) bool {
	_, ok := t.doc.Nodes[id]
	return ok
}

func (t *Tree) IsGroup(id m.ID) bool {
	_, ok := t.doc.Nodes[id].(*m.Group)
	return ok
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id m.ID) m.Node {
	return t.doc.Nodes[id]
}

// Test returns the test with the given id, or nil.
func (t *Tree) Test(id m.ID) *m.Test {
	test, _ := t.doc.Nodes[id].(*m.Test)
	return test
}

// Group returns the group with the given id, or nil.
func (t *Tree) Group(id m.ID) *m.Group {
	group, _ := t.doc.Nodes[id].(*m.Group)
	return group
}

// Root returns the root group.
func (t *Tree) Root() *m.Group {
	return t.mustGroup(m.RootID)
}

func (t *Tree) mustNode(id m.ID) m.Node {
	n, ok := t.doc.Nodes[id]
	if !ok {
		panic(errors.AssertionFailedf("node %d does not exist", id))
	}

	return n
}

func (t *Tree) mustGroup(id m.ID) *m.Group {
	g, ok := t.mustNode(id).(*m.Group)
	if !ok {
		panic(errors.AssertionFailedf("node %d is not a group", id))
	}

	return g
}

// Add creates a node of the given kind as the last child of parent and
// returns its id. parent must be a group.
func (t *Tree) Add(parent m.ID, kind m.Kind) m.ID {
	g := t.mustGroup(parent)
	id := t.doc.Alloc()

	switch kind {
	case m.KindTest:
		t.doc.Nodes[id] = m.NewTest(parent, id)
	case m.KindGroup:
		t.doc.Nodes[id] = m.NewGroup(parent, id, NewGroupName)
	default:
		panic(errors.AssertionFailedf("unknown node kind %d", kind))
	}

	g.Children = append(g.Children, id)

	return id
}

// Delete removes id and all of its descendants and returns how many nodes
// were removed. Deleted ids are pruned from the selection, the open tabs and
// the filter set. The root cannot be deleted.
func (t *Tree) Delete(id m.ID) int {
	if id == m.RootID {
		panic(errors.AssertionFailedf("cannot delete the root group"))
	}

	parent := t.mustGroup(t.mustNode(id).Meta().ParentID)
	removed := t.deleteSubtree(id)
	parent.Children = removeID(parent.Children, id)

	return removed
}

// deleteSubtree erases id after its descendants, post-order.
func (t *Tree) deleteSubtree(id m.ID) int {
	removed := 1

	if g, ok := t.doc.Nodes[id].(*m.Group); ok {
		for _, child := range g.Children {
			removed += t.deleteSubtree(child)
		}
	}

	delete(t.doc.Nodes, id)
	t.forget(id)

	return removed
}

func (t *Tree) forget(id m.ID) {
	delete(t.selected, id)
	delete(t.hidden, id)
	t.tabs = removeID(t.tabs, id)
}

func removeID(ids []m.ID, id m.ID) []m.ID {
	ids = slices.DeleteFunc(ids, func(x m.ID) bool { return x == id })
	if len(ids) == 0 {
		return nil
	}

	return ids
}

// IsAncestorOrSelf reports whether ancestor is id or lies on the path from id
// to the root.
func (t *Tree) IsAncestorOrSelf(ancestor, id m.ID) bool {
	for cur := id; cur != m.NoParent; {
		if cur == ancestor {
			return true
		}

		n, ok := t.doc.Nodes[cur]
		if !ok {
			return false
		}

		cur = n.Meta().ParentID
	}

	return false
}

// Depth returns the number of ancestors of id.
func (t *Tree) Depth(id m.ID) int {
	depth := 0
	for cur := t.mustNode(id).Meta().ParentID; cur != m.NoParent; cur = t.mustNode(cur).Meta().ParentID {
		depth++
	}

	return depth
}

// Walk visits id and its descendants in pre-order, following the children
// order. fn receives the depth relative to id; returning false skips the
// node's children.
func (t *Tree) Walk(id m.ID, fn func(n m.Node, depth int) bool) {
	t.walk(t.mustNode(id), 0, fn)
}

func (t *Tree) walk(n m.Node, depth int, fn func(m.Node, int) bool) {
	if !fn(n, depth) {
		return
	}

	if g, ok := n.(*m.Group); ok {
		for _, child := range g.Children {
			t.walk(t.mustNode(child), depth+1, fn)
		}
	}
}

// Descendants returns the number of nodes below id.
func (t *Tree) Descendants(id m.ID) int {
	count := -1

	t.Walk(id, func(m.Node, int) bool {
		count++
		return true
	})

	return count
}
