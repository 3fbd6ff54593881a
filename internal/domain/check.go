package domain

import (
	"slices"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/testbook/internal/model"
)

// Check verifies the tree invariants of the document: a root group without a
// parent that defines client settings, map keys matching node ids below the
// counter, parent and children lists that mirror each other exactly, and every
// node reachable from the root once. Violations wrap ErrInconsistent.
func (t *Tree) Check() error {
	return CheckDocument(t.doc)
}

// CheckDocument is Check for a document that is not owned by a tree yet, such
// as one freshly decoded from disk.
func CheckDocument(doc *m.Document) error {
	root, ok := doc.Nodes[m.RootID].(*m.Group)
	if !ok {
		return errors.Wrap(ErrInconsistent, "missing root group")
	}

	if root.ParentID != m.NoParent {
		return errors.Wrapf(ErrInconsistent, "root has parent %d", root.ParentID)
	}

	if root.ClientSettings == nil {
		return errors.Wrap(ErrInconsistent, "root has no client settings")
	}

	// Keeping the counter at or below MaxCounter keeps every id below NoParent.
	if doc.Counter > m.MaxCounter {
		return errors.Wrapf(ErrInconsistent, "id counter %d out of range", doc.Counter)
	}

	for id, n := range doc.Nodes {
		h := n.Meta()
		if h.ID != id {
			return errors.Wrapf(ErrInconsistent, "node stored under %d has id %d", id, h.ID)
		}

		if id >= doc.Counter {
			return errors.Wrapf(ErrInconsistent, "node %d not below id counter %d", id, doc.Counter)
		}

		if id == m.RootID {
			continue
		}

		parent, ok := doc.Nodes[h.ParentID].(*m.Group)
		if !ok {
			return errors.Wrapf(ErrInconsistent, "node %d has no parent group %d", id, h.ParentID)
		}

		if !slices.Contains(parent.Children, id) {
			return errors.Wrapf(ErrInconsistent, "node %d missing from children of %d", id, h.ParentID)
		}
	}

	for id, n := range doc.Nodes {
		g, ok := n.(*m.Group)
		if !ok {
			continue
		}

		seen := make(map[m.ID]struct{}, len(g.Children))

		for _, child := range g.Children {
			if _, dup := seen[child]; dup {
				return errors.Wrapf(ErrInconsistent, "group %d lists %d twice", id, child)
			}

			seen[child] = struct{}{}

			c, ok := doc.Nodes[child]
			if !ok {
				return errors.Wrapf(ErrInconsistent, "group %d lists missing node %d", id, child)
			}

			if c.Meta().ParentID != id {
				return errors.Wrapf(ErrInconsistent, "group %d lists %d whose parent is %d", id, child, c.Meta().ParentID)
			}
		}
	}

	// With parents and children mirrored, every node has exactly one parent, so
	// any node not reached from the root sits on a cycle.
	reached := 0
	stack := []m.ID{m.RootID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++

		if reached > len(doc.Nodes) {
			return errors.Wrap(ErrInconsistent, "cycle below root")
		}

		if g, ok := doc.Nodes[id].(*m.Group); ok {
			stack = append(stack, g.Children...)
		}
	}

	if reached != len(doc.Nodes) {
		return errors.Wrapf(ErrInconsistent, "%d nodes unreachable from root", len(doc.Nodes)-reached)
	}

	return nil
}
