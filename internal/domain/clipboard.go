package domain

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

// clip is the clipboard payload: the copied subtree roots in their original
// order, then every copied node keyed by its original id.
type clip struct {
	Roots []m.ID
	Nodes map[m.ID]m.Node
}

func (c *clip) Save(e *codec.Encoder) {
	m.SaveIDs(e, c.Roots)
	m.SaveNodes(e, c.Nodes)
}

func (*clip) CanLoad(p *codec.Probe) bool {
	return m.CheckIDs(p) && m.CheckNodes(p)
}

func (c *clip) Load(d *codec.Decoder) {
	c.Roots = m.LoadIDs(d)
	c.Nodes = m.LoadNodes(d)
}

// Clipboard holds copied subtrees as an encoded container, the same format
// documents are saved in.
type Clipboard struct {
	data []byte
}

// Empty reports whether nothing has been copied yet.
func (c *Clipboard) Empty() bool {
	return len(c.data) == 0
}

// Bytes returns the encoded clipboard contents.
func (c *Clipboard) Bytes() []byte {
	return c.data
}

// SetBytes replaces the clipboard contents, for instance with data taken from
// the system clipboard. The data is validated on Paste.
func (c *Clipboard) SetBytes(data []byte) {
	c.data = slices.Clone(data)
}

// Copy stores the subtrees rooted at the outermost of ids, root excluded, and
// returns the number of nodes copied.
func (c *Clipboard) Copy(t *Tree, ids []m.ID) (int, error) {
	roots := t.Outermost(ids)
	if len(roots) == 0 {
		return 0, ErrEmptySelection
	}

	payload := &clip{Roots: roots, Nodes: make(map[m.ID]m.Node)}

	for _, root := range roots {
		t.Walk(root, func(n m.Node, _ int) bool {
			payload.Nodes[n.Meta().ID] = n.Clone()
			return true
		})
	}

	data, err := codec.Seal(m.SaveVersion, codec.Marshal(payload))
	if err != nil {
		return 0, errors.Wrap(err, "copy")
	}

	c.data = data

	return len(payload.Nodes), nil
}

// Cut is Copy followed by deleting the copied subtrees.
func (c *Clipboard) Cut(t *Tree, ids []m.ID) (int, error) {
	n, err := c.Copy(t, ids)
	if err != nil {
		return 0, err
	}

	for _, root := range t.Outermost(ids) {
		t.Delete(root)
	}

	return n, nil
}

// Paste inserts the clipboard contents as the last children of dest and
// returns the new ids of the pasted subtree roots. Every pasted id that is
// live in the tree or was ever handed out by its counter is replaced by a
// fresh one. The tree is not modified unless the whole payload is valid.
func (c *Clipboard) Paste(t *Tree, dest m.ID) ([]m.ID, error) {
	if c.Empty() {
		return nil, ErrClipboardEmpty
	}

	target := t.mustGroup(dest)

	raw, err := codec.Unseal(c.data, m.SaveVersion)
	if err != nil {
		return nil, errors.Wrap(err, "paste")
	}

	var payload clip
	if err := codec.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, "paste")
	}

	if err := checkClip(&payload); err != nil {
		return nil, err
	}

	doc := t.doc
	if doc.Free() < uint64(len(payload.Nodes)) {
		return nil, ErrIDsExhausted
	}

	// Foreign ids are kept only below limit, which leaves room to allocate a
	// fresh id for every pasted node without the counter passing MaxCounter.
	counter := doc.Counter
	limit := m.MaxCounter - m.ID(len(payload.Nodes))
	taken := func(id m.ID) bool { return id < counter || id >= limit || t.Exists(id) }

	nodes, mapping := RemapIDs(payload.Nodes, taken, doc.Alloc)

	for id, n := range nodes {
		if id >= doc.Counter {
			doc.Counter = id + 1
		}

		doc.Nodes[id] = n
	}

	pasted := make([]m.ID, 0, len(payload.Roots))

	for _, root := range payload.Roots {
		id := mapping[root]
		nodes[id].Meta().ParentID = dest
		target.Children = append(target.Children, id)
		pasted = append(pasted, id)
	}

	return pasted, nil
}

// checkClip verifies that the copied nodes form a forest whose roots are
// exactly payload.Roots.
func checkClip(payload *clip) error {
	if len(payload.Roots) == 0 || len(payload.Nodes) == 0 {
		return errors.Wrap(ErrCorruptClipboard, "no nodes")
	}

	roots := make(map[m.ID]struct{}, len(payload.Roots))

	for _, id := range payload.Roots {
		if _, dup := roots[id]; dup {
			return errors.Wrapf(ErrCorruptClipboard, "root %d listed twice", id)
		}

		roots[id] = struct{}{}

		n, ok := payload.Nodes[id]
		if !ok {
			return errors.Wrapf(ErrCorruptClipboard, "root %d not copied", id)
		}

		if _, ok := payload.Nodes[n.Meta().ParentID]; ok {
			return errors.Wrapf(ErrCorruptClipboard, "root %d has a copied parent", id)
		}
	}

	for id, n := range payload.Nodes {
		h := n.Meta()
		if h.ID != id {
			return errors.Wrapf(ErrCorruptClipboard, "node stored under %d has id %d", id, h.ID)
		}

		if id == m.NoParent {
			return errors.Wrapf(ErrCorruptClipboard, "node has reserved id %d", uint64(id))
		}

		if _, isRoot := roots[id]; !isRoot {
			parent, ok := payload.Nodes[h.ParentID].(*m.Group)
			if !ok || !slices.Contains(parent.Children, id) {
				return errors.Wrapf(ErrCorruptClipboard, "node %d detached from parent %d", id, h.ParentID)
			}
		}

		g, ok := n.(*m.Group)
		if !ok {
			continue
		}

		seen := make(map[m.ID]struct{}, len(g.Children))

		for _, child := range g.Children {
			if _, dup := seen[child]; dup {
				return errors.Wrapf(ErrCorruptClipboard, "group %d lists %d twice", id, child)
			}

			seen[child] = struct{}{}

			c, ok := payload.Nodes[child]
			if !ok || c.Meta().ParentID != id {
				return errors.Wrapf(ErrCorruptClipboard, "group %d lists foreign node %d", id, child)
			}
		}
	}

	reached := 0
	stack := slices.Clone(payload.Roots)

	for len(stack) > 0 && reached <= len(payload.Nodes) {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++

		if g, ok := payload.Nodes[id].(*m.Group); ok {
			stack = append(stack, g.Children...)
		}
	}

	if reached != len(payload.Nodes) {
		return errors.Wrap(ErrCorruptClipboard, "copied nodes do not form a forest")
	}

	return nil
}
