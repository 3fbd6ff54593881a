package domain

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/testbook/internal/model"
)

// TopLayer returns the ids whose parent is not itself in ids, in their
// original order and without duplicates.
func (t *Tree) TopLayer(ids []m.ID) []m.ID {
	all := make(map[m.ID]struct{}, len(ids))
	for _, id := range ids {
		all[id] = struct{}{}
	}

	seen := make(map[m.ID]struct{}, len(ids))
	top := make([]m.ID, 0, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		if _, nested := all[t.mustNode(id).Meta().ParentID]; nested {
			continue
		}

		top = append(top, id)
	}

	return top
}

// CommonParent returns the deepest group that is an ancestor of every id.
func (t *Tree) CommonParent(ids []m.ID) m.ID {
	if len(ids) == 0 {
		return m.RootID
	}

	candidate := t.mustNode(ids[0]).Meta().ParentID
	if candidate == m.NoParent {
		return m.RootID
	}

	for _, id := range ids[1:] {
		for candidate != m.RootID && !t.IsAncestorOrSelf(candidate, t.mustNode(id).Meta().ParentID) {
			candidate = t.mustNode(candidate).Meta().ParentID
		}
	}

	return candidate
}

func (t *Tree) checkRelocation(top []m.ID, dest m.ID) error {
	for _, id := range top {
		if id == m.RootID {
			panic(errors.AssertionFailedf("cannot move the root group"))
		}

		if t.IsAncestorOrSelf(id, dest) {
			return errors.Wrapf(ErrCycle, "node %d into %d", id, dest)
		}
	}

	return nil
}

// Move re-parents the top layer of ids under newParent, appending them to its
// children. Moving a node into itself or one of its descendants is rejected
// with ErrCycle before anything changes.
func (t *Tree) Move(ids []m.ID, newParent m.ID) error {
	dest := t.mustGroup(newParent)
	top := t.TopLayer(ids)

	if err := t.checkRelocation(top, newParent); err != nil {
		return err
	}

	t.relink(top, dest)

	return nil
}

func (t *Tree) relink(ids []m.ID, dest *m.Group) {
	for _, id := range ids {
		n := t.mustNode(id)
		old := t.mustGroup(n.Meta().ParentID)
		old.Children = removeID(old.Children, id)
		n.Meta().ParentID = dest.ID
		dest.Children = append(dest.Children, id)
	}
}

// GroupNodes creates a group under commonParent and moves the top layer of ids
// into it. It returns ErrCycle if commonParent lies inside one of the moved
// subtrees.
func (t *Tree) GroupNodes(ids []m.ID, commonParent m.ID) (m.ID, error) {
	t.mustGroup(commonParent)

	top := t.TopLayer(ids)
	if len(top) == 0 {
		return 0, ErrEmptySelection
	}

	if err := t.checkRelocation(top, commonParent); err != nil {
		return 0, err
	}

	gid := t.Add(commonParent, m.KindGroup)
	t.relink(top, t.mustGroup(gid))

	return gid, nil
}

// Ungroup moves the children of id into id's parent, in the place id held,
// and removes the then empty group. The root cannot be ungrouped.
func (t *Tree) Ungroup(id m.ID) {
	if id == m.RootID {
		panic(errors.AssertionFailedf("cannot ungroup the root group"))
	}

	g := t.mustGroup(id)
	parent := t.mustGroup(g.ParentID)

	for _, child := range g.Children {
		t.mustNode(child).Meta().ParentID = parent.ID
	}

	idx := slices.Index(parent.Children, id)
	parent.Children = slices.Replace(parent.Children, idx, idx+1, g.Children...)
	if len(parent.Children) == 0 {
		parent.Children = nil
	}

	g.Children = nil

	t.Delete(id)
}

// Label returns the text nodes are sorted by: the display name followed by
// "##" and the id, which keeps labels unique.
func (t *Tree) Label(id m.ID) string {
	return t.mustNode(id).DisplayName() + "##" + id.String()
}

// Sort orders the children of group: groups before tests, then by label in
// descending byte order.
func (t *Tree) Sort(group m.ID) {
	g := t.mustGroup(group)

	labels := make(map[m.ID]string, len(g.Children))
	for _, id := range g.Children {
		labels[id] = t.Label(id)
	}

	slices.SortFunc(g.Children, func(a, b m.ID) int {
		ga, gb := t.IsGroup(a), t.IsGroup(b)
		if ga != gb {
			if ga {
				return -1
			}

			return 1
		}

		return strings.Compare(labels[b], labels[a])
	})
}

// SortRecursive sorts group and every group below it.
func (t *Tree) SortRecursive(group m.ID) {
	t.Walk(group, func(n m.Node, _ int) bool {
		if n.Kind() == m.KindGroup {
			t.Sort(n.Meta().ID)
		}

		return true
	})
}

// ParentDisabled reports whether any ancestor of id is disabled.
func (t *Tree) ParentDisabled(id m.ID) bool {
	for cur := t.mustNode(id).Meta().ParentID; cur != m.NoParent; {
		n := t.mustNode(cur)
		if n.Meta().Flags.Has(m.FlagDisabled) {
			return true
		}

		cur = n.Meta().ParentID
	}

	return false
}

// IsDisabled reports whether id or any of its ancestors is disabled.
func (t *Tree) IsDisabled(id m.ID) bool {
	return t.mustNode(id).Meta().Flags.Has(m.FlagDisabled) || t.ParentDisabled(id)
}

func (t *Tree) SetDisabled(id m.ID, disabled bool) {
	h := t.mustNode(id).Meta()
	h.Flags = h.Flags.With(m.FlagDisabled, disabled)
}

// SetExpanded opens or closes a group in tree views.
func (t *Tree) SetExpanded(id m.ID, expanded bool) {
	h := t.mustGroup(id).Meta()
	h.Flags = h.Flags.With(m.FlagExpanded, expanded)
}

// ClientSettings returns the settings in effect for id: its own, or those of
// the nearest ancestor that defines some. The root always defines them.
func (t *Tree) ClientSettings(id m.ID) m.ClientSettings {
	for cur := id; cur != m.NoParent; {
		n := t.mustNode(cur)
		if s := n.Settings(); s != nil {
			return *s
		}

		cur = n.Meta().ParentID
	}

	panic(errors.AssertionFailedf("no client settings above node %d", id))
}

// Variables returns the variables visible from id. Values defined closer to
// id override those of its ancestors.
func (t *Tree) Variables(id m.ID) map[string]string {
	var chain []m.Node
	for cur := id; cur != m.NoParent; {
		n := t.mustNode(cur)
		chain = append(chain, n)
		cur = n.Meta().ParentID
	}

	vars := make(map[string]string)

	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Vars() {
			vars[k] = v
		}
	}

	return vars
}

// Outermost returns the ids, root excluded, that have no proper ancestor in
// ids, in their original order and without duplicates. Deleting or copying
// them covers every selected subtree exactly once.
func (t *Tree) Outermost(ids []m.ID) []m.ID {
	set := make(map[m.ID]struct{}, len(ids))
	for _, id := range ids {
		if id != m.RootID {
			set[id] = struct{}{}
		}
	}

	out := make([]m.ID, 0, len(set))
	seen := make(map[m.ID]struct{}, len(set))

	for _, id := range ids {
		if _, ok := set[id]; !ok {
			continue
		}

		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		nested := false

		for cur := t.mustNode(id).Meta().ParentID; cur != m.NoParent; cur = t.mustNode(cur).Meta().ParentID {
			if _, ok := set[cur]; ok && cur != id {
				nested = true
				break
			}
		}

		if !nested {
			out = append(out, id)
		}
	}

	return out
}
