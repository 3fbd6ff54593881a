package domain

import (
	"maps"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"

	m "github.com/mouse-blink/testbook/internal/model"
)

func (t *Tree) Select(id m.ID) {
	t.mustNode(id)
	t.selected[id] = struct{}{}
}

func (t *Tree) Deselect(id m.ID) {
	delete(t.selected, id)
}

// ToggleSelect flips the selection state of id.
func (t *Tree) ToggleSelect(id m.ID) {
	if t.IsSelected(id) {
		t.Deselect(id)
		return
	}

	t.Select(id)
}

func (t *Tree) ClearSelection() {
	clear(t.selected)
}

func (t *Tree) IsSelected(id m.ID) bool {
	_, ok := t.selected[id]
	return ok
}

// Selection returns the selected ids in ascending order.
func (t *Tree) Selection() []m.ID {
	return slices.Sorted(maps.Keys(t.selected))
}

// OpenTab adds id to the open editor tabs unless it is already open.
func (t *Tree) OpenTab(id m.ID) {
	t.mustNode(id)

	if !slices.Contains(t.tabs, id) {
		t.tabs = append(t.tabs, id)
	}
}

func (t *Tree) CloseTab(id m.ID) {
	t.tabs = removeID(t.tabs, id)
}

// OpenTabs returns the open tabs in the order they were opened.
func (t *Tree) OpenTabs() []m.ID {
	return slices.Clone(t.tabs)
}

// Filter hides every test whose display name does not fuzzy-match text
// (case-insensitive subsequence) and every group that neither matches nor
// has a visible descendant. The root is always visible. An empty text
// clears the filter.
func (t *Tree) Filter(text string) {
	t.filter = text
	clear(t.hidden)

	if text == "" {
		return
	}

	t.applyFilter(m.RootID)
}

func (t *Tree) applyFilter(id m.ID) bool {
	n := t.mustNode(id)
	visible := fuzzy.MatchFold(t.filter, n.DisplayName())

	if g, ok := n.(*m.Group); ok {
		for _, child := range g.Children {
			if t.applyFilter(child) {
				visible = true
			}
		}
	}

	if id == m.RootID {
		visible = true
	}

	if !visible {
		t.hidden[id] = struct{}{}
	}

	return visible
}

// FilterText returns the text passed to the last Filter call.
func (t *Tree) FilterText() string {
	return t.filter
}

// IsHidden reports whether the current filter hides id.
func (t *Tree) IsHidden(id m.ID) bool {
	_, ok := t.hidden[id]
	return ok
}

// Hidden returns the ids hidden by the filter in ascending order.
func (t *Tree) Hidden() []m.ID {
	return slices.Sorted(maps.Keys(t.hidden))
}
