package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/testbook/internal/model"
)

func TestTree_Selection(t *testing.T) {
	tr := buildTree(t)

	tr.Select(healthID)
	tr.Select(loginID)
	tr.ToggleSelect(apiID)
	assert.Equal(t, []m.ID{apiID, loginID, healthID}, tr.Selection())

	tr.ToggleSelect(apiID)
	tr.Deselect(loginID)
	assert.Equal(t, []m.ID{healthID}, tr.Selection())
	assert.True(t, tr.IsSelected(healthID))
	assert.False(t, tr.IsSelected(apiID))

	tr.ClearSelection()
	assert.Empty(t, tr.Selection())

	assert.Panics(t, func() { tr.Select(99) })
}

func TestTree_Tabs(t *testing.T) {
	tr := buildTree(t)

	tr.OpenTab(healthID)
	tr.OpenTab(loginID)
	tr.OpenTab(healthID)
	assert.Equal(t, []m.ID{healthID, loginID}, tr.OpenTabs())

	tr.CloseTab(healthID)
	assert.Equal(t, []m.ID{loginID}, tr.OpenTabs())

	tr.CloseTab(loginID)
	assert.Empty(t, tr.OpenTabs())
}

func TestTree_Filter(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		hidden []m.ID
	}{
		{"empty clears", "", nil},
		{"subsequence match keeps the parent", "lgn", []m.ID{logoutID, healthID}},
		{"case insensitive", "LOGOUT", []m.ID{loginID, healthID}},
		{"group name match", "api", []m.ID{loginID, logoutID, healthID}},
		{"matches several tests", "/lo", []m.ID{healthID}},
		{"no match hides everything but the root", "zzz", []m.ID{apiID, loginID, logoutID, healthID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := buildTree(t)

			tr.Filter(tt.text)

			assert.Equal(t, tt.text, tr.FilterText())
			assert.ElementsMatch(t, tt.hidden, tr.Hidden())
			assert.False(t, tr.IsHidden(m.RootID))
		})
	}

	t.Run("clearing restores every node", func(t *testing.T) {
		tr := buildTree(t)

		tr.Filter("zzz")
		tr.Filter("")

		assert.Empty(t, tr.Hidden())
	})
}
