package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/testbook/internal/model"
)

func TestTree_TopLayer(t *testing.T) {
	tr := buildTree(t)
	nested := tr.Add(apiID, m.KindGroup)
	deep := tr.Add(nested, m.KindTest)

	tests := []struct {
		name string
		ids  []m.ID
		want []m.ID
	}{
		{"drops children of selected groups", []m.ID{loginID, apiID, loginID, healthID}, []m.ID{apiID, healthID}},
		{"keeps siblings", []m.ID{loginID, logoutID}, []m.ID{loginID, logoutID}},
		{"only looks at direct parents", []m.ID{deep, apiID}, []m.ID{deep, apiID}},
		{"empty", nil, []m.ID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.TopLayer(tt.ids))
		})
	}
}

func TestTree_Outermost(t *testing.T) {
	tr := buildTree(t)
	nested := tr.Add(apiID, m.KindGroup)
	deep := tr.Add(nested, m.KindTest)

	assert.Equal(t, []m.ID{apiID}, tr.Outermost([]m.ID{deep, apiID, m.RootID}))
	assert.Equal(t, []m.ID{healthID, loginID}, tr.Outermost([]m.ID{healthID, loginID, healthID}))
	assert.Empty(t, tr.Outermost([]m.ID{m.RootID}))
}

func TestTree_CommonParent(t *testing.T) {
	tr := buildTree(t)

	assert.Equal(t, apiID, tr.CommonParent([]m.ID{loginID, logoutID}))
	assert.Equal(t, apiID, tr.CommonParent([]m.ID{loginID}))
	assert.Equal(t, m.RootID, tr.CommonParent([]m.ID{loginID, healthID}))
	assert.Equal(t, m.RootID, tr.CommonParent([]m.ID{apiID, loginID}))
	assert.Equal(t, m.RootID, tr.CommonParent(nil))
}

func TestTree_Move(t *testing.T) {
	t.Run("appends to the new parent", func(t *testing.T) {
		tr := buildTree(t)

		require.NoError(t, tr.Move([]m.ID{loginID}, m.RootID))

		assert.Equal(t, []m.ID{apiID, healthID, loginID}, tr.Root().Children)
		assert.Equal(t, []m.ID{logoutID}, tr.Group(apiID).Children)
		assert.Equal(t, m.RootID, tr.Node(loginID).Meta().ParentID)
		require.NoError(t, tr.Check())
	})

	t.Run("moves only the top layer", func(t *testing.T) {
		tr := buildTree(t)
		dest := tr.Add(m.RootID, m.KindGroup)

		require.NoError(t, tr.Move([]m.ID{loginID, apiID}, dest))

		assert.Equal(t, []m.ID{apiID}, tr.Group(dest).Children)
		assert.Equal(t, []m.ID{loginID, logoutID}, tr.Group(apiID).Children)
		require.NoError(t, tr.Check())
	})

	t.Run("rejects moving into itself or a descendant", func(t *testing.T) {
		tr := buildTree(t)
		nested := tr.Add(apiID, m.KindGroup)
		before := encoded(tr)

		require.ErrorIs(t, tr.Move([]m.ID{apiID}, apiID), ErrCycle)
		require.ErrorIs(t, tr.Move([]m.ID{healthID, apiID}, nested), ErrCycle)

		assert.Equal(t, before, encoded(tr))
	})

	t.Run("destination must be a group", func(t *testing.T) {
		tr := buildTree(t)

		assert.Panics(t, func() { _ = tr.Move([]m.ID{loginID}, healthID) })
	})
}

func TestTree_GroupNodes(t *testing.T) {
	t.Run("wraps the selection in a new group", func(t *testing.T) {
		tr := buildTree(t)

		gid, err := tr.GroupNodes([]m.ID{loginID, logoutID}, apiID)
		require.NoError(t, err)

		assert.Equal(t, m.ID(5), gid)
		assert.Equal(t, []m.ID{gid}, tr.Group(apiID).Children)
		assert.Equal(t, []m.ID{loginID, logoutID}, tr.Group(gid).Children)
		assert.Equal(t, NewGroupName, tr.Group(gid).Name)
		require.NoError(t, tr.Check())
	})

	t.Run("empty selection", func(t *testing.T) {
		tr := buildTree(t)

		_, err := tr.GroupNodes(nil, m.RootID)
		require.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("common parent inside the selection", func(t *testing.T) {
		tr := buildTree(t)
		before := encoded(tr)

		_, err := tr.GroupNodes([]m.ID{apiID}, apiID)
		require.ErrorIs(t, err, ErrCycle)
		assert.Equal(t, before, encoded(tr))
	})
}

func TestTree_Ungroup(t *testing.T) {
	t.Run("children take the group's place", func(t *testing.T) {
		tr := buildTree(t)
		tail := tr.Add(m.RootID, m.KindTest)

		tr.Ungroup(apiID)

		assert.Equal(t, []m.ID{loginID, logoutID, healthID, tail}, tr.Root().Children)
		assert.Equal(t, m.RootID, tr.Node(loginID).Meta().ParentID)
		assert.False(t, tr.Exists(apiID))
		require.NoError(t, tr.Check())
	})

	t.Run("empty group", func(t *testing.T) {
		tr := buildTree(t)
		empty := tr.Add(m.RootID, m.KindGroup)

		tr.Ungroup(empty)

		assert.Equal(t, []m.ID{apiID, healthID}, tr.Root().Children)
		require.NoError(t, tr.Check())
	})

	t.Run("sole empty group", func(t *testing.T) {
		tr := NewTree()
		empty := tr.Add(m.RootID, m.KindGroup)

		tr.Ungroup(empty)

		assert.Nil(t, tr.Root().Children)

		want := m.NewDocument()
		want.Counter = tr.Document().Counter
		assert.Equal(t, encoded(NewTreeFrom(want)), encoded(tr))
	})

	t.Run("root and tests are rejected", func(t *testing.T) {
		tr := buildTree(t)

		assert.Panics(t, func() { tr.Ungroup(m.RootID) })
		assert.Panics(t, func() { tr.Ungroup(loginID) })
	})
}

func TestTree_Sort(t *testing.T) {
	tr := NewTree()

	add := func(kind m.Kind, name string) m.ID {
		id := tr.Add(m.RootID, kind)
		if kind == m.KindGroup {
			tr.Group(id).Name = name
		} else {
			tr.Test(id).Endpoint = name
		}

		return id
	}

	b := add(m.KindTest, "b")
	x := add(m.KindGroup, "x")
	a := add(m.KindTest, "a")
	y := add(m.KindGroup, "y")
	same1 := add(m.KindTest, "c")
	same2 := add(m.KindTest, "c")

	tr.Sort(m.RootID)

	assert.Equal(t, []m.ID{y, x, same2, same1, b, a}, tr.Root().Children)
	assert.Equal(t, "c##5", tr.Label(same1))
	require.NoError(t, tr.Check())

	t.Run("case sensitive", func(t *testing.T) {
		tr := NewTree()
		lower := tr.Add(m.RootID, m.KindTest)
		upper := tr.Add(m.RootID, m.KindTest)
		tr.Test(lower).Endpoint = "a"
		tr.Test(upper).Endpoint = "B"

		tr.Sort(m.RootID)

		assert.Equal(t, []m.ID{lower, upper}, tr.Root().Children)
	})
}

func TestTree_SortRecursive(t *testing.T) {
	tr := buildTree(t)

	tr.SortRecursive(m.RootID)

	assert.Equal(t, []m.ID{apiID, healthID}, tr.Root().Children)
	assert.Equal(t, []m.ID{logoutID, loginID}, tr.Group(apiID).Children)

	t.Run("plain sort leaves nested groups alone", func(t *testing.T) {
		tr := buildTree(t)

		tr.Sort(m.RootID)

		assert.Equal(t, []m.ID{loginID, logoutID}, tr.Group(apiID).Children)
	})
}

func TestTree_Disabled(t *testing.T) {
	tr := buildTree(t)

	tr.SetDisabled(apiID, true)

	assert.False(t, tr.ParentDisabled(apiID))
	assert.True(t, tr.IsDisabled(apiID))
	assert.True(t, tr.ParentDisabled(loginID))
	assert.True(t, tr.IsDisabled(loginID))
	assert.False(t, tr.IsDisabled(healthID))
	assert.False(t, tr.ParentDisabled(m.RootID))

	tr.SetDisabled(apiID, false)
	assert.False(t, tr.IsDisabled(loginID))
}

func TestTree_ClientSettings(t *testing.T) {
	tr := buildTree(t)

	assert.Equal(t, m.DefaultClientSettings(), tr.ClientSettings(loginID))

	custom := m.ClientSettings{TimeoutMillis: 5}
	tr.Group(apiID).ClientSettings = &custom

	assert.Equal(t, custom, tr.ClientSettings(loginID))
	assert.Equal(t, custom, tr.ClientSettings(apiID))
	assert.Equal(t, m.DefaultClientSettings(), tr.ClientSettings(healthID))
}

func TestTree_Variables(t *testing.T) {
	tr := buildTree(t)
	host, token, local := "example.com", "abc", "localhost"

	m.SetVariable(tr.Root(), "host", &host)
	m.SetVariable(tr.Group(apiID), "token", &token)
	m.SetVariable(tr.Test(loginID), "host", &local)

	assert.Equal(t, map[string]string{"host": "localhost", "token": "abc"}, tr.Variables(loginID))
	assert.Equal(t, map[string]string{"host": "example.com", "token": "abc"}, tr.Variables(logoutID))
	assert.Equal(t, map[string]string{"host": "example.com"}, tr.Variables(healthID))
}
