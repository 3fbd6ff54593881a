package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/testbook/internal/model"
)

// scratchForest returns group 5 holding tests 6 and 7, parented outside the
// map under 1.
func scratchForest() map[m.ID]m.Node {
	g := m.NewGroup(1, 5, "copied")
	g.Children = []m.ID{6, 7}

	return map[m.ID]m.Node{
		5: g,
		6: m.NewTest(5, 6),
		7: m.NewTest(5, 7),
	}
}

func counterFrom(next m.ID) func() m.ID {
	return func() m.ID {
		id := next
		next++

		return id
	}
}

func TestRemapIDs(t *testing.T) {
	t.Run("keeps ids that are free", func(t *testing.T) {
		scratch := scratchForest()

		nodes, mapping := RemapIDs(scratch, func(m.ID) bool { return false }, counterFrom(100))

		assert.Equal(t, map[m.ID]m.ID{5: 5, 6: 6, 7: 7}, mapping)
		assert.Equal(t, []m.ID{6, 7}, nodes[5].(*m.Group).Children)
		assert.Equal(t, m.ID(1), nodes[5].Meta().ParentID)
	})

	t.Run("rewrites every reference to a taken id", func(t *testing.T) {
		scratch := scratchForest()

		nodes, mapping := RemapIDs(scratch, func(m.ID) bool { return true }, counterFrom(20))

		assert.Equal(t, map[m.ID]m.ID{5: 20, 6: 21, 7: 22}, mapping)
		require.Len(t, nodes, 3)

		g := nodes[20].(*m.Group)
		assert.Equal(t, m.ID(20), g.ID)
		assert.Equal(t, m.ID(1), g.ParentID)
		assert.Equal(t, []m.ID{21, 22}, g.Children)
		assert.Equal(t, m.ID(20), nodes[21].Meta().ParentID)
		assert.Equal(t, m.ID(22), nodes[22].Meta().ID)
	})

	t.Run("never hands out a kept id", func(t *testing.T) {
		scratch := scratchForest()
		taken := func(id m.ID) bool { return id == 5 }

		nodes, mapping := RemapIDs(scratch, taken, counterFrom(6))

		assert.Equal(t, map[m.ID]m.ID{5: 8, 6: 6, 7: 7}, mapping)
		assert.Equal(t, []m.ID{6, 7}, nodes[8].(*m.Group).Children)
		assert.Equal(t, m.ID(8), nodes[6].Meta().ParentID)
		assert.Equal(t, m.ID(8), nodes[7].Meta().ParentID)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		scratch := scratchForest()

		RemapIDs(scratch, func(m.ID) bool { return true }, counterFrom(20))

		assert.Equal(t, scratchForest(), scratch)
	})

	t.Run("empty input", func(t *testing.T) {
		nodes, mapping := RemapIDs(nil, func(m.ID) bool { return true }, counterFrom(1))

		assert.Empty(t, nodes)
		assert.Empty(t, mapping)
	})
}
