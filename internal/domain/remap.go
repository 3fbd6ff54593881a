package domain

import (
	"maps"
	"slices"

	m "github.com/mouse-blink/testbook/internal/model"
)

// RemapIDs gives every node of scratch whose id is taken a fresh id from
// alloc and rewrites all references to it: the node's own id, the Children of
// its parent and the ParentID of its children. Ids that are not taken are
// kept, and alloc results equal to a kept id are skipped so one batch never
// hands out the same id twice. Parent ids that point outside scratch are left
// unchanged.
//
// scratch is not modified. The result maps new ids to cloned nodes, and the
// mapping maps every old id to its new id.
func RemapIDs(scratch map[m.ID]m.Node, taken func(m.ID) bool, alloc func() m.ID) (map[m.ID]m.Node, map[m.ID]m.ID) {
	ids := slices.Sorted(maps.Keys(scratch))
	mapping := make(map[m.ID]m.ID, len(ids))
	kept := make(map[m.ID]struct{}, len(ids))

	for _, id := range ids {
		if !taken(id) {
			mapping[id] = id
			kept[id] = struct{}{}
		}
	}

	for _, id := range ids {
		if _, ok := kept[id]; ok {
			continue
		}

		fresh := alloc()
		for {
			if _, clash := kept[fresh]; !clash {
				break
			}

			fresh = alloc()
		}

		mapping[id] = fresh
	}

	remapped := make(map[m.ID]m.Node, len(ids))

	for _, id := range ids {
		n := scratch[id].Clone()
		h := n.Meta()
		h.ID = mapping[id]

		if parent, ok := mapping[h.ParentID]; ok {
			h.ParentID = parent
		}

		if g, ok := n.(*m.Group); ok {
			for i, child := range g.Children {
				if c, ok := mapping[child]; ok {
					g.Children[i] = c
				}
			}
		}

		remapped[h.ID] = n
	}

	return remapped, mapping
}
