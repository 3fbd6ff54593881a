package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

func TestCheckDocument(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(doc *m.Document)
	}{
		{"missing root", func(doc *m.Document) {
			delete(doc.Nodes, m.RootID)
		}},
		{"root is a test", func(doc *m.Document) {
			doc.Nodes[m.RootID] = m.NewTest(m.NoParent, m.RootID)
		}},
		{"root has a parent", func(doc *m.Document) {
			doc.Nodes[m.RootID].Meta().ParentID = apiID
		}},
		{"root without client settings", func(doc *m.Document) {
			doc.Nodes[m.RootID].(*m.Group).ClientSettings = nil
		}},
		{"key differs from node id", func(doc *m.Document) {
			doc.Nodes[healthID].Meta().ID = 7
		}},
		{"id not below the counter", func(doc *m.Document) {
			doc.Counter = healthID
		}},
		{"counter reaches the reserved id", func(doc *m.Document) {
			doc.Counter = m.NoParent
		}},
		{"parent is a test", func(doc *m.Document) {
			doc.Nodes[logoutID].Meta().ParentID = loginID
		}},
		{"child missing from parent", func(doc *m.Document) {
			doc.Nodes[apiID].(*m.Group).Children = []m.ID{loginID}
		}},
		{"child listed twice", func(doc *m.Document) {
			doc.Nodes[apiID].(*m.Group).Children = []m.ID{loginID, logoutID, loginID}
		}},
		{"child listed by two groups", func(doc *m.Document) {
			root := doc.Nodes[m.RootID].(*m.Group)
			root.Children = append(root.Children, loginID)
		}},
		{"child does not exist", func(doc *m.Document) {
			root := doc.Nodes[m.RootID].(*m.Group)
			root.Children = append(root.Children, 42)
		}},
		{"detached cycle", func(doc *m.Document) {
			a := m.NewGroup(6, 5, "a")
			b := m.NewGroup(5, 6, "b")
			a.Children = []m.ID{6}
			b.Children = []m.ID{5}
			doc.Nodes[5], doc.Nodes[6] = a, b
			doc.Counter = 7
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := buildTree(t).Document().Clone()
			require.NoError(t, CheckDocument(doc))

			tt.corrupt(doc)

			err := CheckDocument(doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInconsistent))
			assert.True(t, errors.Is(err, codec.ErrInvalid))
		})
	}
}

func TestTree_Check(t *testing.T) {
	require.NoError(t, NewTree().Check())
	require.NoError(t, buildTree(t).Check())
}
