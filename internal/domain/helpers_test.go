package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

// Ids of the tree built by buildTree.
const (
	apiID    m.ID = 1
	loginID  m.ID = 2
	logoutID m.ID = 3
	healthID m.ID = 4
)

// buildTree returns
//
//	root (0)
//	  api (1)
//	    /login (2)
//	    /logout (3)
//	  /health (4)
func buildTree(t *testing.T) *Tree {
	t.Helper()

	tr := NewTree()

	require.Equal(t, apiID, tr.Add(m.RootID, m.KindGroup))
	require.Equal(t, loginID, tr.Add(apiID, m.KindTest))
	require.Equal(t, logoutID, tr.Add(apiID, m.KindTest))
	require.Equal(t, healthID, tr.Add(m.RootID, m.KindTest))

	tr.Group(apiID).Name = "api"
	tr.Test(loginID).Endpoint = "/login"
	tr.Test(logoutID).Endpoint = "/logout"
	tr.Test(healthID).Endpoint = "/health"

	require.NoError(t, tr.Check())

	return tr
}

func encoded(tr *Tree) []byte {
	return codec.Marshal(tr.Document())
}
