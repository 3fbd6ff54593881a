package controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/testbook/internal/adapter/mocks"
	"github.com/mouse-blink/testbook/internal/codec"
	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// newSampleEditor returns an editor holding
//
//	root (0)
//	  api (1)
//	    GET /login (2)
//	    POST /logout (3)
//	  GET /health (4)
//
// with an empty history.
func newSampleEditor(t *testing.T) (domain.Editor, *mocks.MockDocumentStore) {
	t.Helper()

	tree := domain.NewTree()
	api := tree.Add(m.RootID, m.KindGroup)
	login := tree.Add(api, m.KindTest)
	logout := tree.Add(api, m.KindTest)
	health := tree.Add(m.RootID, m.KindTest)

	tree.Group(api).Name = "api"
	tree.Test(login).Endpoint = "/login"
	tree.Test(logout).Endpoint = "/logout"
	tree.Test(logout).Method = m.MethodPost
	tree.Test(health).Endpoint = "/health"

	store := mocks.NewMockDocumentStore(t)
	store.EXPECT().Load(m.Path("sample.tbk")).Return(codec.Marshal(tree.Document()), nil).Once()

	editor := domain.NewEditor(store, nil)
	require.NoError(t, editor.Open("sample.tbk"))

	return editor, store
}
