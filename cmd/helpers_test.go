package cmd

import (
	"bytes"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/testbook/internal/adapter/mocks"
	"github.com/mouse-blink/testbook/internal/codec"
	"github.com/mouse-blink/testbook/internal/controller"
	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

type fixture struct {
	root   *cobra.Command
	out    *bytes.Buffer
	store  *mocks.MockDocumentStore
	finder *mocks.MockDocumentFinder
}

// newFixture builds a root command with the given subcommands and swaps the
// package collaborators for a mocked store and finder, a real editor and a SimpleUI
// writing to out. HOME points to an empty directory.
func newFixture(t *testing.T, subcommands ...*cobra.Command) *fixture {
	t.Helper()

	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	root.AddCommand(subcommands...)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})

	st := mocks.NewMockDocumentStore(t)
	fd := mocks.NewMockDocumentFinder(t)

	origStore, origFinder, origEditor, origChecker, origUI := store, finder, editor, checker, ui
	t.Cleanup(func() {
		store, finder, editor, checker, ui = origStore, origFinder, origEditor, origChecker, origUI
		settings = newSettings()
	})

	store = st
	finder = fd
	editor = domain.NewEditor(st, nil)
	checker = domain.NewChecker(st, nil)
	ui = controller.NewSimpleUI(root)

	return &fixture{root: root, out: out, store: st, finder: fd}
}

func (f *fixture) run(args ...string) error {
	f.root.SetArgs(args)
	return f.root.Execute()
}

// expectLoad serves the sample document for path.
func (f *fixture) expectLoad(path m.Path) {
	f.store.EXPECT().Load(path).Return(sampleDocument(), nil).Once()
}

// expectSave captures the document saved to path.
func (f *fixture) expectSave(t *testing.T, path m.Path) *domain.Tree {
	t.Helper()

	saved := domain.NewTree()

	f.store.EXPECT().Save(path, mock.Anything).RunAndReturn(func(_ m.Path, payload []byte) error {
		doc := &m.Document{}
		require.NoError(t, codec.Unmarshal(payload, doc))
		require.NoError(t, domain.CheckDocument(doc))
		saved.Replace(doc)

		return nil
	}).Once()

	return saved
}

// sampleDocument encodes
//
//	root (0)
//	  api (1)
//	    GET /login (2)
//	    POST /logout (3)
//	  GET /health (4)
func sampleDocument() []byte {
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

	return codec.Marshal(tree.Document())
}
