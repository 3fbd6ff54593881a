package domain

import (
	"bytes"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/adapter"
	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

// Editor is the entry point for user edits. It checks user supplied ids,
// applies the edit to the tree and records one history entry per completed
// edit.
//
//nolint:interfacebloat // One method per user command.
type Editor interface {
	New()
	Open(path m.Path) error
	Save(path m.Path) error
	Path() m.Path
	Tree() *Tree

	Add(parent m.ID, kind m.Kind) (m.ID, error)
	Delete(ids ...m.ID) (int, error)
	Move(ids []m.ID, dest m.ID) error
	Group(ids []m.ID) (m.ID, error)
	Ungroup(id m.ID) error
	Sort(id m.ID, recursive bool) error
	Filter(text string)

	SetDisabled(id m.ID, disabled bool) error
	SetExpanded(id m.ID, expanded bool) error
	Rename(id m.ID, name string) error
	SetEndpoint(id m.ID, endpoint string) error
	SetMethod(id m.ID, method m.HTTPMethod) error
	SetVariable(id m.ID, name string, value *string) error

	Copy(ids []m.ID) (int, error)
	Cut(ids []m.ID) (int, error)
	Paste(dest m.ID) ([]m.ID, error)

	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
	Modified() bool
	Commit() bool
}

type editor struct {
	store     adapter.DocumentStore
	logger    *slog.Logger
	tree      *Tree
	history   *History
	clipboard Clipboard
	path      m.Path
}

// NewEditor returns an editor holding a new, unsaved document.
func NewEditor(store adapter.DocumentStore, logger *slog.Logger) Editor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &editor{store: store, logger: logger}
	e.New()

	return e
}

// New discards the current document and starts an empty one. The clipboard
// is kept.
func (e *editor) New() {
	e.tree = NewTree()
	e.history = NewHistory(e.tree.Document())
	e.history.MarkSaved()
	e.path = ""
}

// Open loads the document at path. The current document is untouched unless
// the file is read, decoded and passes the invariant check.
func (e *editor) Open(path m.Path) error {
	payload, err := e.store.Load(path)
	if err != nil {
		return err
	}

	doc := &m.Document{}
	if err := codec.Unmarshal(payload, doc); err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	if err := CheckDocument(doc); err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	e.tree = NewTreeFrom(doc)
	e.history.Reset(doc)
	e.history.MarkSaved()
	e.path = path

	e.logger.Debug("document opened", slog.String("path", string(path)), slog.Int("nodes", e.tree.Len()))

	return nil
}

// Save writes the live document to path, or to the path it was opened from
// or last saved to when path is empty.
func (e *editor) Save(path m.Path) error {
	if path == "" {
		path = e.path
	}

	if path == "" {
		return ErrNoPath
	}

	payload := codec.Marshal(e.tree.Document())
	if err := e.store.Save(path, payload); err != nil {
		return err
	}

	e.path = path
	e.history.MarkSaved()

	e.logger.Info("document saved", slog.String("path", string(path)), slog.Int("bytes", len(payload)))

	return nil
}

func (e *editor) Path() m.Path {
	return e.path
}

// Tree returns the live tree. Edits made on it directly are recorded in the
// history by the next Commit.
func (e *editor) Tree() *Tree {
	return e.tree
}

func (e *editor) Add(parent m.ID, kind m.Kind) (m.ID, error) {
	if _, err := e.group(parent); err != nil {
		return 0, err
	}

	if kind != m.KindTest && kind != m.KindGroup {
		return 0, errors.Newf("unknown node kind %d", kind)
	}

	if e.tree.Document().Free() == 0 {
		return 0, ErrIDsExhausted
	}

	id := e.tree.Add(parent, kind)
	e.commit()

	return id, nil
}

// Delete removes the given nodes and their descendants and returns the number
// of nodes removed.
func (e *editor) Delete(ids ...m.ID) (int, error) {
	if err := e.movable(ids); err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range e.tree.Outermost(ids) {
		removed += e.tree.Delete(id)
	}

	e.commit()

	return removed, nil
}

func (e *editor) Move(ids []m.ID, dest m.ID) error {
	if err := e.movable(ids); err != nil {
		return err
	}

	if _, err := e.group(dest); err != nil {
		return err
	}

	if err := e.tree.Move(ids, dest); err != nil {
		return err
	}

	e.commit()

	return nil
}

// Group wraps the given nodes in a new group placed under their deepest
// common ancestor.
func (e *editor) Group(ids []m.ID) (m.ID, error) {
	if err := e.movable(ids); err != nil {
		return 0, err
	}

	if e.tree.Document().Free() == 0 {
		return 0, ErrIDsExhausted
	}

	gid, err := e.tree.GroupNodes(ids, e.tree.CommonParent(ids))
	if err != nil {
		return 0, err
	}

	e.commit()

	return gid, nil
}

func (e *editor) Ungroup(id m.ID) error {
	if id == m.RootID {
		return ErrRoot
	}

	if _, err := e.group(id); err != nil {
		return err
	}

	e.tree.Ungroup(id)
	e.commit()

	return nil
}

func (e *editor) Sort(id m.ID, recursive bool) error {
	if _, err := e.group(id); err != nil {
		return err
	}

	if recursive {
		e.tree.SortRecursive(id)
	} else {
		e.tree.Sort(id)
	}

	e.commit()

	return nil
}

// Filter changes the visible nodes. It is view state and is not recorded in
// the history.
func (e *editor) Filter(text string) {
	e.tree.Filter(text)
}

func (e *editor) SetDisabled(id m.ID, disabled bool) error {
	if _, err := e.node(id); err != nil {
		return err
	}

	e.tree.SetDisabled(id, disabled)
	e.commit()

	return nil
}

// SetExpanded opens or closes a group. The flag is saved with the document
// but is not an edit on its own: it reaches the history with the next edit
// or Commit.
func (e *editor) SetExpanded(id m.ID, expanded bool) error {
	if _, err := e.group(id); err != nil {
		return err
	}

	e.tree.SetExpanded(id, expanded)

	return nil
}

func (e *editor) Rename(id m.ID, name string) error {
	g, err := e.group(id)
	if err != nil {
		return err
	}

	g.Name = name
	e.commit()

	return nil
}

func (e *editor) SetEndpoint(id m.ID, endpoint string) error {
	t, err := e.test(id)
	if err != nil {
		return err
	}

	t.Endpoint = endpoint
	e.commit()

	return nil
}

func (e *editor) SetMethod(id m.ID, method m.HTTPMethod) error {
	t, err := e.test(id)
	if err != nil {
		return err
	}

	if !method.Valid() {
		return errors.Newf("unknown HTTP method %d", method)
	}

	t.Method = method
	e.commit()

	return nil
}

// SetVariable sets a variable on a node, or removes it when value is nil.
func (e *editor) SetVariable(id m.ID, name string, value *string) error {
	n, err := e.node(id)
	if err != nil {
		return err
	}

	if name == "" {
		return errors.New("variable name is empty")
	}

	old, ok := n.Vars()[name]
	if (value == nil && !ok) || (value != nil && ok && *value == old) {
		return nil
	}

	m.SetVariable(n, name, value)
	e.commit()

	return nil
}

func (e *editor) Copy(ids []m.ID) (int, error) {
	if err := e.exist(ids); err != nil {
		return 0, err
	}

	return e.clipboard.Copy(e.tree, ids)
}

func (e *editor) Cut(ids []m.ID) (int, error) {
	if err := e.movable(ids); err != nil {
		return 0, err
	}

	n, err := e.clipboard.Cut(e.tree, ids)
	if err != nil {
		return 0, err
	}

	e.commit()

	return n, nil
}

// Paste inserts the clipboard contents under dest and returns the ids of the
// pasted subtree roots.
func (e *editor) Paste(dest m.ID) ([]m.ID, error) {
	if _, err := e.group(dest); err != nil {
		return nil, err
	}

	pasted, err := e.clipboard.Paste(e.tree, dest)
	if err != nil {
		e.logger.Warn("paste rejected", slog.Any("error", err))
		return nil, err
	}

	e.commit()

	e.logger.Debug("pasted", slog.Uint64("dest", uint64(dest)), slog.Int("roots", len(pasted)))

	return pasted, nil
}

func (e *editor) Undo() error {
	if !e.history.CanUndo() {
		return ErrNothingToUndo
	}

	e.history.Undo(e.tree)

	return nil
}

func (e *editor) Redo() error {
	if !e.history.CanRedo() {
		return ErrNothingToRedo
	}

	e.history.Redo(e.tree)

	return nil
}

func (e *editor) CanUndo() bool {
	return e.history.CanUndo()
}

func (e *editor) CanRedo() bool {
	return e.history.CanRedo()
}

// Modified reports whether the current history entry differs from the last
// saved or opened one.
func (e *editor) Modified() bool {
	return e.history.Modified()
}

// Commit records the live document in the history if it differs from the
// current entry, and reports whether it did.
func (e *editor) Commit() bool {
	if bytes.Equal(codec.Marshal(e.tree.Document()), e.history.Current()) {
		return false
	}

	e.commit()

	return true
}

func (e *editor) commit() {
	e.history.Push(e.tree.Document())
	e.tree.Filter(e.tree.FilterText())
}

func (e *editor) node(id m.ID) (m.Node, error) {
	n := e.tree.Node(id)
	if n == nil {
		return nil, errors.Wrapf(ErrNotFound, "node %d", id)
	}

	return n, nil
}

func (e *editor) group(id m.ID) (*m.Group, error) {
	n, err := e.node(id)
	if err != nil {
		return nil, err
	}

	g, ok := n.(*m.Group)
	if !ok {
		return nil, errors.Wrapf(ErrNotGroup, "node %d", id)
	}

	return g, nil
}

func (e *editor) test(id m.ID) (*m.Test, error) {
	n, err := e.node(id)
	if err != nil {
		return nil, err
	}

	t, ok := n.(*m.Test)
	if !ok {
		return nil, errors.Wrapf(ErrNotTest, "node %d", id)
	}

	return t, nil
}

func (e *editor) exist(ids []m.ID) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}

	for _, id := range ids {
		if _, err := e.node(id); err != nil {
			return err
		}
	}

	return nil
}

// movable checks ids for operations that relocate or remove nodes.
func (e *editor) movable(ids []m.ID) error {
	if err := e.exist(ids); err != nil {
		return err
	}

	for _, id := range ids {
		if id == m.RootID {
			return ErrRoot
		}
	}

	return nil
}
