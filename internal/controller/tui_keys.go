package controller

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap lists the key bindings of the editor in browse mode.
type editorKeyMap struct {
	Up, Down, Expand, Collapse key.Binding
	Select, ClearSelection     key.Binding
	AddTest, AddGroup, Rename  key.Binding
	Delete, Cut, Copy, Paste   key.Binding
	Group, Ungroup             key.Binding
	Sort, SortAll              key.Binding
	Disable, Filter            key.Binding
	Undo, Redo, Save           key.Binding
	Help, Quit                 key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Collapse:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Select:         key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		ClearSelection: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		AddTest:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add test")),
		AddGroup:       key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add group")),
		Rename:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:         key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Cut:            key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cut")),
		Copy:           key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Paste:          key.NewBinding(key.WithKeys("p", "v"), key.WithHelp("p", "paste")),
		Group:          key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group")),
		Ungroup:        key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "ungroup")),
		Sort:           key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		SortAll:        key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort all")),
		Disable:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enable/disable")),
		Filter:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Undo:           key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:           key.NewBinding(key.WithKeys("ctrl+r", "U"), key.WithHelp("ctrl+r", "redo")),
		Save:           key.NewBinding(key.WithKeys("ctrl+s", "w"), key.WithHelp("w", "save")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTest, k.Delete, k.Copy, k.Paste, k.Undo, k.Filter, k.Save, k.Help, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.Collapse, k.Select, k.ClearSelection},
		{k.AddTest, k.AddGroup, k.Rename, k.Delete, k.Disable},
		{k.Cut, k.Copy, k.Paste, k.Group, k.Ungroup, k.Sort, k.SortAll},
		{k.Filter, k.Undo, k.Redo, k.Save, k.Help, k.Quit},
	}
}
