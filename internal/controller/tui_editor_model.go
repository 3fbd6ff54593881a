package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

type editorMode int

const (
	modeBrowse editorMode = iota
	modeFilter
	modeRename
)

// chromeHeight is the number of lines around the tree: title, status, input
// line and help.
const chromeHeight = 5

// editorModel is the Bubble Tea model of the interactive editor.
type editorModel struct {
	editor      domain.Editor
	keys        editorKeyMap
	help        help.Model
	input       textinput.Model
	mode        editorMode
	renaming    m.ID
	rows        []row
	cursor      int
	offset      int
	width       int
	height      int
	status      string
	statusErr   bool
	statusSeq   int
	confirmQuit bool
	quitting    bool
}

func newEditorModel(editor domain.Editor) editorModel {
	input := textinput.New()
	input.CharLimit = 256

	model := editorModel{
		editor: editor,
		keys:   newEditorKeyMap(),
		help:   help.New(),
		input:  input,
		width:  80,
		height: 24,
	}
	model.refresh()

	return model
}

func (em editorModel) Init() tea.Cmd {
	return nil
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height
		em.help.Width = msg.Width
		em.scroll()

		return em, nil

	case clearStatusMsg:
		if msg.seq == em.statusSeq {
			em.status = ""
			em.statusErr = false
		}

		return em, nil

	case tea.KeyMsg:
		switch em.mode {
		case modeFilter:
			return em.handleFilterKey(msg)
		case modeRename:
			return em.handleRenameKey(msg)
		default:
			return em.handleBrowseKey(msg)
		}
	}

	return em, nil
}

func (em editorModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, em.keys.Quit) {
		if em.editor.Modified() && !em.confirmQuit {
			em.confirmQuit = true
			return em.notify("unsaved changes, press q again to quit")
		}

		em.quitting = true

		return em, tea.Quit
	}

	em.confirmQuit = false
	tree := em.editor.Tree()

	switch {
	case key.Matches(msg, em.keys.Up):
		em.moveCursor(-1)
	case key.Matches(msg, em.keys.Down):
		em.moveCursor(1)
	case key.Matches(msg, em.keys.Expand):
		if r, ok := em.current(); ok && r.isGroup() && !r.expanded {
			return em.apply(em.editor.SetExpanded(r.id, true), r.id, "")
		}
	case key.Matches(msg, em.keys.Collapse):
		return em.collapse()
	case key.Matches(msg, em.keys.Select):
		if r, ok := em.current(); ok {
			tree.ToggleSelect(r.id)
			em.refresh()
			em.moveCursor(1)
		}
	case key.Matches(msg, em.keys.ClearSelection):
		tree.ClearSelection()
		em.refresh()
	case key.Matches(msg, em.keys.AddTest):
		return em.add(m.KindTest)
	case key.Matches(msg, em.keys.AddGroup):
		return em.add(m.KindGroup)
	case key.Matches(msg, em.keys.Rename):
		return em.startRename()
	case key.Matches(msg, em.keys.Delete):
		n, err := em.editor.Delete(em.targets()...)
		if err == nil {
			tree.ClearSelection()
		}

		return em.apply(err, em.cursorID(), fmt.Sprintf("deleted %d node(s)", n))
	case key.Matches(msg, em.keys.Copy):
		n, err := em.editor.Copy(em.targets())
		return em.apply(err, em.cursorID(), fmt.Sprintf("copied %d node(s)", n))
	case key.Matches(msg, em.keys.Cut):
		n, err := em.editor.Cut(em.targets())
		if err == nil {
			tree.ClearSelection()
		}

		return em.apply(err, em.cursorID(), fmt.Sprintf("cut %d node(s)", n))
	case key.Matches(msg, em.keys.Paste):
		dest := em.destGroup()
		pasted, err := em.editor.Paste(dest)
		if err == nil {
			em.expand(dest)
		}

		focus := em.cursorID()
		if len(pasted) > 0 {
			focus = pasted[0]
		}

		return em.apply(err, focus, fmt.Sprintf("pasted %d subtree(s)", len(pasted)))
	case key.Matches(msg, em.keys.Group):
		gid, err := em.editor.Group(em.targets())
		if err == nil {
			tree.ClearSelection()
			em.expand(gid)
		}

		return em.apply(err, gid, "grouped")
	case key.Matches(msg, em.keys.Ungroup):
		return em.apply(em.editor.Ungroup(em.cursorID()), em.cursorID(), "ungrouped")
	case key.Matches(msg, em.keys.Sort):
		return em.apply(em.editor.Sort(em.destGroup(), false), em.cursorID(), "sorted")
	case key.Matches(msg, em.keys.SortAll):
		return em.apply(em.editor.Sort(em.destGroup(), true), em.cursorID(), "sorted recursively")
	case key.Matches(msg, em.keys.Disable):
		if r, ok := em.current(); ok {
			return em.apply(em.editor.SetDisabled(r.id, !r.disabled), r.id, "")
		}
	case key.Matches(msg, em.keys.Filter):
		em.mode = modeFilter
		em.input.Prompt = "filter: "
		em.input.SetValue(tree.FilterText())
		em.input.CursorEnd()

		return em, em.input.Focus()
	case key.Matches(msg, em.keys.Undo):
		return em.apply(em.editor.Undo(), em.cursorID(), "undone")
	case key.Matches(msg, em.keys.Redo):
		return em.apply(em.editor.Redo(), em.cursorID(), "redone")
	case key.Matches(msg, em.keys.Save):
		em.editor.Commit()
		return em.apply(em.editor.Save(""), em.cursorID(), "saved "+string(em.editor.Path()))
	case key.Matches(msg, em.keys.Help):
		em.help.ShowAll = !em.help.ShowAll
		em.scroll()
	}

	return em, nil
}

func (em editorModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		em.mode = modeBrowse
		em.input.Blur()

		return em, nil
	case tea.KeyEsc:
		em.mode = modeBrowse
		em.input.Blur()
		em.editor.Filter("")
		em.refresh()

		return em, nil
	}

	var cmd tea.Cmd

	em.input, cmd = em.input.Update(msg)
	em.editor.Filter(em.input.Value())
	em.cursor, em.offset = 0, 0
	em.refresh()

	return em, cmd
}

func (em editorModel) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		em.mode = modeBrowse
		em.input.Blur()

		var err error
		if em.editor.Tree().IsGroup(em.renaming) {
			err = em.editor.Rename(em.renaming, em.input.Value())
		} else {
			err = em.editor.SetEndpoint(em.renaming, em.input.Value())
		}

		return em.apply(err, em.renaming, "")
	case tea.KeyEsc:
		em.mode = modeBrowse
		em.input.Blur()

		return em, nil
	}

	var cmd tea.Cmd

	em.input, cmd = em.input.Update(msg)

	return em, cmd
}

func (em editorModel) startRename() (tea.Model, tea.Cmd) {
	r, ok := em.current()
	if !ok {
		return em, nil
	}

	em.mode = modeRename
	em.renaming = r.id
	em.input.Prompt = "endpoint: "

	if r.isGroup() {
		em.input.Prompt = "name: "
	}

	em.input.SetValue(em.editor.Tree().Node(r.id).DisplayName())
	em.input.CursorEnd()

	return em, em.input.Focus()
}

func (em editorModel) add(kind m.Kind) (tea.Model, tea.Cmd) {
	dest := em.destGroup()

	id, err := em.editor.Add(dest, kind)
	if err == nil {
		em.expand(dest)
	}

	return em.apply(err, id, "added "+kind.String())
}

func (em editorModel) collapse() (tea.Model, tea.Cmd) {
	r, ok := em.current()
	if !ok {
		return em, nil
	}

	if r.isGroup() && r.expanded {
		return em.apply(em.editor.SetExpanded(r.id, false), r.id, "")
	}

	if parent := em.editor.Tree().Node(r.id).Meta().ParentID; parent != m.NoParent {
		em.focus(parent)
	}

	return em, nil
}

// expand opens id in the tree view, ignoring ids that are not groups.
func (em *editorModel) expand(id m.ID) {
	if em.editor.Tree().IsGroup(id) {
		_ = em.editor.SetExpanded(id, true)
	}
}

// apply refreshes the view after an edit and reports its outcome.
func (em editorModel) apply(err error, focus m.ID, done string) (tea.Model, tea.Cmd) {
	em.refresh()

	if err != nil {
		em.statusErr = true
		em.status = err.Error()
		em.statusSeq++

		return em, clearStatusAfter(em.statusSeq)
	}

	em.focus(focus)

	if done == "" {
		return em, nil
	}

	return em.notify(done)
}

func (em editorModel) notify(status string) (tea.Model, tea.Cmd) {
	em.status = status
	em.statusErr = false
	em.statusSeq++

	return em, clearStatusAfter(em.statusSeq)
}

// refresh rebuilds the visible rows from the tree. Collapsed groups hide
// their children unless a filter is active.
func (em *editorModel) refresh() {
	tree := em.editor.Tree()
	filtering := tree.FilterText() != ""
	em.rows = em.rows[:0]

	tree.Walk(m.RootID, func(n m.Node, depth int) bool {
		h := n.Meta()
		if tree.IsHidden(h.ID) {
			return false
		}

		r := row{
			id:        h.ID,
			depth:     depth,
			kind:      n.Kind(),
			name:      displayName(n),
			expanded:  h.Flags.Has(m.FlagExpanded),
			disabled:  h.Flags.Has(m.FlagDisabled),
			inherited: tree.ParentDisabled(h.ID),
			selected:  tree.IsSelected(h.ID),
		}

		if t, ok := n.(*m.Test); ok {
			r.method = t.Method
		}

		em.rows = append(em.rows, r)

		return !r.isGroup() || r.expanded || filtering
	})

	em.cursor = min(em.cursor, len(em.rows)-1)
	em.cursor = max(em.cursor, 0)
	em.scroll()
}

func (em *editorModel) current() (row, bool) {
	if em.cursor < 0 || em.cursor >= len(em.rows) {
		return row{}, false
	}

	return em.rows[em.cursor], true
}

func (em *editorModel) cursorID() m.ID {
	if r, ok := em.current(); ok {
		return r.id
	}

	return m.RootID
}

// targets returns the selected ids, or the id under the cursor when nothing
// is selected.
func (em *editorModel) targets() []m.ID {
	if sel := em.editor.Tree().Selection(); len(sel) > 0 {
		return sel
	}

	return []m.ID{em.cursorID()}
}

// destGroup returns the group under the cursor, or the parent of the test
// under the cursor.
func (em *editorModel) destGroup() m.ID {
	tree := em.editor.Tree()
	id := em.cursorID()

	if tree.IsGroup(id) {
		return id
	}

	if n := tree.Node(id); n != nil {
		return n.Meta().ParentID
	}

	return m.RootID
}

func (em *editorModel) focus(id m.ID) {
	for i, r := range em.rows {
		if r.id == id {
			em.cursor = i
			em.scroll()

			return
		}
	}
}

func (em *editorModel) moveCursor(delta int) {
	em.cursor += delta
	em.cursor = min(em.cursor, len(em.rows)-1)
	em.cursor = max(em.cursor, 0)
	em.scroll()
}

func (em *editorModel) treeHeight() int {
	height := em.height - chromeHeight
	if em.help.ShowAll {
		height -= len(em.keys.FullHelp()[0]) - 1
	}

	return max(height, 1)
}

func (em *editorModel) scroll() {
	visible := em.treeHeight()

	if em.cursor < em.offset {
		em.offset = em.cursor
	}

	if em.cursor >= em.offset+visible {
		em.offset = em.cursor - visible + 1
	}

	em.offset = max(em.offset, 0)
}

func (em editorModel) View() string {
	if em.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(0, 1)

	title := "testbook"
	if path := em.editor.Path(); path != "" {
		title += "  " + string(path)
	}

	if em.editor.Modified() {
		title += " [modified]"
	}

	lines := []string{titleStyle.Render(title)}

	end := min(em.offset+em.treeHeight(), len(em.rows))
	for i := em.offset; i < end; i++ {
		lines = append(lines, em.renderRow(em.rows[i], i == em.cursor))
	}

	for i := end - em.offset; i < em.treeHeight(); i++ {
		lines = append(lines, "")
	}

	lines = append(lines, em.renderStatus())

	if em.mode != modeBrowse {
		lines = append(lines, em.input.View())
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, em.help.View(em.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (em editorModel) renderRow(r row, atCursor bool) string {
	indent := strings.Repeat("  ", r.depth)

	marker := "  "
	if r.selected {
		marker = "● "
	}

	var icon string

	switch {
	case r.isGroup() && r.expanded:
		icon = "▼ "
	case r.isGroup():
		icon = "▶ "
	default:
		icon = methodBadge(r.method) + " "
	}

	nameStyle := lipgloss.NewStyle()
	if r.disabled || r.inherited {
		nameStyle = nameStyle.Foreground(lipgloss.Color("240")).Strikethrough(r.disabled)
	}

	line := marker + indent + icon + nameStyle.Render(r.name)

	if atCursor {
		return lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("229")).
			Width(em.width).
			Render(line)
	}

	return line
}

func (em editorModel) renderStatus() string {
	tree := em.editor.Tree()

	info := fmt.Sprintf("%d nodes", tree.Len())
	if sel := len(tree.Selection()); sel > 0 {
		info += fmt.Sprintf("  •  %d selected", sel)
	}

	if f := tree.FilterText(); f != "" && em.mode != modeFilter {
		info += fmt.Sprintf("  •  filter %q", f)
	}

	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if em.status == "" {
		return infoStyle.Render(info)
	}

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	if em.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	}

	return statusStyle.Render(em.status) + "  " + infoStyle.Render(info)
}

func methodBadge(method m.HTTPMethod) string {
	style := lipgloss.NewStyle().Bold(true).Width(7)

	switch method {
	case m.MethodGet:
		style = style.Foreground(lipgloss.Color("34"))
	case m.MethodPost:
		style = style.Foreground(lipgloss.Color("214"))
	case m.MethodPut:
		style = style.Foreground(lipgloss.Color("33"))
	case m.MethodPatch:
		style = style.Foreground(lipgloss.Color("141"))
	case m.MethodDelete:
		style = style.Foreground(lipgloss.Color("160"))
	default:
		style = style.Foreground(lipgloss.Color("245"))
	}

	return style.Render(method.String())
}
