package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/testbook/internal/model"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 4 * time.Second

// Message types.
type clearStatusMsg struct {
	seq int
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// row is one line of the editor tree view.
type row struct {
	id        m.ID
	depth     int
	kind      m.Kind
	name      string
	method    m.HTTPMethod
	expanded  bool
	disabled  bool // the node's own flag
	inherited bool // disabled through an ancestor
	selected  bool
}

func (r row) isGroup() bool {
	return r.kind == m.KindGroup
}
