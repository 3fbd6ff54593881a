package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// TUI implements UI using Bubble Tea for the editor and lipgloss for
// one-shot output.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayTree prints the visible nodes as an indented, colored outline.
func (t *TUI) DisplayTree(tree *domain.Tree, options ...DisplayOption) error {
	cfg := newDisplayConfig(options)

	if !tree.Exists(cfg.from) {
		return fmt.Errorf("display node %d: %w", cfg.from, domain.ErrNotFound)
	}

	if cfg.format == FormatYAML {
		out, err := renderOutline(tree, cfg.from)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(t.output, out)

		return err
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6).Align(lipgloss.Right)
	groupStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	disabledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder

	tree.Walk(cfg.from, func(n m.Node, depth int) bool {
		id := n.Meta().ID
		if tree.IsHidden(id) {
			return false
		}

		name := displayName(n)

		switch n := n.(type) {
		case *m.Group:
			name = groupStyle.Render(name + "/")
		case *m.Test:
			name = methodBadge(n.Method) + " " + name
		}

		if state := nodeState(tree, id); state != "" {
			name += " " + disabledStyle.Render("("+state+")")
		}

		b.WriteString(idStyle.Render(id.String()) + "  " + strings.Repeat("  ", depth) + name + "\n")

		return true
	})

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayCheck prints one colored line per report.
func (t *TUI) DisplayCheck(reports []m.CheckReport) error {
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	failed := 0

	for _, r := range reports {
		if r.OK() {
			_, _ = fmt.Fprintf(t.output, "%s %s %s\n",
				okStyle.Render("ok  "),
				r.File,
				infoStyle.Render(fmt.Sprintf("%d tests, %d groups, %d bytes", r.Tests, r.Groups, r.Size)))

			continue
		}

		failed++

		_, _ = fmt.Fprintf(t.output, "%s %s %s\n", failStyle.Render("FAIL"), r.File, infoStyle.Render(r.Err.Error()))
	}

	_, err := fmt.Fprintf(t.output, "%d file(s) checked, %d invalid\n", len(reports), failed)

	return err
}

// RunEditor runs the interactive editor on the alternate screen.
func (t *TUI) RunEditor(editor domain.Editor) error {
	model := newEditorModel(editor)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
			model.help.Width = width
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
