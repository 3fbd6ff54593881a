package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTree prints a table with one row per visible node, names indented by
// depth.
func (s *SimpleUI) DisplayTree(tree *domain.Tree, options ...DisplayOption) error {
	cfg := newDisplayConfig(options)

	if !tree.Exists(cfg.from) {
		return fmt.Errorf("display node %d: %w", cfg.from, domain.ErrNotFound)
	}

	if cfg.format == FormatYAML {
		out, err := renderOutline(tree, cfg.from)
		if err != nil {
			return err
		}

		s.printf("%s", out)

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Name", "Kind", "Method", "State"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	tests, groups := 0, 0

	tree.Walk(cfg.from, func(n m.Node, depth int) bool {
		id := n.Meta().ID
		if tree.IsHidden(id) {
			return false
		}

		method := ""
		if t, ok := n.(*m.Test); ok {
			method = t.Method.String()
			tests++
		} else if id != m.RootID {
			groups++
		}

		table.Append([]string{
			id.String(),
			strings.Repeat("  ", depth) + displayName(n),
			n.Kind().String(),
			method,
			nodeState(tree, id),
		})

		return true
	})

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Tests %d", tests),
		fmt.Sprintf("Groups %d", groups),
		"",
		"",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayCheck prints the check reports as a table followed by the errors of
// the files that failed.
func (s *SimpleUI) DisplayCheck(reports []m.CheckReport) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Status", "Nodes", "Tests", "Groups", "Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	failed := 0

	for _, r := range reports {
		status := "ok"
		if !r.OK() {
			status = "invalid"
			failed++
		}

		table.Append([]string{
			string(r.File),
			status,
			fmt.Sprintf("%d", r.Nodes),
			fmt.Sprintf("%d", r.Tests),
			fmt.Sprintf("%d", r.Groups),
			fmt.Sprintf("%d", r.Size),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Files %d", len(reports)),
		fmt.Sprintf("Invalid %d", failed),
		"", "", "", "",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	for _, r := range reports {
		if !r.OK() {
			s.printf("%s: %v\n", r.File, r.Err)
		}
	}

	return nil
}

// RunEditor always fails: plain output cannot host the interactive editor.
func (s *SimpleUI) RunEditor(domain.Editor) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// displayName is the name shown for n in every view.
func displayName(n m.Node) string {
	name := n.DisplayName()
	if name != "" {
		return name
	}

	if n.Kind() == m.KindTest {
		return "(no endpoint)"
	}

	return "(unnamed)"
}

func nodeState(tree *domain.Tree, id m.ID) string {
	switch {
	case tree.Node(id).Meta().Flags.Has(m.FlagDisabled):
		return "disabled"
	case tree.ParentDisabled(id):
		return "inherited"
	default:
		return ""
	}
}
