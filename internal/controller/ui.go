// Package controller renders test books and drives the interactive editor.
package controller

import (
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// ErrNotInteractive is returned by RunEditor when the output is not a
// terminal.
var ErrNotInteractive = errors.New("the editor needs an interactive terminal")

// Format selects how DisplayTree renders a document.
type Format int

// Available Format values.
const (
	FormatTable Format = iota
	FormatYAML
)

// DisplayOption is a functional option for DisplayTree.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds configuration for DisplayTree.
type DisplayConfig struct {
	format Format
	from   m.ID
}

// WithTableFormat renders one row per node.
func WithTableFormat() DisplayOption {
	return func(c *DisplayConfig) {
		c.format = FormatTable
	}
}

// WithYAMLFormat renders the document as a nested YAML outline.
func WithYAMLFormat() DisplayOption {
	return func(c *DisplayConfig) {
		c.format = FormatYAML
	}
}

// WithSubtree limits the output to the subtree rooted at id.
func WithSubtree(id m.ID) DisplayOption {
	return func(c *DisplayConfig) {
		c.from = id
	}
}

func newDisplayConfig(options []DisplayOption) DisplayConfig {
	cfg := DisplayConfig{format: FormatTable, from: m.RootID}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how documents and check results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayTree prints the nodes of tree that the current filter leaves
	// visible.
	DisplayTree(tree *domain.Tree, options ...DisplayOption) error
	// DisplayCheck prints one line per checked file.
	DisplayCheck(reports []m.CheckReport) error
	// RunEditor runs the interactive editor until the user quits.
	RunEditor(editor domain.Editor) error
}
