package controller

import (
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/testbook/internal/domain"
	m "github.com/mouse-blink/testbook/internal/model"
)

// outlineNode is the YAML shape of one node in `show --yaml`.
type outlineNode struct {
	ID        uint64            `yaml:"id"`
	Kind      string            `yaml:"kind"`
	Name      string            `yaml:"name,omitempty"`
	Method    string            `yaml:"method,omitempty"`
	Endpoint  string            `yaml:"endpoint,omitempty"`
	Status    uint32            `yaml:"status,omitempty"`
	Disabled  bool              `yaml:"disabled,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty"`
	Children  []*outlineNode    `yaml:"children,omitempty"`
}

// buildOutline converts the visible part of the subtree at from.
func buildOutline(tree *domain.Tree, from m.ID) *outlineNode {
	n := tree.Node(from)
	out := &outlineNode{
		ID:        uint64(from),
		Kind:      n.Kind().String(),
		Disabled:  n.Meta().Flags.Has(m.FlagDisabled),
		Variables: n.Vars(),
	}

	switch n := n.(type) {
	case *m.Test:
		out.Method = n.Method.String()
		out.Endpoint = n.Endpoint
		out.Status = n.Response.Status
	case *m.Group:
		out.Name = n.Name

		for _, child := range n.Children {
			if tree.IsHidden(child) {
				continue
			}

			out.Children = append(out.Children, buildOutline(tree, child))
		}
	}

	return out
}

func renderOutline(tree *domain.Tree, from m.ID) (string, error) {
	data, err := yaml.Marshal(buildOutline(tree, from))
	if err != nil {
		return "", err
	}

	return string(data), nil
}
