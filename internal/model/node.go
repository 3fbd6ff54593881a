package model

import (
	"maps"
	"slices"

	"github.com/mouse-blink/testbook/internal/codec"
)

// Kind is the wire tag of a Node alternative.
type Kind uint64

// Node alternatives. The numeric values are stored on disk and must not change.
const (
	KindTest  Kind = 0
	KindGroup Kind = 1

	nodeKinds = 2
)

func (k Kind) String() string {
	switch k {
	case KindTest:
		return "test"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Header holds the fields shared by every node.
type Header struct {
	ParentID ID
	ID       ID
	Flags    Flags
}

// Meta gives access to the shared fields of a node.
func (h *Header) Meta() *Header {
	return h
}

// Node is a closed sum type over *Test and *Group.
type Node interface {
	Meta() *Header
	Kind() Kind
	// DisplayName is the text shown in tree views and matched by filters.
	DisplayName() string
	// Settings returns the node's own client settings, nil when inherited.
	Settings() *ClientSettings
	// Vars returns the node's own variables.
	Vars() map[string]string
	Clone() Node

	codec.Value
	isNode()
}

// Test is a single request definition together with its expected response.
type Test struct {
	Header

	Method         HTTPMethod
	Endpoint       string
	Variables      map[string]string
	Request        Request
	Response       Response
	ClientSettings *ClientSettings
}

// NewTest returns a test with the given ids and default request values.
func NewTest(parent, id ID) *Test {
	return &Test{
		Header:   Header{ParentID: parent, ID: id},
		Method:   MethodGet,
		Response: Response{Status: 200},
	}
}

func (*Test) isNode() {}

func (*Test) Kind() Kind { return KindTest }

func (t *Test) DisplayName() string { return t.Endpoint }

func (t *Test) Settings() *ClientSettings { return t.ClientSettings }

func (t *Test) Vars() map[string]string { return t.Variables }

func (t *Test) Clone() Node {
	return &Test{
		Header:         t.Header,
		Method:         t.Method,
		Endpoint:       t.Endpoint,
		Variables:      maps.Clone(t.Variables),
		Request:        t.Request.Clone(),
		Response:       t.Response.Clone(),
		ClientSettings: cloneSettings(t.ClientSettings),
	}
}

// Group is an ordered container of tests and groups.
type Group struct {
	Header

	Name           string
	ClientSettings *ClientSettings
	Children       []ID
	Variables      map[string]string
}

// NewGroup returns an empty group with the given ids.
func NewGroup(parent, id ID, name string) *Group {
	return &Group{
		Header: Header{ParentID: parent, ID: id},
		Name:   name,
	}
}

func (*Group) isNode() {}

func (*Group) Kind() Kind { return KindGroup }

func (g *Group) DisplayName() string { return g.Name }

func (g *Group) Settings() *ClientSettings { return g.ClientSettings }

func (g *Group) Vars() map[string]string { return g.Variables }

func (g *Group) Clone() Node {
	return &Group{
		Header:         g.Header,
		Name:           g.Name,
		ClientSettings: cloneSettings(g.ClientSettings),
		Children:       slices.Clone(g.Children),
		Variables:      maps.Clone(g.Variables),
	}
}

// SetVariable sets or, when value is nil, removes a variable on n.
func SetVariable(n Node, name string, value *string) {
	vars := n.Vars()

	if value == nil {
		delete(vars, name)

		if len(vars) == 0 {
			setVars(n, nil)
		}

		return
	}

	if vars == nil {
		vars = make(map[string]string)
		setVars(n, vars)
	}

	vars[name] = *value
}

func setVars(n Node, vars map[string]string) {
	switch n := n.(type) {
	case *Test:
		n.Variables = vars
	case *Group:
		n.Variables = vars
	}
}
