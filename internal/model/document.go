package model

import (
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/codec"
)

// RootName is the name given to the root group of a new document.
const RootName = "root"

// MaxCounter is the largest valid id counter. Ids stay strictly below it, so
// no node can ever be given NoParent.
const MaxCounter = NoParent - 1

// Document is the complete persisted state: the id counter and every node,
// keyed by id. Parent and child links are ids into Nodes, never pointers.
type Document struct {
	Counter ID
	Nodes   map[ID]Node
}

// NewDocument returns a document holding only the root group.
func NewDocument() *Document {
	root := NewGroup(NoParent, RootID, RootName)
	settings := DefaultClientSettings()
	root.ClientSettings = &settings
	root.Flags = FlagExpanded

	return &Document{
		Counter: RootID + 1,
		Nodes:   map[ID]Node{RootID: root},
	}
}

// Free returns how many ids Alloc can still hand out.
func (d *Document) Free() uint64 {
	if d.Counter >= MaxCounter {
		return 0
	}

	return uint64(MaxCounter - d.Counter)
}

// Alloc returns the next unused id. It panics when no ids are left; callers
// check Free first.
func (d *Document) Alloc() ID {
	if d.Free() == 0 {
		panic(errors.AssertionFailedf("id counter exhausted at %d", d.Counter))
	}

	id := d.Counter
	d.Counter++

	return id
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	nodes := make(map[ID]Node, len(d.Nodes))
	for id, n := range d.Nodes {
		nodes[id] = n.Clone()
	}

	return &Document{Counter: d.Counter, Nodes: nodes}
}

// Save writes the id counter followed by the node map.
func (d *Document) Save(e *codec.Encoder) {
	e.Uint64(uint64(d.Counter))
	SaveNodes(e, d.Nodes)
}

func (*Document) CanLoad(p *codec.Probe) bool {
	return p.Skip(8) && CheckNodes(p)
}

func (d *Document) Load(dec *codec.Decoder) {
	d.Counter = ID(dec.Uint64())
	d.Nodes = LoadNodes(dec)
}
