package model

import (
	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/codec"
)

// SaveVersion is written in the header of every document and clipboard
// container. Containers with any other version are rejected.
const SaveVersion uint64 = 1

func saveID(e *codec.Encoder, id ID) { e.Uint64(uint64(id)) }

func probeID(p *codec.Probe) (ID, bool) {
	v, ok := p.Uint64()
	return ID(v), ok
}

func checkID(p *codec.Probe) bool { return p.Skip(8) }

func loadID(d *codec.Decoder) ID { return ID(d.Uint64()) }

func saveHeader(e *codec.Encoder, h Header) {
	saveID(e, h.ParentID)
	saveID(e, h.ID)
	e.Uint32(uint32(h.Flags))
}

func loadHeader(d *codec.Decoder) Header {
	return Header{
		ParentID: loadID(d),
		ID:       loadID(d),
		Flags:    Flags(d.Uint32()),
	}
}

func saveVars(e *codec.Encoder, vars map[string]string) {
	codec.SaveMap(e, vars, (*codec.Encoder).String, (*codec.Encoder).String)
}

func checkVars(p *codec.Probe) bool {
	return codec.CheckMap(p, (*codec.Probe).ReadString, (*codec.Probe).String)
}

func loadVars(d *codec.Decoder) map[string]string {
	return codec.LoadMap(d, (*codec.Decoder).String, (*codec.Decoder).String)
}

func saveField(e *codec.Encoder, f Field) {
	e.Bool(f.Enabled)
	e.String(f.Key)
	e.String(f.Value)
}

func checkField(p *codec.Probe) bool {
	return p.Bool() && p.String() && p.String()
}

func loadField(d *codec.Decoder) Field {
	return Field{
		Enabled: d.Bool(),
		Key:     d.String(),
		Value:   d.String(),
	}
}

func saveFields(e *codec.Encoder, fields []Field) {
	codec.SaveSlice(e, fields, saveField)
}

func checkFields(p *codec.Probe) bool {
	return codec.CheckSlice(p, checkField)
}

func loadFields(d *codec.Decoder) []Field {
	return codec.LoadSlice(d, loadField)
}

func saveBody(e *codec.Encoder, b Body) {
	e.Tag(uint64(KindOf(b)))

	switch b := b.(type) {
	case *RawBody:
		e.String(b.ContentType)
		e.String(b.Text)
	case *FormBody:
		saveFields(e, b.Fields)
	}
}

func checkBody(p *codec.Probe) bool {
	tag, ok := p.Tag(bodyKinds)
	if !ok {
		return false
	}

	switch BodyKind(tag) {
	case BodyRaw:
		return p.String() && p.String()
	case BodyForm:
		return checkFields(p)
	default:
		return true
	}
}

func loadBody(d *codec.Decoder) Body {
	switch kind := BodyKind(d.Tag()); kind {
	case BodyNone:
		return nil
	case BodyRaw:
		return &RawBody{ContentType: d.String(), Text: d.String()}
	case BodyForm:
		return &FormBody{Fields: loadFields(d)}
	default:
		d.Fail(errors.AssertionFailedf("body tag %d", kind))
		return nil
	}
}

func saveRequest(e *codec.Encoder, r Request) {
	saveFields(e, r.Parameters)
	saveFields(e, r.Headers)
	saveFields(e, r.Cookies)
	saveBody(e, r.Body)
}

func checkRequest(p *codec.Probe) bool {
	return checkFields(p) && checkFields(p) && checkFields(p) && checkBody(p)
}

func loadRequest(d *codec.Decoder) Request {
	return Request{
		Parameters: loadFields(d),
		Headers:    loadFields(d),
		Cookies:    loadFields(d),
		Body:       loadBody(d),
	}
}

func saveResponse(e *codec.Encoder, r Response) {
	e.Uint32(r.Status)
	saveFields(e, r.Headers)
	e.String(r.Body)
}

func checkResponse(p *codec.Probe) bool {
	_, ok := p.Uint32()
	return ok && checkFields(p) && p.String()
}

func loadResponse(d *codec.Decoder) Response {
	return Response{
		Status:  d.Uint32(),
		Headers: loadFields(d),
		Body:    d.String(),
	}
}

func saveSettings(e *codec.Encoder, s ClientSettings) {
	e.Uint32(s.Flags)
	e.Uint32(s.TimeoutMillis)
	e.String(s.Proxy)
}

func checkSettings(p *codec.Probe) bool {
	return p.Skip(8) && p.String()
}

func loadSettings(d *codec.Decoder) ClientSettings {
	return ClientSettings{
		Flags:         d.Uint32(),
		TimeoutMillis: d.Uint32(),
		Proxy:         d.String(),
	}
}

// Save writes the test fields in wire order: parent id, id, flags, method,
// endpoint, variables, request, response, optional client settings.
func (t *Test) Save(e *codec.Encoder) {
	saveHeader(e, t.Header)
	e.Uint8(uint8(t.Method))
	e.String(t.Endpoint)
	saveVars(e, t.Variables)
	saveRequest(e, t.Request)
	saveResponse(e, t.Response)
	codec.SaveOptional(e, t.ClientSettings, saveSettings)
}

func (*Test) CanLoad(p *codec.Probe) bool {
	if !p.Skip(20) {
		return false
	}

	method, ok := p.Uint8()
	if !ok || !HTTPMethod(method).Valid() {
		return false
	}

	return p.String() &&
		checkVars(p) &&
		checkRequest(p) &&
		checkResponse(p) &&
		codec.CheckOptional(p, checkSettings)
}

func (t *Test) Load(d *codec.Decoder) {
	t.Header = loadHeader(d)
	t.Method = HTTPMethod(d.Uint8())
	t.Endpoint = d.String()
	t.Variables = loadVars(d)
	t.Request = loadRequest(d)
	t.Response = loadResponse(d)
	t.ClientSettings = codec.LoadOptional(d, loadSettings)
}

// Save writes the group fields in wire order: parent id, id, flags, name,
// optional client settings, children, variables.
func (g *Group) Save(e *codec.Encoder) {
	saveHeader(e, g.Header)
	e.String(g.Name)
	codec.SaveOptional(e, g.ClientSettings, saveSettings)
	codec.SaveSlice(e, g.Children, saveID)
	saveVars(e, g.Variables)
}

func (*Group) CanLoad(p *codec.Probe) bool {
	return p.Skip(20) &&
		p.String() &&
		codec.CheckOptional(p, checkSettings) &&
		codec.CheckSlice(p, checkID) &&
		checkVars(p)
}

func (g *Group) Load(d *codec.Decoder) {
	g.Header = loadHeader(d)
	g.Name = d.String()
	g.ClientSettings = codec.LoadOptional(d, loadSettings)
	g.Children = codec.LoadSlice(d, loadID)
	g.Variables = loadVars(d)
}

// SaveNode writes the node's kind tag followed by its fields.
func SaveNode(e *codec.Encoder, n Node) {
	e.Tag(uint64(n.Kind()))
	n.Save(e)
}

// CheckNode validates an encoded node.
func CheckNode(p *codec.Probe) bool {
	tag, ok := p.Tag(nodeKinds)
	if !ok {
		return false
	}

	switch Kind(tag) {
	case KindTest:
		return (*Test)(nil).CanLoad(p)
	default:
		return (*Group)(nil).CanLoad(p)
	}
}

// LoadNode reads a node written by SaveNode.
func LoadNode(d *codec.Decoder) Node {
	var n Node

	switch kind := Kind(d.Tag()); kind {
	case KindTest:
		n = &Test{}
	case KindGroup:
		n = &Group{}
	default:
		d.Fail(errors.AssertionFailedf("node tag %d", kind))
		return nil
	}

	n.Load(d)

	return n
}

// SaveNodes writes an id to node map.
func SaveNodes(e *codec.Encoder, nodes map[ID]Node) {
	codec.SaveMap(e, nodes, saveID, SaveNode)
}

// CheckNodes validates an id to node map.
func CheckNodes(p *codec.Probe) bool {
	return codec.CheckMap(p, probeID, CheckNode)
}

// LoadNodes reads an id to node map.
func LoadNodes(d *codec.Decoder) map[ID]Node {
	return codec.LoadMap(d, loadID, LoadNode)
}

// SaveIDs writes a sequence of ids.
func SaveIDs(e *codec.Encoder, ids []ID) {
	codec.SaveSlice(e, ids, saveID)
}

// CheckIDs validates a sequence of ids.
func CheckIDs(p *codec.Probe) bool {
	return codec.CheckSlice(p, checkID)
}

// LoadIDs reads a sequence of ids.
func LoadIDs(d *codec.Decoder) []ID {
	return codec.LoadSlice(d, loadID)
}
