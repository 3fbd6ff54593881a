package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// HTTPMethod is the request method of a test. Values are stored on disk.
type HTTPMethod uint8

// Available HTTPMethod values.
const (
	MethodGet HTTPMethod = iota
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
	MethodHead
	MethodOptions
	methodCount
)

var methodNames = [methodCount]string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

func (m HTTPMethod) String() string {
	if m >= methodCount {
		return fmt.Sprintf("METHOD(%d)", uint8(m))
	}

	return methodNames[m]
}

// Valid reports whether m is a known method.
func (m HTTPMethod) Valid() bool {
	return m < methodCount
}

// ParseMethod parses a method name, case-insensitively.
func ParseMethod(s string) (HTTPMethod, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range methodNames {
		if name == upper {
			return HTTPMethod(i), nil
		}
	}

	return 0, errors.Newf("unknown http method %q", s)
}

// Field is a key/value row of a request table (query parameters, headers,
// cookies, form fields).
type Field struct {
	Enabled bool
	Key     string
	Value   string
}

// BodyKind is the wire tag of a Body alternative.
type BodyKind uint64

// Body alternatives. The numeric values are stored on disk and must not change.
const (
	BodyNone BodyKind = 0
	BodyRaw  BodyKind = 1
	BodyForm BodyKind = 2

	bodyKinds = 3
)

// Body is a request body: nil, *RawBody or *FormBody.
type Body interface {
	BodyKind() BodyKind
	cloneBody() Body
}

// RawBody is a literal request body.
type RawBody struct {
	ContentType string
	Text        string
}

func (*RawBody) BodyKind() BodyKind { return BodyRaw }

func (b *RawBody) cloneBody() Body {
	c := *b
	return &c
}

// FormBody is a url-encoded or multipart form.
type FormBody struct {
	Fields []Field
}

func (*FormBody) BodyKind() BodyKind { return BodyForm }

func (b *FormBody) cloneBody() Body {
	return &FormBody{Fields: slices.Clone(b.Fields)}
}

// KindOf returns the alternative of b, treating nil as BodyNone.
func KindOf(b Body) BodyKind {
	if b == nil {
		return BodyNone
	}

	return b.BodyKind()
}

// Request is the request half of a test definition.
type Request struct {
	Parameters []Field
	Headers    []Field
	Cookies    []Field
	Body       Body
}

// Clone returns a deep copy of r.
func (r Request) Clone() Request {
	c := Request{
		Parameters: slices.Clone(r.Parameters),
		Headers:    slices.Clone(r.Headers),
		Cookies:    slices.Clone(r.Cookies),
	}
	if r.Body != nil {
		c.Body = r.Body.cloneBody()
	}

	return c
}

// Response is the expected response of a test.
type Response struct {
	Status  uint32
	Headers []Field
	Body    string
}

// Clone returns a deep copy of r.
func (r Response) Clone() Response {
	r.Headers = slices.Clone(r.Headers)
	return r
}

// Client setting bits.
const (
	ClientFollowRedirects uint32 = 1 << iota
	ClientSkipTLSVerify
)

// ClientSettings configures the http client used for tests. A node without
// settings inherits them from the nearest ancestor that has some.
type ClientSettings struct {
	Flags         uint32
	TimeoutMillis uint32
	Proxy         string
}

// DefaultClientSettings returns the settings given to a new root group.
func DefaultClientSettings() ClientSettings {
	return ClientSettings{
		Flags:         ClientFollowRedirects,
		TimeoutMillis: 30_000,
	}
}

func cloneSettings(s *ClientSettings) *ClientSettings {
	if s == nil {
		return nil
	}

	c := *s

	return &c
}
