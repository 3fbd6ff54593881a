// Package model defines the entities of a test book document: tests, groups
// and the request data they carry.
package model

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ID names a node. IDs are allocated from the document counter and are never
// reused while anything refers to them.
type ID uint64

const (
	// RootID is the id of the root group, which always exists.
	RootID ID = 0

	// NoParent is the parent id of the root group.
	NoParent ID = math.MaxUint64
)

func (id ID) String() string {
	if id == NoParent {
		return "none"
	}

	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses a decimal node id.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse id %q", s)
	}

	return ID(v), nil
}

// Flags is a bit set stored on every node.
type Flags uint32

const (
	// FlagDisabled excludes a node and its descendants from test runs.
	FlagDisabled Flags = 1 << iota

	// FlagExpanded marks a group as open in tree views.
	FlagExpanded
)

// Has reports whether every bit of f2 is set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// With returns f with f2 set or cleared.
func (f Flags) With(f2 Flags, on bool) Flags {
	if on {
		return f | f2
	}

	return f &^ f2
}
