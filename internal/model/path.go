package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// DocumentExt is the extension given to saved test books.
const DocumentExt = ".tbk"

// WithExt returns p with DocumentExt appended unless it already has an
// extension.
func (p Path) WithExt() Path {
	if filepath.Ext(string(p)) != "" {
		return p
	}

	return p + DocumentExt
}

// Base returns the last element of p without its extension.
func (p Path) Base() string {
	base := filepath.Base(string(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
