package model

// CheckReport is the result of validating one document file.
type CheckReport struct {
	File   Path
	Nodes  int // nodes in the document, root included
	Tests  int
	Groups int // groups other than the root
	Size   int64
	Err    error // nil when the file loaded and passed the invariant check
}

// OK reports whether the file is a valid document.
func (r CheckReport) OK() bool {
	return r.Err == nil
}
