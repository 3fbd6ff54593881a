package codec

import "github.com/cockroachdb/errors"

// ErrInvalid marks every failure of the validation pass. Truncated, oversized
// and version-mismatched input all satisfy errors.Is(err, ErrInvalid).
var ErrInvalid = errors.New("codec: invalid encoding")

var (
	// ErrTruncated indicates the input ended before a complete value was read.
	ErrTruncated = errors.Mark(errors.New("codec: truncated input"), ErrInvalid)

	// ErrTooLarge indicates a size field above MaxSize.
	ErrTooLarge = errors.Mark(errors.New("codec: size exceeds limit"), ErrInvalid)

	// ErrVersion indicates a container written by an incompatible version.
	ErrVersion = errors.Mark(errors.New("codec: unsupported save version"), ErrInvalid)
)
