// Package codec implements the binary encoding shared by document files,
// history snapshots and the clipboard.
//
// Reading is split in two passes. A Probe walks the buffer and checks that the
// encoded shape is consistent without touching the destination; only when the
// probe succeeds and lands exactly on the end of the buffer does a Decoder
// re-read the buffer from the start and fill the destination in place.
//
// Encoding rules:
//   - fixed width scalars are little-endian;
//   - strings are a u64 length followed by the raw bytes;
//   - optionals are a one byte presence flag followed by the value if present;
//   - sequences and maps are a u64 count followed by the elements (maps are
//     written in ascending key order);
//   - sum types are a u64 tag followed by the payload of that alternative;
//   - aggregates are their fields in declaration order, without names.
package codec

import "github.com/cockroachdb/errors"

// MaxSize bounds every size field read from untrusted input, including the
// container payload size.
const MaxSize = 256 << 20

// Value is implemented by every aggregate that can be stored.
//
// CanLoad must not modify the receiver. Load may assume CanLoad succeeded on
// the same bytes.
type Value interface {
	Save(e *Encoder)
	CanLoad(p *Probe) bool
	Load(d *Decoder)
}

// Marshal encodes v into a new buffer.
func Marshal(v Value) []byte {
	e := NewEncoder()
	v.Save(e)

	return e.Bytes()
}

// Unmarshal validates data against v's shape and, only if the whole buffer is
// consumed exactly, loads it into v. On error v is left untouched.
func Unmarshal(data []byte, v Value) error {
	if err := Validate(data, v); err != nil {
		return err
	}

	d := NewDecoder(data)
	v.Load(d)

	if err := d.Err(); err != nil {
		return errors.NewAssertionErrorWithWrappedErrf(err, "load diverged from validation")
	}

	return nil
}

// Validate runs only the probe pass of Unmarshal.
func Validate(data []byte, v Value) error {
	if len(data) > MaxSize {
		return errors.Wrapf(ErrTooLarge, "payload of %d bytes", len(data))
	}

	p := NewProbe(data)
	if !v.CanLoad(p) {
		return errors.Wrapf(ErrInvalid, "malformed value near offset %d", p.Offset())
	}

	if p.Offset() != len(data) {
		return errors.Wrapf(ErrInvalid, "%d trailing bytes", len(data)-p.Offset())
	}

	return nil
}
