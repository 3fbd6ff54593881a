package codec

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Decoder is the load pass. It expects input already accepted by a Probe;
// any inconsistency is recorded as a sticky error and zero values are
// returned from then on.
type Decoder struct {
	buf []byte
	off int
	err error
}

// NewDecoder returns a Decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Offset returns the position of the read cursor.
func (d *Decoder) Offset() int {
	return d.off
}

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}

	if n < 0 || n > len(d.buf)-d.off {
		d.err = errors.Wrapf(ErrTruncated, "need %d bytes at offset %d", n, d.off)
		return nil
	}

	b := d.buf[d.off : d.off+n]
	d.off += n

	return b
}

func (d *Decoder) Uint8() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

func (d *Decoder) Bool() bool {
	return d.Uint8() != 0
}

func (d *Decoder) Uint16() uint16 {
	b := d.take(2)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint16(b)
}

func (d *Decoder) Uint32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint32(b)
}

func (d *Decoder) Uint64() uint64 {
	b := d.take(8)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint64(b)
}

// Size reads a u64 size or count field.
func (d *Decoder) Size() int {
	n := d.Uint64()
	if n > MaxSize {
		if d.err == nil {
			d.err = errors.Wrapf(ErrTooLarge, "size %d at offset %d", n, d.off-8)
		}

		return 0
	}

	return int(n)
}

func (d *Decoder) String() string {
	n := d.Size()
	if n == 0 {
		return ""
	}

	return string(d.take(n))
}

// Tag reads a sum type tag.
func (d *Decoder) Tag() uint64 {
	return d.Uint64()
}

// Fail records err unless an earlier error is already set. Load methods use
// it when a tag or enum value that validation should have rejected shows up.
func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}
