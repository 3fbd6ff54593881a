package codec

import "encoding/binary"

// Probe is the validation pass over an encoded buffer. It only advances its
// own cursor and never reads past the end of the buffer.
type Probe struct {
	buf []byte
	off int
}

// NewProbe returns a Probe positioned at the start of buf.
func NewProbe(buf []byte) *Probe {
	return &Probe{buf: buf}
}

// Offset returns the position of the probe cursor.
func (p *Probe) Offset() int {
	return p.off
}

// Remaining returns the number of unread bytes.
func (p *Probe) Remaining() int {
	return len(p.buf) - p.off
}

// Skip advances over n bytes.
func (p *Probe) Skip(n int) bool {
	if n < 0 || n > p.Remaining() {
		return false
	}

	p.off += n

	return true
}

func (p *Probe) take(n int) ([]byte, bool) {
	if n > p.Remaining() {
		return nil, false
	}

	b := p.buf[p.off : p.off+n]
	p.off += n

	return b, true
}

func (p *Probe) Uint8() (uint8, bool) {
	b, ok := p.take(1)
	if !ok {
		return 0, false
	}

	return b[0], true
}

// Bool accepts only the canonical encodings 0 and 1.
func (p *Probe) Bool() bool {
	v, ok := p.Uint8()

	return ok && v <= 1
}

func (p *Probe) Uint16() (uint16, bool) {
	b, ok := p.take(2)
	if !ok {
		return 0, false
	}

	return binary.LittleEndian.Uint16(b), true
}

func (p *Probe) Uint32() (uint32, bool) {
	b, ok := p.take(4)
	if !ok {
		return 0, false
	}

	return binary.LittleEndian.Uint32(b), true
}

func (p *Probe) Uint64() (uint64, bool) {
	b, ok := p.take(8)
	if !ok {
		return 0, false
	}

	return binary.LittleEndian.Uint64(b), true
}

// Size reads a u64 size field and rejects values above MaxSize or above the
// number of bytes left in the buffer.
func (p *Probe) Size() (int, bool) {
	n, ok := p.Uint64()
	if !ok || n > MaxSize || n > uint64(p.Remaining()) {
		return 0, false
	}

	return int(n), true
}

// Count reads an element count. Every encoded element occupies at least one
// byte, so a count larger than the remaining input is rejected up front.
func (p *Probe) Count() (int, bool) {
	return p.Size()
}

// String skips over an encoded string.
func (p *Probe) String() bool {
	n, ok := p.Size()

	return ok && p.Skip(n)
}

// ReadString returns the encoded string. Only map keys need the value during
// validation, for duplicate detection.
func (p *Probe) ReadString() (string, bool) {
	n, ok := p.Size()
	if !ok {
		return "", false
	}

	b, ok := p.take(n)
	if !ok {
		return "", false
	}

	return string(b), true
}

// Tag reads a sum type tag and checks it against the number of alternatives.
func (p *Probe) Tag(alternatives uint64) (uint64, bool) {
	tag, ok := p.Uint64()
	if !ok || tag >= alternatives {
		return 0, false
	}

	return tag, true
}
