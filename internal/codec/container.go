package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

// HeaderLen is the size of the container header: save version and payload
// size, both u64.
const HeaderLen = 16

// WriteContainer writes the header followed by payload.
func WriteContainer(w io.Writer, version uint64, payload []byte) error {
	if len(payload) > MaxSize {
		return errors.Wrapf(ErrTooLarge, "payload of %d bytes", len(payload))
	}

	var header [HeaderLen]byte
	binary.LittleEndian.PutUint64(header[0:8], version)
	binary.LittleEndian.PutUint64(header[8:16], uint64(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return errors.Wrap(err, "write container header")
	}

	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "write container payload")
	}

	return nil
}

// ReadContainer reads a container written by WriteContainer with the same
// version and returns its payload. The payload size is checked against
// MaxSize before anything is allocated for the body.
func ReadContainer(r io.Reader, version uint64) ([]byte, error) {
	var header [HeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "container header: %v", err)
	}

	got := binary.LittleEndian.Uint64(header[0:8])
	if got != version {
		return nil, errors.Wrapf(ErrVersion, "got version %d, want %d", got, version)
	}

	size := binary.LittleEndian.Uint64(header[8:16])
	if size > MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "payload size %d", size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "container payload: %v", err)
	}

	return payload, nil
}

// Seal is WriteContainer into a fresh byte slice.
func Seal(version uint64, payload []byte) ([]byte, error) {
	var buf bytes.Buffer

	buf.Grow(HeaderLen + len(payload))

	if err := WriteContainer(&buf, version, payload); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unseal is ReadContainer over an in-memory buffer. Bytes after the payload
// are rejected.
func Unseal(data []byte, version uint64) ([]byte, error) {
	r := bytes.NewReader(data)

	payload, err := ReadContainer(r, version)
	if err != nil {
		return nil, err
	}

	if r.Len() != 0 {
		return nil, errors.Wrapf(ErrInvalid, "%d bytes after container payload", r.Len())
	}

	return payload, nil
}
