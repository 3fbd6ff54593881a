// Package adapter contains the infrastructure adapters of the testbook CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

// DocumentStore reads and writes document containers. It hides direct os
// access so the editor can be tested without touching the disk.
type DocumentStore interface {
	// Load reads the container at path and returns its payload. The header
	// is checked before the payload is read.
	Load(path m.Path) ([]byte, error)

	// Save writes payload to path inside a container. The file is replaced
	// atomically, so a failed save leaves the previous version intact.
	Save(path m.Path, payload []byte) error

	// Exists reports whether a file is present at path.
	Exists(path m.Path) (bool, error)
}

// LocalDocumentStore is the filesystem implementation of DocumentStore.
type LocalDocumentStore struct {
	version uint64
	perm    fs.FileMode
}

// NewLocalDocumentStore constructs a LocalDocumentStore writing containers
// stamped with the current document save version.
func NewLocalDocumentStore() *LocalDocumentStore {
	return &LocalDocumentStore{version: m.SaveVersion, perm: 0o644}
}

func (s *LocalDocumentStore) Load(path m.Path) ([]byte, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	payload, err := codec.ReadContainer(f, s.version)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return payload, nil
}

func (s *LocalDocumentStore) Save(path m.Path, payload []byte) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".*")
	if err != nil {
		return errors.Wrapf(err, "save %s", path)
	}

	committed := false

	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := codec.WriteContainer(tmp, s.version, payload); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	if err := tmp.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", path)
	}

	if err := tmp.Chmod(s.perm); err != nil {
		return errors.Wrapf(err, "chmod %s", path)
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}

	if err := os.Rename(tmp.Name(), string(path)); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true

		return errors.Wrapf(err, "rename %s", path)
	}

	committed = true

	return nil
}

func (s *LocalDocumentStore) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrapf(err, "stat %s", path)
}
