package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

func TestLocalDocumentStore_SaveLoad(t *testing.T) {
	t.Run("round trips the payload", func(t *testing.T) {
		store := NewLocalDocumentStore()
		path := m.Path(filepath.Join(t.TempDir(), "suite.tbk"))
		payload := []byte("payload bytes")

		require.NoError(t, store.Save(path, payload))

		got, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("file starts with the container header", func(t *testing.T) {
		store := NewLocalDocumentStore()
		path := m.Path(filepath.Join(t.TempDir(), "suite.tbk"))

		require.NoError(t, store.Save(path, []byte{1, 2, 3}))

		raw, err := os.ReadFile(string(path))
		require.NoError(t, err)
		require.Len(t, raw, codec.HeaderLen+3)
		assert.Equal(t, byte(m.SaveVersion), raw[0])
		assert.Equal(t, byte(3), raw[8])
		assert.Equal(t, []byte{1, 2, 3}, raw[codec.HeaderLen:])
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		store := NewLocalDocumentStore()
		dir := t.TempDir()
		path := m.Path(filepath.Join(dir, "suite.tbk"))

		require.NoError(t, store.Save(path, []byte("first")))
		require.NoError(t, store.Save(path, []byte("second")))

		got, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("save into a missing directory fails", func(t *testing.T) {
		store := NewLocalDocumentStore()
		path := m.Path(filepath.Join(t.TempDir(), "missing", "suite.tbk"))

		require.Error(t, store.Save(path, []byte("x")))
	})
}

func TestLocalDocumentStore_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalDocumentStore().Load(m.Path(filepath.Join(t.TempDir(), "nope.tbk")))
		require.Error(t, err)
		assert.False(t, errors.Is(err, codec.ErrInvalid))
	})

	t.Run("truncated header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.tbk")
		require.NoError(t, os.WriteFile(path, []byte{1, 0, 0}, 0o644))

		_, err := NewLocalDocumentStore().Load(m.Path(path))
		require.True(t, errors.Is(err, codec.ErrInvalid))
		assert.True(t, errors.Is(err, codec.ErrTruncated))
	})

	t.Run("wrong version", func(t *testing.T) {
		data, err := codec.Seal(m.SaveVersion+1, []byte("x"))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "future.tbk")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		_, err = NewLocalDocumentStore().Load(m.Path(path))
		assert.True(t, errors.Is(err, codec.ErrVersion))
	})
}

func TestLocalDocumentStore_Exists(t *testing.T) {
	store := NewLocalDocumentStore()
	path := m.Path(filepath.Join(t.TempDir(), "suite.tbk"))

	ok, err := store.Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(path, nil))

	ok, err = store.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}
