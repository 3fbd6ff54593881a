package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := newFixture(t, newShowCmd())
		f.expectLoad("tests.tbk")

		require.NoError(t, f.run("show"))
		assert.Equal(t, defaultParallel, settings.GetInt(keyParallel))
		assert.Equal(t, slog.LevelWarn, logLevel.Level())
	})

	t.Run("home config file", func(t *testing.T) {
		f := newFixture(t, newShowCmd())

		home := os.Getenv("HOME")
		writeFile(t, filepath.Join(home, ".testbook.yaml"), "document: home.tbk\nlog-level: error\n")
		f.expectLoad("home.tbk")

		require.NoError(t, f.run("show"))
		assert.Equal(t, slog.LevelError, logLevel.Level())
	})

	t.Run("explicit config file", func(t *testing.T) {
		f := newFixture(t, newShowCmd())

		path := filepath.Join(t.TempDir(), "custom.yaml")
		writeFile(t, path, "document: custom\nparallel: 9\n")
		f.expectLoad("custom.tbk")

		require.NoError(t, f.run("--config", path, "show"))
		assert.Equal(t, 9, settings.GetInt(keyParallel))
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		f := newFixture(t, newShowCmd())

		err := f.run("--config", filepath.Join(t.TempDir(), "absent.yaml"), "show")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("environment overrides the file, flags override both", func(t *testing.T) {
		f := newFixture(t, newShowCmd())

		writeFile(t, filepath.Join(os.Getenv("HOME"), ".testbook.yaml"), "document: home.tbk\n")
		t.Setenv("TESTBOOK_DOCUMENT", "env.tbk")
		f.expectLoad("env.tbk")

		require.NoError(t, f.run("show"))

		f.expectLoad("flag.tbk")
		require.NoError(t, f.run("--file", "flag.tbk", "show"))
	})

	t.Run("invalid log level", func(t *testing.T) {
		f := newFixture(t, newShowCmd())

		err := f.run("--log-level", "loud", "show")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log-level")
	})

	t.Cleanup(func() { logLevel.Set(slog.LevelWarn) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
