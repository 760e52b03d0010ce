package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "swagger.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), OwnerReadWrite))

		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("new file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "new.yaml")
		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := SanitizeOutputPath("out.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("dot segments are cleaned", func(t *testing.T) {
		dir := t.TempDir()
		got, err := SanitizeOutputPath(filepath.Join(dir, "sub", "..", "out.json"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out.json"), got)
	})

	t.Run("symlink refused", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real.json")
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.WriteFile(real, []byte("{}"), OwnerReadWrite))
		require.NoError(t, os.Symlink(real, link))

		_, err := SanitizeOutputPath(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}

func TestWriteOutput(t *testing.T) {
	target := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, WriteOutput(target, []byte(`{"swagger":"2.0"}`)))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, `{"swagger":"2.0"}`, string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, OwnerReadWrite, info.Mode().Perm())

	err = WriteOutput(filepath.Join(t.TempDir(), "missing", "dir", "out.json"), []byte("{}"))
	assert.Error(t, err)
}
