package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureBuildDir(t *testing.T) {
	root := t.TempDir()

	dir, err := fs.EnsureBuildDir(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "build"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	again, err := fs.EnsureBuildDir(root)
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestMtime(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.c")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	mtime, ok := fs.Mtime(path)
	assert.True(t, ok)
	assert.False(t, mtime.IsZero())

	_, ok = fs.Mtime(filepath.Join(root, "missing.c"))
	assert.False(t, ok)
}

func TestFileDigest(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("world"), 0o644))

	digestA, err := fs.FileDigest(a)
	require.NoError(t, err)
	assert.Len(t, digestA, 16)

	digestA2, err := fs.FileDigest(a)
	require.NoError(t, err)
	assert.Equal(t, digestA, digestA2)

	digestB, err := fs.FileDigest(b)
	require.NoError(t, err)
	assert.NotEqual(t, digestA, digestB)
}

func TestFileDigest_Missing(t *testing.T) {
	_, err := fs.FileDigest(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
