package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("int main(void) { return 0; }\n"), 0o644))
}

func TestLocator_Locate(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "src", "main.c"))
	touch(t, filepath.Join(root, "src", "util.c"))
	touch(t, filepath.Join(root, "src", "util.h"))

	locator := fs.NewLocator()
	sources, err := locator.Locate(root, []string{"src/*.c"})
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, filepath.Join(root, "src", "main.c"), sources[0])
	assert.Equal(t, filepath.Join(root, "src", "util.c"), sources[1])
}

func TestLocator_Locate_OverlappingPatterns(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "src", "main.c"))

	locator := fs.NewLocator()
	sources, err := locator.Locate(root, []string{"src/*.c", "src/main.c", "*.c"})
	require.NoError(t, err)

	// Overlapping patterns must not yield duplicates.
	assert.Equal(t, []string{filepath.Join(root, "src", "main.c")}, sources)
}

func TestLocator_Locate_NoMatches(t *testing.T) {
	root := t.TempDir()

	locator := fs.NewLocator()
	_, err := locator.Locate(root, []string{"src/*.c", "*.c"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestLocator_Locate_PartialMatchIsFine(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "main.c"))

	locator := fs.NewLocator()
	sources, err := locator.Locate(root, []string{"src/*.c", "*.c"})
	require.NoError(t, err)
	assert.Len(t, sources, 1)
}
