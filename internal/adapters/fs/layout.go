package fs

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// BuildDirName is the object output directory under the project root.
const BuildDirName = "build"

// BuildDir returns the object output directory for a project root.
func BuildDir(root string) string {
	return filepath.Join(root, BuildDirName)
}

// EnsureBuildDir creates the object output directory if it does not exist.
func EnsureBuildDir(root string) (string, error) {
	dir := BuildDir(root)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create build directory"), "dir", dir)
	}
	return dir, nil
}

// Mtime returns the modification time of a path. The second return value is
// false when the path cannot be stat'd, which callers treat as "missing".
func Mtime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
