// Package fs provides filesystem adapters: source location, build-directory
// layout, and content digests.
package fs

import (
	"path/filepath"
	"sort"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceLocator = (*Locator)(nil)

// Locator implements ports.SourceLocator using filepath.Glob.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate expands the source patterns against the project root. Matches from
// all patterns are merged into a set, so overlapping patterns never yield
// duplicates. A pattern with zero matches is tolerated; only an empty overall
// result is an error.
func (l *Locator) Locate(root string, patterns []string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob pattern"), "pattern", pattern)
		}

		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", match)
			}
			uniquePaths[abs] = true
		}
	}

	if len(uniquePaths) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoSources, "no pattern matched any file"), "patterns", patterns)
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}
