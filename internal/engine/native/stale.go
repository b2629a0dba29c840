package native

import (
	"path/filepath"
	"time"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/core/domain"
)

// staleSources returns the subset of sources that must be recompiled. Each
// source is evaluated against its own object file with a fresh cache, since
// staleness of a shared header depends on which object's timestamp it is
// being compared to.
func (e *Engine) staleSources(sources []string, buildDir string, spec *domain.BuildSpec, graph domain.DependencyGraph) []string {
	var stale []string
	for _, src := range sources {
		obj := spec.ObjectPath(buildDir, src)
		objMtime, objExists := fs.Mtime(obj)

		cache := make(domain.StalenessCache)
		if isStale(domain.NewPath(src), objMtime, objExists, graph, cache) {
			stale = append(stale, src)
		}
	}
	return stale
}

// isStale decides whether a file forces a rebuild of the object it feeds
// into. The cache entry is written before descending into the include set:
// an include cycle (x.h includes y.h includes x.h) then terminates on the
// memoized short-circuit value instead of recursing forever. The final
// answer overwrites the guard entry once the subtree has been visited.
func isStale(file domain.Path, objMtime time.Time, objExists bool, graph domain.DependencyGraph, cache domain.StalenessCache) bool {
	if answer, ok := cache[file]; ok {
		return answer
	}
	cache[file] = true

	stale := false
	switch mtime, ok := fs.Mtime(file.String()); {
	case !ok:
		// Unreadable file: force the rebuild and let the compiler surface
		// the real error.
		stale = true
	case !objExists || mtime.After(objMtime):
		stale = true
	default:
		for inc := range graph.Includes(file) {
			if isStale(inc, objMtime, objExists, graph, cache) {
				stale = true
				break
			}
		}
	}

	cache[file] = stale
	return stale
}

// objectPaths maps every source to its object file path.
func objectPaths(sources []string, buildDir string, spec *domain.BuildSpec) []string {
	objects := make([]string, len(sources))
	for i, src := range sources {
		objects[i] = spec.ObjectPath(buildDir, src)
	}
	return objects
}

// baseName returns the file name without directory, for log and span labels.
func baseName(path string) string {
	return filepath.Base(path)
}
