package domain

// DependencyGraph maps a file (source or header) to the set of files it
// includes, as reported by the toolchain's dependency-scan mode. It is built
// once per build and is read-only during staleness checks. A file missing
// from the graph is a leaf with no further dependencies.
type DependencyGraph map[Path]map[Path]struct{}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() DependencyGraph {
	return make(DependencyGraph)
}

// Has reports whether the graph already carries an entry for the file.
// The builder consults this before re-invoking the toolchain, so every file
// is scanned at most once per build.
func (g DependencyGraph) Has(file Path) bool {
	_, ok := g[file]
	return ok
}

// Add records the include set for a file, replacing any prior entry.
func (g DependencyGraph) Add(file Path, includes []Path) {
	set := make(map[Path]struct{}, len(includes))
	for _, inc := range includes {
		set[inc] = struct{}{}
	}
	g[file] = set
}

// Includes returns the include set of a file, or nil for a leaf.
func (g DependencyGraph) Includes(file Path) map[Path]struct{} {
	return g[file]
}

// StalenessCache memoizes "needs rebuild" answers during a single staleness
// query. An entry is written before descending into a file's includes, which
// terminates traversal of include cycles.
type StalenessCache map[Path]bool
