package native

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// buildGraph constructs the include graph for the build. Starting from the
// sources, every discovered header is scanned in turn, so the graph carries
// header-level entries and a header's own modification is attributed
// correctly no matter which source the staleness traversal enters from.
// Each unique file is scanned at most once per build.
func (e *Engine) buildGraph(ctx context.Context, root string, sources []string, spec *domain.BuildSpec) (domain.DependencyGraph, error) {
	graph := domain.NewDependencyGraph()

	queue := make([]string, len(sources))
	copy(queue, sources)

	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]

		key := domain.NewPath(file)
		if graph.Has(key) {
			continue
		}

		includes, err := e.scanIncludes(ctx, root, file, spec)
		if err != nil {
			return nil, err
		}

		graph.Add(key, includes)
		for _, inc := range includes {
			if !graph.Has(inc) {
				queue = append(queue, inc.String())
			}
		}
	}

	return graph, nil
}

// scanIncludes runs the compiler in list-includes mode (-MM) on a single file
// and parses the emitted make rule. Non-zero exit is fatal for the whole
// build: a project whose includes cannot be resolved cannot be compiled
// either, and surfacing that per-file would only repeat the same error.
func (e *Engine) scanIncludes(ctx context.Context, root, file string, spec *domain.BuildSpec) ([]domain.Path, error) {
	args := []string{"-MM"}
	for _, dir := range spec.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, file)

	out, err := e.executor.Run(ctx, ports.Command{Name: spec.Compiler, Args: args, Dir: root})
	if err != nil {
		scanErr := zerr.Wrap(domain.ErrToolchain, "dependency scan failed to run")
		scanErr = zerr.With(scanErr, "command", spec.Compiler)
		scanErr = zerr.With(scanErr, "file", file)
		return nil, zerr.With(scanErr, "cause", err.Error())
	}
	if !out.Success() {
		scanErr := zerr.Wrap(domain.ErrToolchain, "dependency scan exited non-zero")
		scanErr = zerr.With(scanErr, "command", spec.Compiler)
		scanErr = zerr.With(scanErr, "file", file)
		return nil, zerr.With(scanErr, "stderr", out.Stderr)
	}

	return parseDepRule(out.Stdout, root, file), nil
}

// parseDepRule extracts the prerequisite paths from a make-style dependency
// rule ("main.o: main.c a.h b.h \"). The scanned file itself and paths that
// do not exist on disk are dropped, so generated or optional headers never
// poison the graph.
func parseDepRule(rule, root, scanned string) []domain.Path {
	_, deps, ok := strings.Cut(rule, ":")
	if !ok {
		return nil
	}

	var includes []domain.Path
	seen := make(map[string]bool)
	for _, field := range strings.Fields(deps) {
		if field == "\\" {
			continue
		}

		path := field
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		path = filepath.Clean(path)

		if path == scanned || seen[path] {
			continue
		}
		seen[path] = true

		if _, err := os.Stat(path); err != nil {
			continue
		}
		includes = append(includes, domain.NewPath(path))
	}

	return includes
}
