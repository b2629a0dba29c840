// Package native implements the incremental compile-link-archive pipeline
// for C and C++: source discovery, include-graph construction, staleness
// analysis, parallel compilation, and the final link or archive step.
package native

import (
	"context"
	"fmt"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine drives one native build pipeline per invocation.
type Engine struct {
	locator  ports.SourceLocator
	executor ports.Executor
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new Engine.
func New(locator ports.SourceLocator, executor ports.Executor, logger ports.Logger, tracer ports.Tracer) *Engine {
	return &Engine{
		locator:  locator,
		executor: executor,
		logger:   logger,
		tracer:   tracer,
	}
}

// SetTracer replaces the progress tracer. Called by the CLI before the build
// starts when progress recording is requested.
func (e *Engine) SetTracer(tracer ports.Tracer) {
	e.tracer = tracer
}

// Build runs the full pipeline for one language against the project root.
// Graph building, staleness analysis, and linking run sequentially on the
// calling goroutine; only compilation fans out across workers.
func (e *Engine) Build(ctx context.Context, root, language string, spec domain.BuildSpec) error {
	spec = withLanguageDefaults(spec, language)

	buildDir, err := fs.EnsureBuildDir(root)
	if err != nil {
		return err
	}

	sources, err := e.locator.Locate(root, spec.Sources)
	if err != nil {
		return err
	}

	pkgCFlags, err := e.pkgConfigFlags(ctx, spec.PkgConfig, "--cflags")
	if err != nil {
		return err
	}
	pkgLibs, err := e.pkgConfigFlags(ctx, spec.PkgConfig, "--libs")
	if err != nil {
		return err
	}

	graph, err := e.buildGraph(ctx, root, sources, &spec)
	if err != nil {
		return err
	}

	stale := e.staleSources(sources, buildDir, &spec, graph)
	e.logger.Info(fmt.Sprintf("%s: %d of %d translation units stale", language, len(stale), len(sources)))

	if err := e.compileAll(ctx, root, buildDir, &spec, stale, pkgCFlags); err != nil {
		return err
	}

	return e.linkOrArchive(ctx, root, buildDir, &spec, sources, len(stale) > 0, pkgLibs)
}

// withLanguageDefaults fills the spec fields the configuration left empty
// with the conventional toolchain for the language being built.
func withLanguageDefaults(spec domain.BuildSpec, language string) domain.BuildSpec {
	cpp := language == "c++"

	if spec.Compiler == "" {
		if cpp {
			spec.Compiler = "c++"
		} else {
			spec.Compiler = "cc"
		}
	}
	if spec.Std == "" {
		if cpp {
			spec.Std = "c++17"
		} else {
			spec.Std = "c17"
		}
	}
	if len(spec.Sources) == 0 {
		if cpp {
			spec.Sources = []string{"src/*.cpp", "src/*.cc", "*.cpp", "*.cc"}
		} else {
			spec.Sources = []string{"src/*.c", "*.c"}
		}
	}
	return spec
}

// pkgConfigFlags queries pkg-config for the given mode (--cflags or --libs).
// A failing query is a toolchain error and aborts the whole build.
func (e *Engine) pkgConfigFlags(ctx context.Context, pkgs []string, mode string) ([]string, error) {
	if len(pkgs) == 0 {
		return nil, nil
	}

	out, err := e.executor.Run(ctx, ports.Command{
		Name: "pkg-config",
		Args: append([]string{mode}, pkgs...),
	})
	if err != nil {
		queryErr := zerr.Wrap(domain.ErrToolchain, "pkg-config query failed to run")
		queryErr = zerr.With(queryErr, "command", "pkg-config")
		return nil, zerr.With(queryErr, "cause", err.Error())
	}
	if !out.Success() {
		queryErr := zerr.Wrap(domain.ErrToolchain, "pkg-config query exited non-zero")
		queryErr = zerr.With(queryErr, "command", "pkg-config")
		return nil, zerr.With(queryErr, "stderr", out.Stderr)
	}

	return splitFlags(out.Stdout), nil
}
