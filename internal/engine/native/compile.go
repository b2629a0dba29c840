package native

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// compileAll compiles the stale sources across a worker pool sized to the
// available CPU cores. The first failing compile stops further scheduling;
// compilations already dispatched run to completion. The pool never cancels
// an in-flight compiler: teardown of running children is the interrupt
// handler's job.
func (e *Engine) compileAll(ctx context.Context, root, buildDir string, spec *domain.BuildSpec, stale []string, pkgCFlags []string) error {
	if len(stale) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var failed atomic.Bool
	var mu sync.Mutex
	var errs error

	for _, src := range stale {
		if failed.Load() {
			break
		}

		g.Go(func() error {
			if failed.Load() {
				return nil
			}
			if err := e.compileOne(ctx, root, buildDir, spec, src, pkgCFlags); err != nil {
				failed.Store(true)
				mu.Lock()
				errs = errors.Join(errs, err)
				mu.Unlock()
				return err
			}
			return nil
		})
	}

	_ = g.Wait()
	return errs
}

// compileOne builds the full compiler invocation for one translation unit
// and runs it through the supervised executor.
func (e *Engine) compileOne(ctx context.Context, root, buildDir string, spec *domain.BuildSpec, src string, pkgCFlags []string) error {
	obj := spec.ObjectPath(buildDir, src)

	_, span := e.tracer.Start(ctx, "compile "+baseName(src))
	defer span.End()

	out, err := e.executor.Run(ctx, ports.Command{
		Name: spec.Compiler,
		Args: compileArgs(spec, src, obj, pkgCFlags),
		Dir:  root,
	})
	if err != nil {
		span.RecordError(err)
		runErr := zerr.Wrap(domain.ErrCompile, "compiler failed to run")
		runErr = zerr.With(runErr, "file", src)
		return zerr.With(runErr, "cause", err.Error())
	}

	_, _ = span.Write([]byte(out.Stderr))

	if !out.Success() {
		failure := zerr.Wrap(domain.ErrCompile, "compiler exited non-zero")
		failure = zerr.With(failure, "file", src)
		failure = zerr.With(failure, "exit_code", out.ExitCode)
		e.logger.Error(zerr.With(failure, "stderr", out.Stderr))
		span.RecordError(failure)
		return failure
	}

	return nil
}

// compileArgs assembles one compile invocation: standard, optimization,
// include and preprocessor flags, position-independent code when the build
// kind needs it, then the source and its object output.
func compileArgs(spec *domain.BuildSpec, src, obj string, pkgCFlags []string) []string {
	args := []string{"-std=" + spec.Std, "-O" + spec.Opt}
	if spec.NativeArch {
		args = append(args, "-march=native")
	}
	if spec.Kind == domain.KindShared {
		args = append(args, "-fPIC")
	}
	for _, dir := range spec.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, spec.CFlags...)
	args = append(args, pkgCFlags...)
	args = append(args, "-c", src, "-o", obj)
	return args
}
