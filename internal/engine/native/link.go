package native

import (
	"context"
	"strings"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// linkOrArchive produces the final artifact when needed. Static builds go
// through the platform archiver; everything else through the compiler acting
// as linker.
func (e *Engine) linkOrArchive(ctx context.Context, root, buildDir string, spec *domain.BuildSpec, sources []string, recompiled bool, pkgLibs []string) error {
	target := spec.TargetPath(root)
	objects := objectPaths(sources, buildDir, spec)

	if !needsRelink(target, objects, recompiled) {
		e.logger.Info(spec.Target + ": up to date")
		return nil
	}

	_, span := e.tracer.Start(ctx, "link "+baseName(target))
	defer span.End()

	if spec.Kind == domain.KindStatic {
		return e.archive(ctx, span, target, objects)
	}
	return e.link(ctx, span, spec, target, objects, pkgLibs)
}

// needsRelink reports whether the target must be rebuilt: it is missing, a
// source was recompiled this run, or an existing object is newer than it.
func needsRelink(target string, objects []string, recompiled bool) bool {
	targetMtime, ok := fs.Mtime(target)
	if !ok || recompiled {
		return true
	}

	for _, obj := range objects {
		if objMtime, ok := fs.Mtime(obj); ok && objMtime.After(targetMtime) {
			return true
		}
	}
	return false
}

func (e *Engine) archive(ctx context.Context, span ports.Span, target string, objects []string) error {
	out, err := e.executor.Run(ctx, ports.Command{
		Name: "ar",
		Args: append([]string{"rcs", target}, objects...),
	})
	if err != nil {
		span.RecordError(err)
		runErr := zerr.Wrap(domain.ErrArchive, "archiver failed to run")
		runErr = zerr.With(runErr, "target", target)
		return zerr.With(runErr, "cause", err.Error())
	}
	if !out.Success() {
		failure := zerr.Wrap(domain.ErrArchive, "archiver exited non-zero")
		failure = zerr.With(failure, "target", target)
		failure = zerr.With(failure, "exit_code", out.ExitCode)
		failure = zerr.With(failure, "stderr", out.Stderr)
		span.RecordError(failure)
		return failure
	}

	e.logger.Info("archived " + target)
	return nil
}

func (e *Engine) link(ctx context.Context, span ports.Span, spec *domain.BuildSpec, target string, objects, pkgLibs []string) error {
	args := []string{"-O" + spec.Opt}
	if spec.Kind == domain.KindShared {
		args = append(args, "-shared")
	}
	args = append(args, objects...)
	for _, dir := range spec.LibDirs {
		args = append(args, "-L"+dir)
	}
	for _, lib := range spec.Libs {
		args = append(args, "-l"+lib)
	}
	args = append(args, spec.LDFlags...)
	args = append(args, pkgLibs...)
	args = append(args, "-o", target)

	out, err := e.executor.Run(ctx, ports.Command{Name: spec.Compiler, Args: args})
	if err != nil {
		span.RecordError(err)
		runErr := zerr.Wrap(domain.ErrLink, "linker failed to run")
		runErr = zerr.With(runErr, "target", target)
		return zerr.With(runErr, "cause", err.Error())
	}
	if !out.Success() {
		failure := zerr.Wrap(domain.ErrLink, "linker exited non-zero")
		failure = zerr.With(failure, "target", target)
		failure = zerr.With(failure, "exit_code", out.ExitCode)
		failure = zerr.With(failure, "stderr", out.Stderr)
		span.RecordError(failure)
		return failure
	}

	e.logger.Info("linked " + target)
	return nil
}

// splitFlags splits pkg-config output into individual flag tokens.
func splitFlags(out string) []string {
	return strings.Fields(out)
}
