// Package orchestrator dispatches each declared language to its toolchain:
// c and c++ to the native engine, known foreign languages to their canonical
// build command, and everything else to a skip.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"github.com/hackeros/hbuild/internal/engine/native"
	"go.trai.ch/zerr"
)

// externalCommands maps a foreign language to its canonical build command,
// run from the project root as an opaque external step.
var externalCommands = map[string][]string{
	"rust":    {"cargo", "build"},
	"go":      {"go", "build"},
	"odin":    {"odin", "build", "."},
	"crystal": {"crystal", "build", "main.cr"},
	"vala":    {"valac", "--pkg", "gio-2.0", "main.vala"},
}

// Orchestrator walks the declared languages and aggregates their outcomes.
// One failing language never halts the remaining ones.
type Orchestrator struct {
	engine   *native.Engine
	executor ports.Executor
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new Orchestrator.
func New(engine *native.Engine, executor ports.Executor, logger ports.Logger, tracer ports.Tracer) *Orchestrator {
	return &Orchestrator{
		engine:   engine,
		executor: executor,
		logger:   logger,
		tracer:   tracer,
	}
}

// SetTracer replaces the progress tracer on the orchestrator and the native
// engine it drives.
func (o *Orchestrator) SetTracer(tracer ports.Tracer) {
	o.tracer = tracer
	o.engine.SetTracer(tracer)
}

// Run builds every declared language in order and returns the per-language
// report. Build records are written to the store as each language concludes;
// store failures are logged and do not affect outcomes.
func (o *Orchestrator) Run(ctx context.Context, root string, cfg *domain.Config, store ports.RecordStore) *domain.Report {
	report := &domain.Report{}

	for _, language := range cfg.Specs.Languages {
		o.logger.Info("building " + language)
		started := time.Now()

		result := o.buildLanguage(ctx, root, language, cfg)
		report.Results = append(report.Results, result)

		switch result.Status {
		case domain.StatusFailed:
			o.logger.Error(zerr.With(zerr.Wrap(result.Err, "build failed"), "language", language))
		case domain.StatusSkipped:
			o.logger.Warn("skipping unsupported language " + language)
		default:
			o.logger.Info(language + " succeeded")
		}

		if store != nil {
			if err := store.Put(o.record(root, language, cfg, result, time.Since(started))); err != nil {
				o.logger.Error(zerr.Wrap(err, "failed to write build record"))
			}
		}
	}

	return report
}

// buildLanguage runs one language's Pending -> Running -> terminal transition.
func (o *Orchestrator) buildLanguage(ctx context.Context, root, language string, cfg *domain.Config) domain.LanguageResult {
	result := domain.LanguageResult{Language: language, Status: domain.StatusRunning}

	_, span := o.tracer.Start(ctx, "build "+language)
	defer span.End()

	var err error
	switch {
	case language == "c" || language == "c++":
		err = o.engine.Build(ctx, root, language, cfg.Build)
	case language == "python":
		err = o.buildPython(ctx, root)
	default:
		cmd, ok := externalCommands[language]
		if !ok {
			span.RecordError(domain.ErrUnsupportedLanguage)
			result.Status = domain.StatusSkipped
			return result
		}
		err = o.external(ctx, root, language, cmd)
	}

	if err != nil {
		span.RecordError(err)
		result.Status = domain.StatusFailed
		result.Err = err
		return result
	}

	result.Status = domain.StatusSucceeded
	return result
}

// buildPython delegates to pip when the project declares requirements;
// a python project without requirements.txt has nothing to build.
func (o *Orchestrator) buildPython(ctx context.Context, root string) error {
	if _, err := os.Stat(filepath.Join(root, "requirements.txt")); err != nil {
		return nil
	}
	return o.external(ctx, root, "python", []string{"pip", "install", "-r", "requirements.txt"})
}

// external runs a foreign toolchain command, treating it as a black box that
// yields only an exit status and captured output.
func (o *Orchestrator) external(ctx context.Context, root, language string, cmd []string) error {
	out, err := o.executor.Run(ctx, ports.Command{
		Name: cmd[0],
		Args: cmd[1:],
		Dir:  root,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "toolchain command failed to run"), "language", language)
	}
	if !out.Success() {
		return zerr.With(
			zerr.New(fmt.Sprintf("%s build command exited with status %d", language, out.ExitCode)),
			"stderr", out.Stderr,
		)
	}
	return nil
}

// record summarizes one language outcome for the on-disk ledger. Native
// successes also carry the target path and its content digest.
func (o *Orchestrator) record(root, language string, cfg *domain.Config, result domain.LanguageResult, took time.Duration) domain.BuildRecord {
	rec := domain.BuildRecord{
		Language:  language,
		Status:    result.Status,
		Duration:  took,
		Timestamp: time.Now(),
	}

	if (language == "c" || language == "c++") && result.Status == domain.StatusSucceeded {
		rec.Target = cfg.Build.TargetPath(root)
		if digest, err := fs.FileDigest(rec.Target); err == nil {
			rec.Digest = digest
		}
	}

	return rec
}
