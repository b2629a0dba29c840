// Package app implements the application layer for hbuild.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/adapters/state"
	"github.com/hackeros/hbuild/internal/adapters/telemetry/progrock"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"github.com/hackeros/hbuild/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App wires the configuration loader, the orchestrator, and the ledger into
// the user-facing operations: make, clean, remake, setup.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *orchestrator.Orchestrator
	storeFactory state.StoreFactory
	executor     ports.Executor
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	orch *orchestrator.Orchestrator,
	storeFactory state.StoreFactory,
	executor ports.Executor,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		storeFactory: storeFactory,
		executor:     executor,
		logger:       logger,
		tracer:       tracer,
	}
}

// UseProgress swaps the no-op tracer for the progrock recorder. Called by
// the CLI before a build when progress recording was requested.
func (a *App) UseProgress() {
	a.tracer = progrock.New()
	a.orchestrator.SetTracer(a.tracer)
}

// Close flushes the tracer session.
func (a *App) Close() error {
	return a.tracer.Close()
}

// Make builds the project in the given folder. Per-language failures are
// reported but do not fail the command: the build as a whole succeeds once
// every declared language has been dispatched.
func (a *App) Make(ctx context.Context, folder string) error {
	root, err := projectRoot(folder)
	if err != nil {
		return err
	}

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.logger.Info("building project " + cfg.Metadata.Name)

	store, err := a.storeFactory(root)
	if err != nil {
		// A broken ledger must not block the build; records are advisory.
		a.logger.Error(zerr.Wrap(err, "failed to open build record store"))
		store = nil
	}

	report := a.orchestrator.Run(ctx, root, cfg, store)

	if failed := report.Failed(); len(failed) > 0 {
		a.logger.Warn(fmt.Sprintf("%d of %d languages failed", len(failed), len(report.Results)))
	} else {
		a.logger.Info("build complete")
	}

	return nil
}

// Clean removes the build directory, the recorded targets, and delegates to
// foreign clean commands when their marker files exist.
func (a *App) Clean(ctx context.Context, folder string) error {
	root, err := projectRoot(folder)
	if err != nil {
		return err
	}

	a.removeRecordedTargets(root)
	a.removeConfiguredTarget(root)

	buildDir := fs.BuildDir(root)
	if err := os.RemoveAll(buildDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove build directory"), "dir", buildDir)
	}

	// Foreign toolchains own their own state; delegate and tolerate failure.
	if _, err := os.Stat(filepath.Join(root, "Cargo.toml")); err == nil {
		a.delegateClean(ctx, root, []string{"cargo", "clean"})
	}
	if _, err := os.Stat(filepath.Join(root, "Makefile")); err == nil {
		a.delegateClean(ctx, root, []string{"make", "clean"})
	}

	a.logger.Info("clean complete")
	return nil
}

// Remake cleans and rebuilds.
func (a *App) Remake(ctx context.Context, folder string) error {
	if err := a.Clean(ctx, folder); err != nil {
		return err
	}
	return a.Make(ctx, folder)
}

// starterConfig is the minimal hk file written by setup.
const starterConfig = `! Example hbuild.config
[metadata]
-> name => MyProject
-> version => 0.1.0
`

// Setup writes a starter configuration into the folder. An existing
// configuration is never overwritten.
func (a *App) Setup(_ context.Context, folder string) error {
	root, err := projectRoot(folder)
	if err != nil {
		return err
	}

	path := filepath.Join(root, "hbuild.config")
	if _, err := os.Stat(path); err == nil {
		a.logger.Warn("config already exists")
		return nil
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil { //nolint:gosec // project config is world-readable
		return zerr.With(zerr.Wrap(err, "failed to write config"), "path", path)
	}

	a.logger.Info("setup complete")
	return nil
}

func (a *App) removeRecordedTargets(root string) {
	store, err := a.storeFactory(root)
	if err != nil {
		return
	}
	records, err := store.All()
	if err != nil {
		return
	}
	for _, rec := range records {
		if rec.Target != "" {
			_ = os.Remove(rec.Target)
		}
	}
}

func (a *App) removeConfiguredTarget(root string) {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return
	}
	_ = os.Remove(cfg.Build.TargetPath(root))
}

func (a *App) delegateClean(ctx context.Context, root string, cmd []string) {
	out, err := a.executor.Run(ctx, ports.Command{Name: cmd[0], Args: cmd[1:], Dir: root})
	if err != nil {
		a.logger.Error(zerr.Wrap(err, cmd[0]+" clean failed to run"))
		return
	}
	if !out.Success() {
		a.logger.Warn(cmd[0] + " clean failed")
	}
}

// projectRoot validates the folder argument and resolves it to an absolute path.
func projectRoot(folder string) (string, error) {
	root, err := filepath.Abs(folder)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve folder"), "folder", folder)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrFolderNotFound, "project folder is not a directory"), "folder", folder)
	}
	return root, nil
}
