package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"

	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec, registering every child
// with the Registry for the duration of its life.
type Executor struct {
	registry *Registry
	logger   ports.Logger
}

// NewExecutor creates a new Executor backed by the given registry.
func NewExecutor(registry *Registry, logger ports.Logger) *Executor {
	return &Executor{
		registry: registry,
		logger:   logger,
	}
}

// Run spawns the command with captured output and blocks until it exits. The
// child is placed in its own process group so the interrupt handler can tear
// down the whole subtree.
func (e *Executor) Run(ctx context.Context, cmd ports.Command) (ports.Outcome, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // toolchain invocation from the build spec
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	e.logger.Info("exec: " + cmd.Name + " " + strings.Join(cmd.Args, " "))

	if err := c.Start(); err != nil {
		return ports.Outcome{}, zerr.With(zerr.Wrap(err, "failed to spawn process"), "command", cmd.Name)
	}

	e.registry.Add(c.Process)
	err := c.Wait()
	e.registry.Remove(c.Process.Pid)

	outcome := ports.Outcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		return outcome, zerr.With(zerr.Wrap(err, "failed to wait for process"), "command", cmd.Name)
	}

	return outcome, nil
}
