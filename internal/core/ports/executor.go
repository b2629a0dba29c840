// Package ports defines the core interfaces for the application.
package ports

import "context"

// Command describes one external toolchain invocation.
type Command struct {
	// Name is the executable to invoke, resolved through PATH.
	Name string
	// Args are the command arguments, excluding the executable name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// Outcome is the observed result of a tracked process that ran to completion.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero.
func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

// Executor runs external toolchain processes under supervision. Every spawned
// process is registered with the process registry for its lifetime so that an
// interrupt can tear down all live children.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run spawns the command with captured standard output and error and
	// blocks until the process exits. A non-zero exit status is reported
	// through the Outcome, not through err; err is reserved for failures to
	// spawn or wait (for example a missing executable).
	Run(ctx context.Context, cmd Command) (Outcome, error)
}
