// Package shell runs external toolchain processes under supervision.
package shell

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// interruptExitCode is the conventional exit status for termination by SIGINT.
const interruptExitCode = 130

// Registry is the process-wide collection of live child processes. A process
// appears in the registry exactly while it has been spawned and not yet
// reaped: the executor inserts it right after Start and removes it right
// after Wait returns. The interrupt handler only reads snapshots; it never
// removes entries.
type Registry struct {
	mu    sync.Mutex
	procs map[int]*os.Process
	order []int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{procs: make(map[int]*os.Process)}
}

// Add tracks a spawned process. The lock is held only for the insert, never
// across the blocking wait, so parallel compilations do not serialize here.
func (r *Registry) Add(p *os.Process) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[p.Pid] = p
	r.order = append(r.order, p.Pid)
}

// Remove untracks a process after its exit has been observed.
func (r *Registry) Remove(pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.procs, pid)
	for i, id := range r.order {
		if id == pid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live tracked processes.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.procs)
}

// snapshot returns the tracked processes in insertion order.
func (r *Registry) snapshot() []*os.Process {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*os.Process, 0, len(r.order))
	for _, pid := range r.order {
		if p, ok := r.procs[pid]; ok {
			out = append(out, p)
		}
	}
	return out
}

// KillAll force-terminates every tracked process. Children are spawned into
// their own process groups, so the group kill also reaps grandchildren left
// behind by delegated toolchains. A process that exited between the snapshot
// and the kill is a benign no-op. The process handle is used as a fallback,
// which cannot hit a recycled pid.
func (r *Registry) KillAll() {
	for _, p := range r.snapshot() {
		if err := unix.Kill(-p.Pid, unix.SIGKILL); err != nil {
			_ = p.Kill()
		}
	}
}

var installOnce sync.Once

// InstallInterruptHandler installs the global interrupt handler once. On
// SIGINT or SIGTERM it kills every tracked child and exits the program with a
// non-zero status. This registry is the only mechanism preventing orphaned
// compiler and linker subprocesses on cancellation.
func InstallInterruptHandler(r *Registry) {
	installOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-ch
			r.KillAll()
			os.Exit(interruptExitCode)
		}()
	})
}
