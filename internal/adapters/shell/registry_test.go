package shell_test

import (
	"os/exec"
	"syscall"
	"testing"

	"github.com/hackeros/hbuild/internal/adapters/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddRemove(t *testing.T) {
	r := shell.NewRegistry()
	assert.Equal(t, 0, r.Len())

	cmd := exec.Command("sleep", "30")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	require.NoError(t, cmd.Start())
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	r.Add(cmd.Process)
	assert.Equal(t, 1, r.Len())

	r.Remove(cmd.Process.Pid)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_KillAll(t *testing.T) {
	r := shell.NewRegistry()

	cmd := exec.Command("sleep", "30")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	require.NoError(t, cmd.Start())
	r.Add(cmd.Process)

	r.KillAll()

	err := cmd.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "killed")
}

func TestRegistry_KillAll_ExitedProcess(t *testing.T) {
	r := shell.NewRegistry()

	cmd := exec.Command("true")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	require.NoError(t, cmd.Start())
	r.Add(cmd.Process)
	require.NoError(t, cmd.Wait())

	// The process is already reaped; killing it must be a harmless no-op.
	r.KillAll()
}
