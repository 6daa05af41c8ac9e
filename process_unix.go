//go:build !windows

package tex2pdf

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the command in its own process group so the
// whole compiler process tree can be killed at once.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup kills a process and all its children by sending
// SIGKILL to the process group (negative PID).
func killProcessGroup(pid int) {
	// Best-effort cleanup; cmd.Process.Kill() is the fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
