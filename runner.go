package tex2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses. Run blocks until the command exits or ctx expires,
// and returns the merged stdout/stderr text as diagnostics.
type CommandRunner interface {
	Run(ctx context.Context, program string, args ...string) (output string, err error)
}

// ExecRunner implements CommandRunner using os/exec. Commands run in
// their own process group so a timeout kills the compiler together with
// any children it spawned.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, program string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, program, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		killProcessGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("starting %s: %w", program, err)
	}

	err := cmd.Wait()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return output.String(), ErrCommandTimeout
	}
	if ctx.Err() != nil {
		return output.String(), ctx.Err()
	}
	if err != nil {
		return output.String(), fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	return output.String(), nil
}
