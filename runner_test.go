package tex2pdf

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test drives /bin/sh")
	}
}

func TestExecRunnerSuccess(t *testing.T) {
	skipWithoutShell(t)

	r := &ExecRunner{}
	output, err := r.Run(context.Background(), "sh", "-c", "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("Run(): %v", err)
	}
	// stdout and stderr are merged diagnostics
	if !strings.Contains(output, "out") || !strings.Contains(output, "err") {
		t.Errorf("merged output = %q, want both streams", output)
	}
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	r := &ExecRunner{}
	output, err := r.Run(context.Background(), "sh", "-c", "echo log; exit 3")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Run() err = %v, want ErrCommandFailed", err)
	}
	if !strings.Contains(output, "log") {
		t.Errorf("output %q lost on failure", output)
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	skipWithoutShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := &ExecRunner{}
	start := time.Now()
	_, err := r.Run(ctx, "sh", "-c", "sleep 10")
	if !errors.Is(err, ErrCommandTimeout) {
		t.Fatalf("Run() err = %v, want ErrCommandTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("timed-out command held the caller for %v", elapsed)
	}
}

func TestExecRunnerMissingProgram(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), "definitely-not-a-latex-engine")
	if err == nil {
		t.Fatal("Run() with a missing program succeeded")
	}
	if !strings.Contains(err.Error(), "starting") {
		t.Errorf("error %q does not indicate a start failure", err)
	}
}
