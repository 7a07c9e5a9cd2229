package executor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	e := New(false, false)
	if e == nil {
		t.Fatal("New() returned nil")
	}
}

func TestOutput(t *testing.T) {
	e := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := e.Output(ctx, "echo", "hello")
	if err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("Output() = %s, want to contain 'hello'", output)
	}
}

func TestOutputDryRun(t *testing.T) {
	e := New(true, false)

	output, err := e.Output(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Output() in dry-run mode error: %v", err)
	}
	if output != "" {
		t.Errorf("Output() in dry-run mode should be empty, got: %s", output)
	}
}

func TestOutputQuiet(t *testing.T) {
	e := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := e.OutputQuiet(ctx, "echo", "quiet")
	if err != nil {
		t.Fatalf("OutputQuiet() error: %v", err)
	}
	if !strings.Contains(output, "quiet") {
		t.Errorf("OutputQuiet() = %s, want to contain 'quiet'", output)
	}
}

func TestOutputQuietExitError(t *testing.T) {
	e := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Probes rely on failing commands surfacing as *exec.ExitError.
	_, err := e.OutputQuiet(ctx, "false")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("OutputQuiet() error = %v, want *exec.ExitError", err)
	}
}

func TestRun(t *testing.T) {
	e := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Run(ctx, "true"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestRunFailing(t *testing.T) {
	e := New(false, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Run(ctx, "false"); err == nil {
		t.Error("Run() should return error for failing command")
	}
}

func TestRunDryRun(t *testing.T) {
	e := New(true, false)

	// Dry-run never executes, so a failing command succeeds.
	if err := e.Run(context.Background(), "false"); err != nil {
		t.Errorf("Run() in dry-run mode should not error: %v", err)
	}
}

func TestRunSudoDryRun(t *testing.T) {
	e := New(true, false)

	if err := e.RunSudo(context.Background(), "apt-get", "install", "-y", "htop"); err != nil {
		t.Errorf("RunSudo() in dry-run mode should not error: %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	e := New(false, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Output(ctx, "sleep", "10"); err == nil {
		t.Error("Output() should error with cancelled context")
	}
}

func TestCheckPrivileges(t *testing.T) {
	if err := CheckPrivileges(false); err != nil {
		t.Errorf("CheckPrivileges(false) = %v, want nil", err)
	}

	err := CheckPrivileges(true)
	if CanElevate() {
		if err != nil {
			t.Errorf("CheckPrivileges(true) = %v on a host that can elevate", err)
		}
	} else if !errors.Is(err, ErrNoPrivileges) {
		t.Errorf("CheckPrivileges(true) = %v, want ErrNoPrivileges", err)
	}
}
