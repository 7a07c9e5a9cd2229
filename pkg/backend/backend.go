// Package backend implements the native package manager backends that
// install local artifacts, remove packages by name, and probe whether a
// package is installed.
package backend

import (
	"context"
	"errors"
	"os/exec"

	"xpkg/internal/executor"
	"xpkg/pkg/platform"
)

// InstalledState is the result of an idempotency probe.
type InstalledState int

const (
	// StateUnknown means the probe could not run or its result could not
	// be read. Callers treat it the same as not installed.
	StateUnknown InstalledState = iota
	StateInstalled
	StateNotInstalled
)

func (s InstalledState) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateNotInstalled:
		return "not installed"
	default:
		return "unknown"
	}
}

// Backend is a native package manager capable of installing a local
// artifact, removing a package by name, and probing installed state.
type Backend interface {
	// Name returns the short identifier for this backend ("deb", "rpm", "apk").
	Name() string

	// DisplayName returns a human-readable name.
	DisplayName() string

	// Type returns the package ecosystem this backend serves.
	Type() platform.PackageType

	// IsAvailable returns true if the backend's binary is on PATH.
	IsAvailable() bool

	// NeedsSudo returns true if mutating operations require root.
	NeedsSudo() bool

	// InstallFile installs a local package file. Requires elevation.
	InstallFile(ctx context.Context, path string) error

	// Remove removes an installed package by name. Requires elevation.
	Remove(ctx context.Context, name string) error

	// IsInstalled probes the package database. Probe failures degrade to
	// StateUnknown rather than erroring.
	IsInstalled(ctx context.Context, name string) InstalledState

	// SetBinary overrides the frontend binary (e.g. dnf instead of yum).
	SetBinary(binary string)

	// SetDryRun enables or disables dry-run mode.
	SetDryRun(dryRun bool)

	// SetVerbose enables or disables verbose command echoing.
	SetVerbose(verbose bool)
}

// Purger strips residual configuration files after a removal. Only the
// Deb backend implements it; purge is always best effort.
type Purger interface {
	Purge(ctx context.Context, name string) error
}

// Base provides the pieces shared by all backends.
type Base struct {
	name        string
	displayName string
	binary      string
	ptype       platform.PackageType
	needsSudo   bool
	exec        *executor.Executor
}

// NewBase creates a Base with the given parameters.
func NewBase(name, displayName, binary string, ptype platform.PackageType, needsSudo bool) *Base {
	return &Base{
		name:        name,
		displayName: displayName,
		binary:      binary,
		ptype:       ptype,
		needsSudo:   needsSudo,
		exec:        executor.New(false, false),
	}
}

// Name returns the short identifier for this backend.
func (b *Base) Name() string {
	return b.name
}

// DisplayName returns the human-readable name.
func (b *Base) DisplayName() string {
	return b.displayName
}

// Type returns the package ecosystem this backend serves.
func (b *Base) Type() platform.PackageType {
	return b.ptype
}

// IsAvailable returns true if the backend's binary is on PATH.
func (b *Base) IsAvailable() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

// NeedsSudo returns true if mutating operations require root.
func (b *Base) NeedsSudo() bool {
	return b.needsSudo
}

// Binary returns the frontend binary this backend invokes.
func (b *Base) Binary() string {
	return b.binary
}

// SetBinary overrides the frontend binary.
func (b *Base) SetBinary(binary string) {
	b.binary = binary
}

// Executor returns the executor instance.
func (b *Base) Executor() *executor.Executor {
	return b.exec
}

// SetDryRun enables or disables dry-run mode.
func (b *Base) SetDryRun(dryRun bool) {
	b.exec.SetDryRun(dryRun)
}

// SetVerbose enables or disables verbose mode.
func (b *Base) SetVerbose(verbose bool) {
	b.exec.SetVerbose(verbose)
}

// ForType returns the backend serving a package type.
func ForType(t platform.PackageType) (Backend, bool) {
	switch t {
	case platform.TypeDeb:
		return NewDeb(), true
	case platform.TypeRpm:
		return NewRpm(""), true
	case platform.TypeApk:
		return NewApk(), true
	default:
		return nil, false
	}
}

// probeState converts a probe invocation result into an InstalledState.
// A clean exit means installed, a nonzero exit means not installed, and
// anything else (binary missing, context canceled) is unknown.
func probeState(err error) InstalledState {
	if err == nil {
		return StateInstalled
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return StateNotInstalled
	}
	return StateUnknown
}
