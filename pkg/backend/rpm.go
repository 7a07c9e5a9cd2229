package backend

import (
	"context"

	"xpkg/pkg/platform"
)

// Rpm implements Backend for the Red Hat yum/dnf family.
type Rpm struct {
	*Base
}

// NewRpm creates the Red Hat family backend. binary selects the frontend
// to drive; empty means yum. Newer hosts can pass "dnf".
func NewRpm(binary string) *Rpm {
	if binary == "" {
		binary = "yum"
	}
	return &Rpm{
		Base: NewBase("rpm", "YUM (Red Hat family)", binary, platform.TypeRpm, true),
	}
}

// InstallFile installs a local .rpm, pulling dependencies from the
// configured repositories.
func (r *Rpm) InstallFile(ctx context.Context, path string) error {
	return r.Executor().RunSudo(ctx, r.Binary(), "install", "-y", path)
}

// Remove removes an installed package by name.
func (r *Rpm) Remove(ctx context.Context, name string) error {
	return r.Executor().RunSudo(ctx, r.Binary(), "remove", "-y", name)
}

// IsInstalled queries the rpm database directly; the frontend choice
// does not matter for a read-only probe.
func (r *Rpm) IsInstalled(ctx context.Context, name string) InstalledState {
	_, err := r.Executor().OutputQuiet(ctx, "rpm", "-q", name)
	return probeState(err)
}
