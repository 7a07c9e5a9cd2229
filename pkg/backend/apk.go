package backend

import (
	"context"

	"xpkg/pkg/platform"
)

// Apk implements Backend for Alpine Linux's apk package manager.
type Apk struct {
	*Base
}

// NewApk creates the Alpine backend.
func NewApk() *Apk {
	return &Apk{
		Base: NewBase("apk", "APK (Alpine Linux)", "apk", platform.TypeApk, true),
	}
}

// InstallFile installs a local .apk. Side-loaded artifacts carry no
// signature the keyring knows, so --allow-untrusted is required.
func (a *Apk) InstallFile(ctx context.Context, path string) error {
	return a.Executor().RunSudo(ctx, a.Binary(), "add", "--allow-untrusted", path)
}

// Remove removes an installed package by name.
func (a *Apk) Remove(ctx context.Context, name string) error {
	return a.Executor().RunSudo(ctx, a.Binary(), "del", name)
}

// IsInstalled checks the installed database for an exact package name.
func (a *Apk) IsInstalled(ctx context.Context, name string) InstalledState {
	_, err := a.Executor().OutputQuiet(ctx, a.Binary(), "info", "-e", name)
	return probeState(err)
}
