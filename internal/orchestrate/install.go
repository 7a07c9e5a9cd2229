package orchestrate

import (
	"context"
	"os"

	"xpkg/internal/fetch"
	"xpkg/internal/ui"
	"xpkg/pkg/backend"
	"xpkg/pkg/resolve"
)

// Install drives resolve, idempotency check, download, and native
// install. The temporary directory is removed on every exit path once it
// has been created, including install failures.
func (o *Orchestrator) Install(ctx context.Context) (Result, error) {
	ptype, akey := o.classify()
	target := resolve.Resolve(o.Manifest, ptype, akey, true)

	if target.Name == "" || target.URL == "" {
		missing := "url"
		if target.Name == "" {
			missing = "package name"
		}
		return "", &ConfigError{
			OSFamily: o.Facts.OSFamily,
			Arch:     o.Facts.Arch,
			Type:     ptype,
			ArchKey:  akey,
			Missing:  missing,
		}
	}

	b, ok := o.selectBackend(ptype)
	if !ok {
		// Classifier and selector cover the same closed set, so a
		// resolved target always has a backend. Kept as a guard.
		return "", &ConfigError{
			OSFamily: o.Facts.OSFamily,
			Arch:     o.Facts.Arch,
			Type:     ptype,
			ArchKey:  akey,
			Missing:  "backend",
		}
	}

	if o.DryRun {
		ui.InfoMsg("[dry-run] would download %s", target.URL)
		name, err := fetch.FileName(target.URL)
		if err != nil {
			return "", &PhaseError{Phase: PhaseDownload, Err: err}
		}
		// The backend's dry-run executor prints the install command.
		return ResultInstalled, b.InstallFile(ctx, name)
	}

	// A probe that cannot run must not block installs, so unknown is
	// treated the same as not installed.
	if state := b.IsInstalled(ctx, target.Name); state == backend.StateInstalled {
		return ResultSkipped, nil
	}

	dir, err := os.MkdirTemp("", "xpkg-")
	if err != nil {
		return "", &PhaseError{Phase: PhaseDownload, Err: err}
	}
	defer os.RemoveAll(dir)

	path, err := o.Fetcher.Fetch(ctx, target.URL, dir)
	if err != nil {
		return "", &PhaseError{Phase: PhaseDownload, Err: err}
	}

	if err := b.InstallFile(ctx, path); err != nil {
		return "", &PhaseError{Phase: PhaseInstall, Err: err}
	}

	return ResultInstalled, nil
}
