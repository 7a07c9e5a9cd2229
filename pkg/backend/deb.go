package backend

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"xpkg/pkg/platform"
)

// Deb implements Backend for the Debian/Ubuntu apt family.
type Deb struct {
	*Base
}

// NewDeb creates the Debian family backend.
func NewDeb() *Deb {
	return &Deb{
		Base: NewBase("deb", "APT (Debian family)", "apt-get", platform.TypeDeb, true),
	}
}

// InstallFile installs a local .deb. apt-get resolves the artifact's
// dependencies from the configured repositories.
func (d *Deb) InstallFile(ctx context.Context, path string) error {
	return d.Executor().RunSudo(ctx, d.Binary(), "install", "-y", path)
}

// Remove removes an installed package by name.
func (d *Deb) Remove(ctx context.Context, name string) error {
	return d.Executor().RunSudo(ctx, d.Binary(), "remove", "-y", name)
}

// Purge strips residual configuration files left behind after removal.
func (d *Deb) Purge(ctx context.Context, name string) error {
	return d.Executor().RunSudo(ctx, "dpkg", "--purge", name)
}

// IsInstalled queries the dpkg status database.
func (d *Deb) IsInstalled(ctx context.Context, name string) InstalledState {
	out, err := d.Executor().OutputQuiet(ctx, "dpkg-query", "-W", "-f=${Status}", name)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// dpkg-query exits nonzero for packages it has never seen.
			return StateNotInstalled
		}
		return StateUnknown
	}
	return parseDpkgStatus(out)
}

// parseDpkgStatus reads a dpkg ${Status} string. Removed-but-not-purged
// packages report "deinstall ok config-files", so matching on a bare
// "installed" substring is not enough.
func parseDpkgStatus(status string) InstalledState {
	if strings.Contains(status, "install ok installed") {
		return StateInstalled
	}
	return StateNotInstalled
}
