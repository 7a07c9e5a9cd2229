package orchestrate

import (
	"fmt"

	"xpkg/pkg/platform"
)

// Phase identifies which step of a run produced an error.
type Phase string

const (
	PhaseResolve  Phase = "resolve"
	PhaseDownload Phase = "download"
	PhaseInstall  Phase = "install"
	PhaseRemove   Phase = "remove"
	PhasePurge    Phase = "purge"
)

// ConfigError reports a manifest that cannot satisfy an install on the
// resolved platform. It always fires before any side effect.
type ConfigError struct {
	OSFamily string
	Arch     string
	Type     platform.PackageType
	ArchKey  platform.ArchKey
	Missing  string // "url" or "package name"
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("manifest has no %s for os family %q (package type %q, architecture %q, arch key %q)",
		e.Missing, e.OSFamily, e.Type, e.Arch, e.ArchKey)
}

// PhaseError annotates a collaborator failure with the phase it came from.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
