// Package resolve maps a classified platform onto a manifest entry.
package resolve

import (
	"xpkg/internal/manifest"
	"xpkg/pkg/platform"
)

// Target is the concrete artifact selected for one host. URL and Name
// are empty when the manifest has no matching entry; the install
// orchestrator decides whether that is fatal.
type Target struct {
	Type platform.PackageType
	Arch platform.ArchKey
	URL  string // populated only when resolving for install
	Name string
}

// Resolve looks up the manifest entry for the classified platform.
// Pure and total: unsupported platforms and missing entries produce an
// empty target, never an error and never a lookup on unsupported keys.
func Resolve(m *manifest.Manifest, ptype platform.PackageType, akey platform.ArchKey, wantInstall bool) Target {
	target := Target{Type: ptype, Arch: akey}

	if m == nil || ptype == platform.TypeUnsupported || akey == platform.ArchUnsupported {
		return target
	}

	entry, ok := m.Entry(ptype)
	if !ok {
		return target
	}

	target.Name = entry.Name
	if wantInstall {
		target.URL = entry.URLs[akey]
	}

	return target
}
