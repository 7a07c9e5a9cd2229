// Package orchestrate drives the install and removal flows: classify the
// host, resolve the manifest, and call the download and backend
// collaborators in order.
package orchestrate

import (
	"context"

	"xpkg/internal/manifest"
	"xpkg/pkg/backend"
	"xpkg/pkg/platform"
)

// Fetcher downloads a URL into a directory and returns the file path.
type Fetcher interface {
	Fetch(ctx context.Context, url, destDir string) (string, error)
}

// Result is the terminal state of a run.
type Result string

const (
	ResultInstalled Result = "installed"
	// ResultSkipped means the package was already installed and the run
	// had no side effects.
	ResultSkipped Result = "skipped"
	ResultRemoved Result = "removed"
	// ResultNoop means the manifest had nothing for this host to do.
	ResultNoop Result = "noop"
)

// Orchestrator executes one desired-state run against one host. Each run
// is independent; the struct holds no cross-run state.
type Orchestrator struct {
	Facts    *platform.Facts
	Manifest *manifest.Manifest
	Fetcher  Fetcher

	// Select picks the backend for a package type. Defaults to
	// backend.ForType; the CLI swaps in a selector that applies
	// configuration overrides, tests swap in fakes.
	Select func(platform.PackageType) (backend.Backend, bool)

	// DryRun reports intended actions without downloading or mutating.
	DryRun bool
}

// New wires an orchestrator with the default backend selector.
func New(facts *platform.Facts, m *manifest.Manifest, f Fetcher) *Orchestrator {
	return &Orchestrator{
		Facts:    facts,
		Manifest: m,
		Fetcher:  f,
		Select:   backend.ForType,
	}
}

// classify runs the pure classification pipeline over the host facts.
func (o *Orchestrator) classify() (platform.PackageType, platform.ArchKey) {
	return platform.ClassifyOS(o.Facts.OSFamily), platform.ClassifyArch(o.Facts.Arch)
}

func (o *Orchestrator) selectBackend(t platform.PackageType) (backend.Backend, bool) {
	if o.Select != nil {
		return o.Select(t)
	}
	return backend.ForType(t)
}
