package orchestrate

import (
	"context"

	"xpkg/internal/ui"
	"xpkg/pkg/backend"
	"xpkg/pkg/resolve"
)

// Remove drives resolve and the native removal, plus the Deb-only purge
// of residual configuration. A manifest with no package name for this
// host is a silent no-op, not an error.
func (o *Orchestrator) Remove(ctx context.Context) (Result, error) {
	ptype, akey := o.classify()
	target := resolve.Resolve(o.Manifest, ptype, akey, false)

	if target.Name == "" {
		return ResultNoop, nil
	}

	b, ok := o.selectBackend(ptype)
	if !ok {
		return ResultNoop, nil
	}

	// A package the manager does not know about is not an error. Purge
	// still runs: an earlier removal may have left configuration behind.
	if !o.DryRun && b.IsInstalled(ctx, target.Name) == backend.StateNotInstalled {
		o.purge(ctx, b, target.Name)
		return ResultNoop, nil
	}

	if err := b.Remove(ctx, target.Name); err != nil {
		return "", &PhaseError{Phase: PhaseRemove, Err: err}
	}

	o.purge(ctx, b, target.Name)
	return ResultRemoved, nil
}

// purge is best effort: failures are reported and swallowed, never fatal.
func (o *Orchestrator) purge(ctx context.Context, b backend.Backend, name string) {
	p, ok := b.(backend.Purger)
	if !ok {
		return
	}
	if err := p.Purge(ctx, name); err != nil {
		ui.WarningMsg("purge of %s failed (ignored): %v", name, err)
	}
}
