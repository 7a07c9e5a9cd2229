package cli

import (
	"context"
	"fmt"

	"xpkg/internal/executor"
	"xpkg/internal/fetch"
	"xpkg/internal/history"
	"xpkg/internal/manifest"
	"xpkg/internal/orchestrate"
	"xpkg/internal/ui"
	"xpkg/pkg/backend"
	"xpkg/pkg/platform"
	"xpkg/pkg/resolve"
)

// loadManifest reads the manifest named by the --manifest flag.
func loadManifest() (*manifest.Manifest, error) {
	return manifest.Load(manifestFile)
}

// selectBackend returns the backend for a package type with the
// configured overrides applied.
func selectBackend(t platform.PackageType) (backend.Backend, bool) {
	b, ok := backend.ForType(t)
	if !ok {
		return nil, false
	}

	if bc := cfg.GetBackendConfig(b.Name()); bc.Binary != "" {
		b.SetBinary(bc.Binary)
	}
	b.SetDryRun(cfg.General.DryRun)
	b.SetVerbose(cfg.Output.Verbose)

	return b, true
}

// newOrchestrator wires an orchestrator for the detected host.
func newOrchestrator(m *manifest.Manifest) *orchestrate.Orchestrator {
	fetcher := fetch.New(cfg.DownloadTimeout(), cfg.Download.Progress)

	o := orchestrate.New(facts, m, fetcher)
	o.Select = selectBackend
	o.DryRun = cfg.General.DryRun
	return o
}

// recordHistory saves a run entry, ignoring storage failures: history
// must never fail a run.
func recordHistory(entry *history.Entry) {
	if !cfg.General.History || cfg.General.DryRun {
		return
	}
	if store, err := history.Open(); err == nil {
		_ = store.Record(entry) //nolint:errcheck
		_ = store.Close()       //nolint:errcheck
	}
}

// runInstallFlow drives one install run end to end.
func runInstallFlow(ctx context.Context, m *manifest.Manifest) error {
	ptype := platform.ClassifyOS(facts.OSFamily)
	akey := platform.ClassifyArch(facts.Arch)

	if ptype == platform.TypeUnsupported {
		return fmt.Errorf("%w (os family %q)", ErrUnsupportedPlatform, facts.OSFamily)
	}

	orch := newOrchestrator(m)
	target := resolve.Resolve(m, ptype, akey, true)

	// Only show a plan and prompt when the target actually resolved;
	// otherwise let the orchestrator produce the configuration error.
	if target.Name != "" && target.URL != "" {
		b, _ := selectBackend(ptype)

		ui.InfoMsg("Installing %s on %s/%s using %s", target.Name, facts.OSFamily, facts.Arch, b.DisplayName())
		ui.MutedMsg("  from %s", target.URL)

		if !cfg.General.AutoConfirm && !cfg.General.DryRun {
			confirmed, err := ui.Confirm("Proceed with installation?", true)
			if err != nil {
				return err
			}
			if !confirmed {
				return ErrAborted
			}
		}

		if !cfg.General.DryRun {
			if err := executor.CheckPrivileges(b.NeedsSudo()); err != nil {
				return err
			}
		}
	}

	entry := history.NewEntry(history.OpInstall, string(ptype), target.Name)
	entry.URL = target.URL

	result, err := orch.Install(ctx)
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		return err
	}

	entry.MarkSuccess(string(result))
	recordHistory(entry)

	switch result {
	case orchestrate.ResultSkipped:
		ui.SuccessMsg("%s is already installed; nothing to do", target.Name)
	default:
		ui.SuccessMsg("Installed %s", target.Name)
	}

	return nil
}

// runRemoveFlow drives one removal run end to end.
func runRemoveFlow(ctx context.Context, m *manifest.Manifest) error {
	ptype := platform.ClassifyOS(facts.OSFamily)
	akey := platform.ClassifyArch(facts.Arch)

	target := resolve.Resolve(m, ptype, akey, false)
	if target.Name == "" {
		// No package name configured for this host: removal is a no-op.
		ui.MutedMsg("no package configured for this host; nothing to remove")
		return nil
	}

	b, _ := selectBackend(ptype)

	ui.InfoMsg("Removing %s using %s", target.Name, b.DisplayName())

	if !cfg.General.AutoConfirm && !cfg.General.DryRun {
		confirmed, err := ui.Confirm("Proceed with removal?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	if !cfg.General.DryRun {
		if err := executor.CheckPrivileges(b.NeedsSudo()); err != nil {
			return err
		}
	}

	entry := history.NewEntry(history.OpRemove, string(ptype), target.Name)

	result, err := newOrchestrator(m).Remove(ctx)
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		return err
	}

	entry.MarkSuccess(string(result))
	recordHistory(entry)

	switch result {
	case orchestrate.ResultNoop:
		ui.SuccessMsg("%s is not installed; nothing to remove", target.Name)
	default:
		ui.SuccessMsg("Removed %s", target.Name)
	}

	return nil
}
