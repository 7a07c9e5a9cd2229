package cli

import (
	"xpkg/internal/ui"
	"xpkg/pkg/backend"
	"xpkg/pkg/platform"
	"xpkg/pkg/resolve"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what this host resolves from the manifest",
	Long: `Status classifies the host, resolves the manifest against it, and
probes the native package database. Nothing is modified.

Combine with --os-family and --arch to inspect what another platform
would resolve.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}

	ptype := platform.ClassifyOS(facts.OSFamily)
	akey := platform.ClassifyArch(facts.Arch)
	target := resolve.Resolve(m, ptype, akey, true)

	ui.HeaderMsg("Host")
	ui.PrintField("OS Family", valueOr(facts.OSFamily, "(unknown)"))
	if facts.PrettyName != "" {
		ui.PrintField("Distribution", facts.PrettyName)
	}
	ui.PrintField("Architecture", facts.Arch)
	ui.PrintField("Package Type", string(ptype))
	ui.PrintField("Arch Key", string(akey))

	ui.HeaderMsg("Resolved Target")
	if target.Name == "" && target.URL == "" {
		ui.MutedMsg("  manifest has no entry for this host")
		return nil
	}

	ui.PrintField("Package", valueOr(target.Name, "(none)"))
	ui.PrintField("URL", valueOr(target.URL, "(none)"))

	desired := "installed"
	if !m.Installed {
		desired = "absent"
	}
	ui.PrintField("Desired", desired)

	if target.Name != "" {
		if b, ok := selectBackend(ptype); ok && b.IsAvailable() {
			var state backend.InstalledState
			_ = ui.WithSpinner("checking installed state", func() error {
				state = b.IsInstalled(cmd.Context(), target.Name)
				return nil
			})
			ui.PrintField("State", state.String())
		} else {
			ui.PrintField("State", "unknown (backend unavailable on this host)")
		}
	}

	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
