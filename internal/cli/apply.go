package cli

import (
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Converge the host to the manifest's desired state",
	Long: `Apply reads the manifest's "installed" field and either installs the
resolved artifact or removes the package by name.

Examples:
  xpkg apply -m app.yaml          # install or remove per the manifest
  xpkg apply -m app.yaml -n       # show what would happen
  xpkg apply -m app.yaml -y       # no confirmation prompt`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}

	if m.Installed {
		return runInstallFlow(cmd.Context(), m)
	}
	return runRemoveFlow(cmd.Context(), m)
}
