package cli

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"uninstall", "rm"},
	Short:   "Remove the package named for this host",
	Long: `Remove uninstalls the package whose name matches this host's package
type. On Debian family hosts residual configuration is purged as well;
purge failures are reported and ignored.

A manifest with no entry for this host makes removal a no-op.

Examples:
  xpkg remove -m app.yaml         # remove regardless of the manifest's installed field
  xpkg remove -m app.yaml -y      # no confirmation prompt`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}
	return runRemoveFlow(cmd.Context(), m)
}
