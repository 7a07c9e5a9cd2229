package cli

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the artifact resolved for this host",
	Long: `Install downloads the artifact whose URL matches this host's package
type and architecture, then installs it through the native package
manager. Hosts where the package is already installed are skipped.

Examples:
  xpkg install -m app.yaml        # install regardless of the manifest's installed field
  xpkg install -m app.yaml -n     # dry run
  xpkg install -m app.yaml -y     # no confirmation prompt`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}
	return runInstallFlow(cmd.Context(), m)
}
