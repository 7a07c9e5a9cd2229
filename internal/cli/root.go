// Package cli implements the command-line interface for xpkg.
package cli

import (
	"xpkg/internal/config"
	"xpkg/internal/ui"
	"xpkg/pkg/platform"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile      string
	manifestFile string
	osFamily     string
	archOverride string
	dryRun       bool
	yes          bool
	verbose      bool
	noColor      bool

	// Global state
	cfg   *config.Config
	facts *platform.Facts
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "xpkg",
	Short: "Install or remove a packaged artifact with the host's native package manager",
	Long: `Xpkg resolves a per-architecture download URL and a per-distribution
package name from a manifest, then installs the artifact through the
host's native package manager (apt, yum or apk), or removes it by name.

The manifest maps package type (deb, rpm, apk) to a native package name
and one download URL per architecture key (x86, ia64, arm, aarch64).

Examples:
  xpkg apply -m app.yaml         # converge to the manifest's desired state
  xpkg install -m app.yaml       # force the install flow
  xpkg remove -m app.yaml -y     # remove without confirmation
  xpkg status -m app.yaml        # show what this host would resolve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "manifest", "m", "xpkg.yaml", "package manifest path")
	rootCmd.PersistentFlags().StringVar(&osFamily, "os-family", "", "override detected OS family (Debian, RedHat, Alpine)")
	rootCmd.PersistentFlags().StringVar(&archOverride, "arch", "", "override detected architecture (x86_64, aarch64, ...)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command. A failed run prints one terminal error
// message identifying the phase and platform parameters.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.ErrorMsg("%v", err)
	}
	return err
}

// initializeApp sets up the application state.
func initializeApp() error {
	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	// Initialize UI
	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	// Detect platform facts; --os-family and --arch take precedence.
	facts, err = platform.Detect()
	if err != nil && verbose {
		ui.WarningMsg("platform detection fell back: %v", err)
	}
	if osFamily != "" {
		facts.OSFamily = osFamily
	}
	if archOverride != "" {
		facts.Arch = archOverride
	}

	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print xpkg version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("xpkg version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
