package cli

import (
	"time"

	"xpkg/internal/history"
	"xpkg/internal/ui"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past install and remove runs",
	Long: `History lists past runs recorded on this host, newest first.

Examples:
  xpkg history                    # last 20 runs
  xpkg history -l 100             # last 100 runs
  xpkg history --prune 720h       # drop entries older than 30 days
  xpkg history --clear            # drop everything`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "remove all history entries")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "remove entries older than this duration")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	if historyClear {
		if err := store.Clear(); err != nil {
			return err
		}
		ui.SuccessMsg("history cleared")
		return nil
	}

	if historyPrune > 0 {
		deleted, err := store.Prune(historyPrune)
		if err != nil {
			return err
		}
		ui.SuccessMsg("pruned %d entries", deleted)
		return nil
	}

	entries, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		ui.MutedMsg("no history yet")
		return nil
	}

	table := ui.NewTable([]string{"time", "operation", "package", "backend", "result"})
	for _, e := range entries {
		result := e.Result
		if !e.Success {
			result = "failed"
		}
		table.AddRow([]string{e.FormatTime(), string(e.Operation), e.Package, e.Backend, result})
	}
	table.Render()

	return nil
}
