package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xfetch/xfetch/internal/cache"
	"github.com/xfetch/xfetch/internal/config"
	"github.com/xfetch/xfetch/internal/tui"
)

// recentEntryLimit caps the entry table in `cache stats`.
const recentEntryLimit = 10

const bytesPerKB = 1024.0

var errNoTerminal = errors.New("cache browse needs an interactive terminal")

// numberPrinter renders byte counts with thousands separators.
var numberPrinter = message.NewPrinter(language.English)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the local result cache",
	}

	cmd.AddCommand(newCacheStatsCmd(), newCacheClearCmd(), newCacheBrowseCmd())
	return cmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := newCacheManager(config.New())
			return renderStats(cmd, manager)
		},
	}
}

func renderStats(cmd *cobra.Command, manager *cache.Manager) error {
	stats := manager.Stats()

	cmd.Println("X/Twitter cache")
	cmd.Printf("  Location: %s\n", manager.Directory())
	cmd.Printf("  Entries: %d (%d expired)\n", stats.Count, stats.Expired)
	cmd.Printf("  Total size: %s bytes (%.1f KB)\n",
		numberPrinter.Sprintf("%d", stats.TotalSizeBytes),
		float64(stats.TotalSizeBytes)/bytesPerKB)

	if stats.Count == 0 {
		return nil
	}

	cmd.Println("\nRecent entries:")
	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "  Category\tIdentifier\tFetched\tTweets\tState")

	shown := stats.Entries
	if len(shown) > recentEntryLimit {
		shown = shown[:recentEntryLimit]
	}
	for _, entry := range shown {
		fetchedAt := entry.FetchedAt
		if fetchedAt == "" {
			fetchedAt = "unknown"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\n",
			entry.Category, entry.Identifier, fetchedAt, entry.Count, entryState(entry))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if remaining := stats.Count - len(shown); remaining > 0 {
		cmd.Printf("  ... and %d more\n", remaining)
	}
	return nil
}

func entryState(entry cache.EntrySummary) string {
	switch {
	case entry.Category == cache.CategoryCorrupt:
		return "corrupt"
	case entry.Fresh:
		return "fresh"
	default:
		return "expired"
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := newCacheManager(config.New())
			count := manager.ClearAll()
			cmd.Printf("Cleared %d cached result(s).\n", count)
			return nil
		},
	}
}

func newCacheBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse cached results interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errNoTerminal
			}

			manager := newCacheManager(config.New())
			model := tui.NewBrowseModel(manager.Stats(), manager.Peek)

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running cache browser: %w", err)
			}
			return nil
		},
	}
}
