package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/corpuslab/vsmsearch/internal/constants"
	"github.com/corpuslab/vsmsearch/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [pattern]",
	Short: "View and manage query history",
	Long: `View your query history and get quick access to recent queries.

Examples:
  vsmsearch history                # Show recent queries
  vsmsearch history cosine         # Show queries containing "cosine"
  vsmsearch history --top          # Show most frequent queries
  vsmsearch history --clear        # Clear all history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showTop, _ := cmd.Flags().GetBool("top")
		clearHistory, _ := cmd.Flags().GetBool("clear")
		limit, _ := cmd.Flags().GetInt("limit")

		h := history.NewQueryHistory(history.DefaultHistoryPath(), constants.DefaultHistorySize)
		if err := h.Load(); err != nil {
			return fmt.Errorf("loading query history: %w", err)
		}

		if clearHistory {
			if err := h.Clear(); err != nil {
				return fmt.Errorf("clearing query history: %w", err)
			}
			fmt.Println("Query history cleared.")
			return nil
		}

		if showTop {
			top := h.GetTopQueries(limit)
			if len(top) == 0 {
				fmt.Println("No query history found.")
				return nil
			}
			fmt.Println("Most frequent queries")
			fmt.Println(strings.Repeat("=", 22))
			for i, qf := range top {
				fmt.Printf("%d. %q (%d times, last used %s)\n", i+1, qf.Query, qf.Count, qf.LastUsed.Format("Jan 2 15:04"))
			}
			return nil
		}

		if len(args) > 0 {
			pattern := strings.Join(args, " ")
			entries := h.GetEntriesByPattern(pattern)
			if len(entries) == 0 {
				fmt.Printf("No queries found matching: %s\n", pattern)
				return nil
			}
			fmt.Printf("Queries matching %q\n", pattern)
			for i, entry := range entries {
				if i >= limit {
					break
				}
				fmt.Printf("%d. %q (%d results, %s)\n", i+1, entry.Query, entry.ResultsCount, formatTimeAgo(time.Since(entry.Timestamp)))
			}
			return nil
		}

		recent := h.GetRecentQueries(limit)
		if len(recent) == 0 {
			fmt.Println("No query history found.")
			fmt.Println(`Start searching to build your history: vsmsearch query "your terms"`)
			return nil
		}
		fmt.Println("Recent queries")
		for i, query := range recent {
			fmt.Printf("%d. %s\n", i+1, query)
		}
		return nil
	},
}

// formatTimeAgo formats a duration as a human-readable "time ago" string.
func formatTimeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(d.Hours()) / 24
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
