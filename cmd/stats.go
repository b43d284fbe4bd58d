package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjoshi/digitdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.Stats()
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		fmt.Printf("Sessions:   %d\n", stats.Sessions)
		fmt.Printf("Attempts:   %d\n", stats.Attempts)
		fmt.Printf("Correct:    %d\n", stats.Correct)
		fmt.Printf("Accuracy:   %.0f%%\n", stats.Accuracy*100)
		fmt.Printf("Avg time:   %.1fs\n", stats.AverageTimeMs/1000)

		limit, _ := cmd.Flags().GetInt("recent")
		if limit <= 0 {
			return nil
		}
		sessions, err := st.RecentSessions(limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, s := range sessions {
			when := s.StartedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %s  %-10s  %d/%d  %.0f%%\n",
				when, s.Mode, s.QuestionsCorrect, s.QuestionsAttempted, s.Accuracy*100)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 5, "Number of recent sessions to list")
}
