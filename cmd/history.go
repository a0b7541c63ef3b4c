package cmd

import (
	"fmt"
	"strings"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		h := history.NewStore(cmd.Context(), s.HistoryRepo())
		saved := h.All()
		if len(saved) == 0 {
			fmt.Println("No saved quizzes yet.")
			return nil
		}

		fmt.Printf("%-14s  %-20s  %-30s  %-6s  %s\n",
			"ID", "Date", "Topic", "Score", "Questions")
		fmt.Println(strings.Repeat("─", 84))

		for _, rec := range saved {
			topic := rec.Topic
			if len(topic) > 30 {
				topic = topic[:30]
			}
			fmt.Printf("%-14s  %-20s  %-30s  %5d%%  %d\n",
				rec.ID,
				rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				topic,
				rec.Score,
				rec.TotalQuestions,
			)
		}
		return nil
	},
}
