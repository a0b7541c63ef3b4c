package cmd

import (
	"fmt"
	"os"

	"github.com/arjun/quizgen/internal/app"
	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/llm"
	"github.com/arjun/quizgen/internal/quizgen"
	"github.com/arjun/quizgen/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		History:   history.NewStore(ctx, st.HistoryRepo()),
		EventRepo: eventRepo,
		Version:   version,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will fall back to a placeholder question.")
		opts.Generator = quizgen.New(llm.NewMockProvider(), quizgen.DefaultConfig())
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(opts)
}
