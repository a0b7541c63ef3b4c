package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quizgen.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestHistoryRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	_, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("expected empty slot in a fresh database")
	}

	payload := `{"version":1,"quizzes":[]}`
	if err := repo.Save(ctx, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok || got != payload {
		t.Errorf("Load = (%q, %v), want (%q, true)", got, ok, payload)
	}

	// Save overwrites the single slot.
	updated := `{"version":1,"quizzes":[{"id":"1"}]}`
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _, _ = repo.Load(ctx)
	if got != updated {
		t.Errorf("after second save: %q, want %q", got, updated)
	}
}

func TestHistoryRepoClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "payload"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	_, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("expected empty slot after Clear")
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz-gen", "quiz-gen", "other"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  10,
			OutputTokens: 20,
			LatencyMs:    5,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].ID <= events[1].ID {
		t.Error("expected descending ID order")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("QueryLLMEvents limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d events with limit 1", len(limited))
	}
}

func TestEventRepoGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "3f6c0a4e",
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "quiz-gen",
		Success:      false,
		ErrorMessage: "boom",
		RequestBody:  "req",
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if got == nil || got.ErrorMessage != "boom" || got.RequestBody != "req" || got.RequestID != "3f6c0a4e" {
		t.Errorf("GetLLMEvent = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("GetLLMEvent missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for an unknown event ID")
	}
}
