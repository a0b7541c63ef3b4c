package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/arjun/quizgen/internal/store"
)

// SchemaVersion is the version field written into the persisted envelope.
// The stored shape has no forward-compatibility guarantee; a version
// mismatch on load is treated the same as corrupt data.
const SchemaVersion = 1

// envelope is the persisted shape of the whole history collection.
type envelope struct {
	Version int         `json:"version"`
	Quizzes []SavedQuiz `json:"quizzes"`
}

// Store maintains the ordered collection of saved quizzes, most recent
// first. The in-memory slice is the source of truth; the repo slot is
// rewritten whole after every mutation.
type Store struct {
	repo    store.HistoryRepo
	quizzes []SavedQuiz
}

// NewStore creates a Store and loads the persisted collection. Missing,
// corrupt, or version-mismatched data initializes an empty history; the
// condition is logged, never surfaced as an error.
func NewStore(ctx context.Context, repo store.HistoryRepo) *Store {
	s := &Store{repo: repo}

	payload, ok, err := repo.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load quiz history: %v\n", err)
		return s
	}
	if !ok {
		return s
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt quiz history, starting empty: %v\n", err)
		return s
	}
	if env.Version != SchemaVersion {
		fmt.Fprintf(os.Stderr, "warning: quiz history schema version %d (want %d), starting empty\n",
			env.Version, SchemaVersion)
		return s
	}

	s.quizzes = env.Quizzes
	return s
}

// All returns the collection, most recent first. The returned slice must
// not be mutated.
func (s *Store) All() []SavedQuiz {
	return s.quizzes
}

// Len returns the number of saved quizzes.
func (s *Store) Len() int {
	return len(s.quizzes)
}

// Get returns the record with the given ID, or false.
func (s *Store) Get(id string) (SavedQuiz, bool) {
	for _, q := range s.quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return SavedQuiz{}, false
}

// Add prepends the record and mirrors the collection to storage.
func (s *Store) Add(ctx context.Context, rec SavedQuiz) error {
	s.quizzes = append([]SavedQuiz{rec}, s.quizzes...)
	return s.persist(ctx)
}

// Delete removes the record with the given ID, preserving the relative
// order of the rest. Deleting an unknown ID is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	for i, q := range s.quizzes {
		if q.ID == id {
			s.quizzes = append(s.quizzes[:i], s.quizzes[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// persist serializes the whole collection into the repo slot.
func (s *Store) persist(ctx context.Context) error {
	b, err := json.Marshal(envelope{Version: SchemaVersion, Quizzes: s.quizzes})
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.repo.Save(ctx, string(b))
}
