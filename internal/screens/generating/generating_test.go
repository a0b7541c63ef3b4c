package generating

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quiz"
	"github.com/arjun/quizgen/internal/router"
)

type memRepo struct {
	payload string
	ok      bool
}

func (m *memRepo) Load(context.Context) (string, bool, error) { return m.payload, m.ok, nil }
func (m *memRepo) Save(_ context.Context, payload string) error {
	m.payload = payload
	m.ok = true
	return nil
}
func (m *memRepo) Clear(context.Context) error { return nil }

type stubGenerator struct {
	questions []quiz.Question
	err       error
	gotCtx    context.Context
}

func (g *stubGenerator) Generate(ctx context.Context, _ quiz.Config) ([]quiz.Question, error) {
	g.gotCtx = ctx
	return g.questions, g.err
}

func testScreen(gen *stubGenerator) *GeneratingScreen {
	store := history.NewStore(context.Background(), &memRepo{})
	cfg := quiz.DefaultConfig()
	cfg.Topic = "Testing"
	return New(gen, store, cfg)
}

func TestGeneratedReplacesWithQuiz(t *testing.T) {
	gen := &stubGenerator{questions: []quiz.Question{
		{ID: 1, Text: "Q?", Options: []string{"a", "b"}, Answer: "a"},
	}}
	s := testScreen(gen)
	s.Init()

	_, cmd := s.Update(generatedMsg{Seq: s.seq, Questions: gen.questions})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "Quiz" {
		t.Errorf("replaced with %q, want Quiz", msg.Screen.Title())
	}
}

func TestStaleResultDropped(t *testing.T) {
	gen := &stubGenerator{questions: []quiz.Question{
		{ID: 1, Text: "Q?", Options: []string{"a", "b"}, Answer: "a"},
	}}
	s := testScreen(gen)
	s.Init()

	stale := s.seq
	s.abort()

	_, cmd := s.Update(generatedMsg{Seq: stale, Questions: gen.questions})
	if cmd != nil {
		t.Error("stale generation result must be dropped")
	}
}

func TestEscCancelsAndPops(t *testing.T) {
	gen := &stubGenerator{questions: []quiz.Question{
		{ID: 1, Text: "Q?", Options: []string{"a", "b"}, Answer: "a"},
	}}
	s := testScreen(gen)

	// Run the generation command so the screen holds a live context.
	genCmd := s.generate()
	genCmd()
	if gen.gotCtx == nil {
		t.Fatal("generator never received a context")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
	if gen.gotCtx.Err() == nil {
		t.Error("expected the generation context to be cancelled")
	}
}

func TestGenerationErrorPopsWithNotification(t *testing.T) {
	gen := &stubGenerator{err: context.Canceled}
	s := testScreen(gen)
	s.Init()

	_, cmd := s.Update(generatedMsg{Seq: s.seq, Err: context.Canceled})
	if cmd == nil {
		t.Fatal("expected a command on error")
	}
}
