package setup

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

func testScreen() *SetupScreen {
	store := history.NewStore(context.Background(), &memRepo{})
	return New(nil, store)
}

func typeString(s *SetupScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSubmitRequiresTopicOrContent(t *testing.T) {
	s := testScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no navigation with empty topic and content")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestSubmitWithTopicPushesGenerating(t *testing.T) {
	s := testScreen()
	s.Init()
	typeString(s, "Roman Empire")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if msg.Screen.Title() != "Generating" {
		t.Errorf("pushed %q, want Generating", msg.Screen.Title())
	}
}

func TestDefaults(t *testing.T) {
	s := testScreen()
	s.Init()
	typeString(s, "Topic")

	cfg, err := s.buildConfig()
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	def := quiz.DefaultConfig()
	if cfg.Count != def.Count || cfg.Difficulty != def.Difficulty ||
		cfg.QuestionType != def.QuestionType || cfg.TimerSeconds != 0 {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestDifficultyCycling(t *testing.T) {
	s := testScreen()
	s.focus = fieldDifficulty

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := quiz.Difficulties[s.difficultyIdx]; got != quiz.DifficultyHard {
		t.Errorf("after right: %v, want Hard", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := quiz.Difficulties[s.difficultyIdx]; got != quiz.DifficultyEasy {
		t.Errorf("after two lefts: %v, want Easy", got)
	}

	// Wraps around.
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := quiz.Difficulties[s.difficultyIdx]; got != quiz.DifficultyPhD {
		t.Errorf("after wrap: %v, want PhD", got)
	}
}

func TestCountBounds(t *testing.T) {
	s := testScreen()
	s.Init()
	typeString(s, "Topic")

	s.setFocus(fieldNum)
	typeString(s, "99")

	if _, err := s.buildConfig(); err == nil {
		t.Error("expected an error for 99 questions")
	}
}

func TestTimerParsed(t *testing.T) {
	s := testScreen()
	s.Init()
	typeString(s, "Topic")

	s.setFocus(fieldTimer)
	typeString(s, "30")

	cfg, err := s.buildConfig()
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.TimerSeconds != 30 {
		t.Errorf("TimerSeconds = %d, want 30", cfg.TimerSeconds)
	}
}

func TestEscPops(t *testing.T) {
	s := testScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}
