package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quiz"
	"github.com/arjun/quizgen/internal/router"
)

func testRecord() history.SavedQuiz {
	questions := []quiz.Question{
		{ID: 1, Text: "Q1?", Options: []string{"a", "b"}, Answer: "a", Explanation: "because"},
		{ID: 2, Text: "Q2?", Options: []string{"a", "b"}, Answer: "b"},
	}
	answers := []quiz.Answer{
		{QuestionID: 1, QuestionText: "Q1?", Selected: "a", CorrectAnswer: "a", Correct: true},
		{QuestionID: 2, QuestionText: "Q2?", Selected: quiz.NoResponse, CorrectAnswer: "b", Correct: false},
	}
	return history.NewRecord("Test Topic", questions, answers, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func runMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestViewShowsScoreAndAnswers(t *testing.T) {
	s := New(testRecord())
	view := s.View(100, 30)

	for _, want := range []string{"Test Topic", "Score: 50%", "1 / 2 correct", quiz.NoResponse} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLiveModePopsToRoot(t *testing.T) {
	s := New(testRecord())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := runMsg(t, cmd).(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg after a live session")
	}
}

func TestReviewModePopsBack(t *testing.T) {
	s := NewReview(testRecord())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := runMsg(t, cmd).(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg in review mode")
	}
	if s.Title() != "Review" {
		t.Errorf("Title = %q, want Review", s.Title())
	}
}

func TestScoreComesFromRecordNotRecomputed(t *testing.T) {
	rec := testRecord()
	rec.Score = 87 // deliberately inconsistent with the answers
	s := NewReview(rec)

	if !strings.Contains(s.View(100, 30), "Score: 87%") {
		t.Error("review must display the stored score as-is")
	}
}
