package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quiz"
	"github.com/arjun/quizgen/internal/router"
	"github.com/arjun/quizgen/internal/screen"
	"github.com/arjun/quizgen/internal/ui/layout"
	"github.com/arjun/quizgen/internal/ui/theme"
)

// ResultsScreen shows the score and the per-question answer breakdown for a
// completed quiz, either straight after the session or when reviewing a
// saved record from the dashboard.
type ResultsScreen struct {
	record     history.SavedQuiz
	reviewMode bool
	selected   int
	offset     int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a just-completed session.
func New(record history.SavedQuiz) *ResultsScreen {
	return &ResultsScreen{record: record}
}

// NewReview creates a ResultsScreen over a saved record. Scores and
// correctness come from the record as stored, never recomputed.
func NewReview(record history.SavedQuiz) *ResultsScreen {
	return &ResultsScreen{record: record, reviewMode: true}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	if s.reviewMode {
		return "Review"
	}
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	back := layout.KeyHint{Key: "Enter", Description: "Done"}
	if s.reviewMode {
		back = layout.KeyHint{Key: "Esc", Description: "Back"}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		back,
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.record.Questions)-1 {
			s.selected++
		}
	case "enter", "esc":
		if s.reviewMode {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderScoreCard()))
	b.WriteString("\n\n")

	// Each question card is several lines tall; show a window around the
	// selection so long quizzes stay scrollable.
	visible := (height - lipgloss.Height(s.renderScoreCard()) - 3) / 6
	if visible < 1 {
		visible = 1
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	end := s.offset + visible
	if end > len(s.record.Questions) {
		end = len(s.record.Questions)
	}

	for i := s.offset; i < end; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderQuestion(i, width)))
		b.WriteString("\n")
	}

	if end < len(s.record.Questions) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("… %d more", len(s.record.Questions)-end))))
	}

	return b.String()
}

func (s *ResultsScreen) renderScoreCard() string {
	correct := 0
	for _, a := range s.record.Answers {
		if a.Correct {
			correct++
		}
	}

	scoreStyle := theme.Correct
	if s.record.Score < 50 {
		scoreStyle = theme.Incorrect
	}

	lines := []string{
		theme.Title.Render(s.record.Topic),
		theme.Subtitle.Render(s.record.CreatedAt.Format("Jan 02, 2006 15:04")),
		"",
		scoreStyle.Render(fmt.Sprintf("Score: %d%%", s.record.Score)) +
			theme.Body.Render(fmt.Sprintf("   %d / %d correct", correct, s.record.TotalQuestions)),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *ResultsScreen) renderQuestion(i, width int) string {
	q := s.record.Questions[i]

	var a *quiz.Answer
	if i < len(s.record.Answers) {
		a = &s.record.Answers[i]
	}

	marker := "  "
	if i == s.selected {
		marker = "▸ "
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("%s%d. %s", marker, i+1, q.Text)))
	b.WriteString("\n")

	if a == nil {
		b.WriteString(theme.Hint.Render("     (no answer recorded)"))
		return b.String()
	}

	if a.Correct {
		b.WriteString(theme.Correct.Render("     ✓ " + a.Selected))
	} else {
		b.WriteString(theme.Incorrect.Render("     ✗ " + a.Selected))
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("     → " + a.CorrectAnswer))
	}

	if q.Explanation != "" && i == s.selected {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("     " + q.Explanation))
	}

	return lipgloss.NewStyle().Width(min(width-8, 90)).Render(b.String())
}
