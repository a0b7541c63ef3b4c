package quizplay

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quiz"
	"github.com/arjun/quizgen/internal/router"
	"github.com/arjun/quizgen/internal/screen"
	"github.com/arjun/quizgen/internal/screens/results"
	"github.com/arjun/quizgen/internal/ui/components"
	"github.com/arjun/quizgen/internal/ui/layout"
	"github.com/arjun/quizgen/internal/ui/theme"
)

// timerTickMsg is sent every second while the countdown runs. Seq ties the
// tick to the question it was armed for; stale ticks are dropped.
type timerTickMsg struct {
	Seq int
}

// QuizScreen runs an active quiz session.
type QuizScreen struct {
	session *quiz.Session
	store   *history.Store
	choice  components.Choice

	// timerSeq is bumped whenever the countdown for the current question
	// stops mattering (answer recorded, question advanced, quiz abandoned),
	// so in-flight tick messages cannot fire a second answer.
	timerSeq int

	confirmQuit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StreakProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a freshly started session.
func New(session *quiz.Session, store *history.Store) *QuizScreen {
	s := &QuizScreen{
		session: session,
		store:   store,
	}
	s.resetChoice()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.session.TimerArmed() {
		return s.tickCmd()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Streak() int {
	return s.session.Streak()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.session.Phase() == quiz.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.timerSeq {
		return s, nil
	}

	if s.session.Tick() {
		// Countdown hit zero: the no-response answer is now recorded.
		s.timerSeq++
		s.choice.RevealTimedOut()
		return s, nil
	}

	return s, s.tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.timerSeq++
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.session.Phase() {
	case quiz.PhaseAwaiting:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "enter":
			if s.session.Select(s.choice.Value()) {
				s.timerSeq++
				s.choice.Reveal()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd

	case quiz.PhaseAnswered:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "enter":
			return s.advance()
		}
	}

	return s, nil
}

// advance moves to the next question, or commits the finished session to
// history and swaps in the results screen.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.session.Advance()
	s.timerSeq++

	if s.session.Phase() != quiz.PhaseComplete {
		s.resetChoice()
		if s.session.TimerArmed() {
			return s, s.tickCmd()
		}
		return s, nil
	}

	record := history.NewRecord(
		s.session.Config().Topic,
		s.session.Questions(),
		s.session.Answers(),
		time.Now(),
	)

	cmds := []tea.Cmd{
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(record)}
		},
	}
	if err := s.store.Add(context.Background(), record); err != nil {
		cmds = append(cmds, screen.Notify("Could not save quiz: %v", err))
	}

	return s, tea.Batch(cmds...)
}

func (s *QuizScreen) resetChoice() {
	q := s.session.Current()
	s.choice = components.NewChoice(q.Text, q.Options, q.Answer)
}

func (s *QuizScreen) tickCmd() tea.Cmd {
	seq := s.timerSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Seq: seq}
	})
}

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render("Abandon this quiz?\n\nNothing will be saved.  (y/n)"))
	}

	var b strings.Builder

	total := len(s.session.Questions())
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar(
			fmt.Sprintf("Question %d of %d", s.session.Index()+1, total),
			float64(s.session.Index())/float64(total),
			false,
			min(width-8, 60),
		).View()))
	b.WriteString("\n")

	if s.session.TimerArmed() {
		remaining := s.session.Remaining()
		style := theme.Body
		if remaining <= 5 {
			style = theme.Incorrect
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(fmt.Sprintf("⏱ %ds", remaining))))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 80)).Render(s.choice.View())))

	if s.session.Phase() == quiz.PhaseAnswered {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderFeedback(width)))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	a := s.session.LastAnswer()

	var b strings.Builder
	if a.Selected == quiz.NoResponse {
		b.WriteString(theme.Incorrect.Render("⏱ Time's up!"))
	} else if a.Correct {
		b.WriteString(theme.Correct.Render("✓ Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Incorrect"))
	}

	if expl := s.session.Current().Explanation; expl != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(expl))
	}

	return lipgloss.NewStyle().Width(min(width-8, 80)).Render(b.String())
}
