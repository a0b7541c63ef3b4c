package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quizgen"
	"github.com/arjun/quizgen/internal/router"
	"github.com/arjun/quizgen/internal/screen"
	"github.com/arjun/quizgen/internal/screens/results"
	"github.com/arjun/quizgen/internal/screens/setup"
	"github.com/arjun/quizgen/internal/ui/layout"
	"github.com/arjun/quizgen/internal/ui/theme"
)

// DashboardScreen is the root screen: start a new quiz, or review and manage
// past quizzes. The saved list is read from the history store on every
// render, so it is always current when other screens pop back here.
type DashboardScreen struct {
	generator quizgen.Generator
	store     *history.Store

	// selected indexes a combined list: 0 is "Start New Quiz", 1.. are the
	// saved quizzes.
	selected      int
	confirmDelete bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard over the injected generator and history store.
func New(generator quizgen.Generator, store *history.Store) *DashboardScreen {
	return &DashboardScreen{
		generator: generator,
		store:     store,
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if s.selected > 0 {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Delete"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmDelete {
		switch kmsg.String() {
		case "y", "Y":
			s.confirmDelete = false
			return s, s.deleteSelected()
		case "n", "N", "esc":
			s.confirmDelete = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.store.Len() {
			s.selected++
		}
	case "enter":
		return s.activate()
	case "d", "D":
		if s.selected > 0 {
			s.confirmDelete = true
		}
	case "q":
		return s, tea.Quit
	}

	return s, nil
}

func (s *DashboardScreen) activate() (screen.Screen, tea.Cmd) {
	if s.selected == 0 {
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: setup.New(s.generator, s.store)}
		}
	}

	saved := s.store.All()
	i := s.selected - 1
	if i >= len(saved) {
		return s, nil
	}
	record := saved[i]
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.NewReview(record)}
	}
}

func (s *DashboardScreen) deleteSelected() tea.Cmd {
	saved := s.store.All()
	i := s.selected - 1
	if i < 0 || i >= len(saved) {
		return nil
	}
	id := saved[i].ID

	if err := s.store.Delete(context.Background(), id); err != nil {
		return screen.Notify("Could not delete quiz: %v", err)
	}
	if s.selected > s.store.Len() {
		s.selected = s.store.Len()
	}
	return nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.confirmDelete {
		topic := ""
		if i := s.selected - 1; i >= 0 && i < s.store.Len() {
			topic = s.store.All()[i].Topic
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render(fmt.Sprintf("Delete %q?\n\nThis cannot be undone.  (y/n)", topic)))
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("QuizGen")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("AI-generated quizzes in your terminal")))
	b.WriteString("\n\n")

	newQuiz := "  Start New Quiz"
	if s.selected == 0 {
		newQuiz = theme.Selected.Render("▸ Start New Quiz")
	} else {
		newQuiz = theme.Unselected.Render(newQuiz)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, newQuiz))
	b.WriteString("\n\n")

	saved := s.store.All()
	if len(saved) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No saved quizzes yet. Your results will show up here.")))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("─── Saved Quizzes ───")))
	b.WriteString("\n")

	// Window the list so it fits the content area.
	visible := height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.selected-1 >= visible {
		start = s.selected - visible
	}
	end := start + visible
	if end > len(saved) {
		end = len(saved)
	}

	for i := start; i < end; i++ {
		rec := saved[i]
		line := fmt.Sprintf("%s  %s  %d%%  (%d questions)",
			rec.CreatedAt.Format("Jan 02, 2006"), rec.Topic, rec.Score, rec.TotalQuestions)

		if i+1 == s.selected {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if end < len(saved) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("… %d more", len(saved)-end))))
	}

	return b.String()
}
