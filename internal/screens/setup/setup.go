package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quiz"
	"github.com/arjun/quizgen/internal/quizgen"
	"github.com/arjun/quizgen/internal/router"
	"github.com/arjun/quizgen/internal/screen"
	"github.com/arjun/quizgen/internal/screens/generating"
	"github.com/arjun/quizgen/internal/ui/components"
	"github.com/arjun/quizgen/internal/ui/layout"
	"github.com/arjun/quizgen/internal/ui/theme"
)

const (
	fieldTopic = iota
	fieldContent
	fieldDifficulty
	fieldType
	fieldNum
	fieldTimer
	numFields
)

const (
	maxQuestions   = 20
	maxTimerSecs   = 300
	contentCharCap = 20000
)

// SetupScreen collects the quiz configuration before generation.
type SetupScreen struct {
	generator quizgen.Generator
	store     *history.Store

	topic   components.TextInput
	content components.TextInput
	count   components.TextInput
	timer   components.TextInput

	difficultyIdx int
	typeIdx       int

	focus  int
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with default configuration values.
func New(generator quizgen.Generator, store *history.Store) *SetupScreen {
	def := quiz.DefaultConfig()

	s := &SetupScreen{
		generator:     generator,
		store:         store,
		topic:         components.NewTextInput("e.g. The French Revolution", false, 200),
		content:       components.NewTextInput("paste source text (optional)", false, contentCharCap),
		count:         components.NewTextInput(fmt.Sprintf("%d", def.Count), true, 2),
		timer:         components.NewTextInput("0 = no timer", true, 3),
		difficultyIdx: indexOfDifficulty(def.Difficulty),
		typeIdx:       indexOfType(def.QuestionType),
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.topic.Focus()
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.updateFocused(msg)
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		return s.submit()

	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % numFields)

	case "shift+tab", "up":
		return s, s.setFocus((s.focus + numFields - 1) % numFields)

	case "left":
		if s.cycle(-1) {
			return s, nil
		}

	case "right":
		if s.cycle(1) {
			return s, nil
		}
	}

	return s, s.updateFocused(msg)
}

// cycle steps the enum field under focus. Returns false when the focused
// field is a text input, which needs the arrow key for its cursor.
func (s *SetupScreen) cycle(dir int) bool {
	switch s.focus {
	case fieldDifficulty:
		n := len(quiz.Difficulties)
		s.difficultyIdx = (s.difficultyIdx + dir + n) % n
		return true
	case fieldType:
		n := len(quiz.QuestionTypes)
		s.typeIdx = (s.typeIdx + dir + n) % n
		return true
	}
	return false
}

func (s *SetupScreen) setFocus(f int) tea.Cmd {
	s.topic.Blur()
	s.content.Blur()
	s.count.Blur()
	s.timer.Blur()
	s.focus = f

	switch f {
	case fieldTopic:
		return s.topic.Focus()
	case fieldContent:
		return s.content.Focus()
	case fieldNum:
		return s.count.Focus()
	case fieldTimer:
		return s.timer.Focus()
	}
	return nil
}

func (s *SetupScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	case fieldContent:
		s.content, cmd = s.content.Update(msg)
	case fieldNum:
		s.count, cmd = s.count.Update(msg)
	case fieldTimer:
		s.timer, cmd = s.timer.Update(msg)
	}
	return cmd
}

func (s *SetupScreen) submit() (screen.Screen, tea.Cmd) {
	cfg, err := s.buildConfig()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: generating.New(s.generator, s.store, cfg),
		}
	}
}

func (s *SetupScreen) buildConfig() (quiz.Config, error) {
	cfg := quiz.DefaultConfig()
	cfg.Topic = strings.TrimSpace(s.topic.Value())
	cfg.Content = strings.TrimSpace(s.content.Value())
	cfg.Difficulty = quiz.Difficulties[s.difficultyIdx]
	cfg.QuestionType = quiz.QuestionTypes[s.typeIdx]

	if cfg.Topic == "" && cfg.Content == "" {
		return cfg, fmt.Errorf("enter a topic or paste some content")
	}
	if cfg.Topic == "" {
		cfg.Topic = "Pasted content"
	}

	if v := s.count.Value(); v != "" {
		n, err := s.count.NumericValue()
		if err != nil || n < 1 || n > maxQuestions {
			return cfg, fmt.Errorf("question count must be between 1 and %d", maxQuestions)
		}
		cfg.Count = n
	}

	if v := s.timer.Value(); v != "" {
		n, err := s.timer.NumericValue()
		if err != nil || n < 0 || n > maxTimerSecs {
			return cfg, fmt.Errorf("timer must be between 0 and %d seconds", maxTimerSecs)
		}
		cfg.TimerSeconds = n
	}

	return cfg, nil
}

func (s *SetupScreen) View(width, height int) string {
	label := func(f int, text string) string {
		if f == s.focus {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Unselected.Render("  " + text)
	}

	cycleValue := func(f int, text string) string {
		if f == s.focus {
			return theme.Selected.Render("◂ " + text + " ▸")
		}
		return theme.Body.Render("  " + text)
	}

	rows := []string{
		label(fieldTopic, "Topic") + "\n    " + s.topic.View(),
		label(fieldContent, "Content") + "\n    " + s.content.View(),
		label(fieldDifficulty, "Difficulty") + "  " +
			cycleValue(fieldDifficulty, string(quiz.Difficulties[s.difficultyIdx])),
		label(fieldType, "Questions") + "   " +
			cycleValue(fieldType, string(quiz.QuestionTypes[s.typeIdx])),
		label(fieldNum, "Count") + "       " + s.count.View(),
		label(fieldTimer, "Timer (sec)") + " " + s.timer.View(),
	}

	form := strings.Join(rows, "\n\n")

	if s.errMsg != "" {
		form += "\n\n" + theme.Incorrect.Render("✗ "+s.errMsg)
	}

	card := theme.Card.Width(min(width-8, 76)).Render(form)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func indexOfDifficulty(d quiz.Difficulty) int {
	for i, v := range quiz.Difficulties {
		if v == d {
			return i
		}
	}
	return 0
}

func indexOfType(t quiz.QuestionType) int {
	for i, v := range quiz.QuestionTypes {
		if v == t {
			return i
		}
	}
	return 0
}
