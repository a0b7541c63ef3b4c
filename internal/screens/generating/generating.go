package generating

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quiz"
	"github.com/arjun/quizgen/internal/quizgen"
	"github.com/arjun/quizgen/internal/router"
	"github.com/arjun/quizgen/internal/screen"
	"github.com/arjun/quizgen/internal/screens/quizplay"
	"github.com/arjun/quizgen/internal/ui/layout"
	"github.com/arjun/quizgen/internal/ui/theme"
)

// generatedMsg carries the generator result. Seq ties it to the request it
// answers; a result arriving after the user navigated away is dropped.
type generatedMsg struct {
	Seq       int
	Questions []quiz.Question
	Err       error
}

// spinnerTickMsg animates the waiting spinner.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// GeneratingScreen runs question generation in the background and swaps in
// the quiz screen when the questions arrive.
type GeneratingScreen struct {
	generator quizgen.Generator
	store     *history.Store
	cfg       quiz.Config

	cancel  context.CancelFunc
	seq     int
	frame   int
	started time.Time
}

var _ screen.Screen = (*GeneratingScreen)(nil)
var _ screen.KeyHintProvider = (*GeneratingScreen)(nil)

// New creates a GeneratingScreen for the given session configuration.
func New(generator quizgen.Generator, store *history.Store, cfg quiz.Config) *GeneratingScreen {
	return &GeneratingScreen{
		generator: generator,
		store:     store,
		cfg:       cfg,
	}
}

func (s *GeneratingScreen) Init() tea.Cmd {
	s.started = time.Now()
	return tea.Batch(s.generate(), spinnerTick())
}

func (s *GeneratingScreen) Title() string {
	return "Generating"
}

func (s *GeneratingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *GeneratingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s.handleGenerated(msg)

	case spinnerTickMsg:
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			s.abort()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *GeneratingScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.seq {
		return s, nil
	}
	s.cancel = nil

	if msg.Err != nil {
		// Only cancellation reaches here; anything else degrades to the
		// placeholder question inside the generator.
		return s, tea.Batch(
			func() tea.Msg { return router.PopScreenMsg{} },
			screen.Notify("Question generation was interrupted"),
		)
	}

	session, err := quiz.NewSession(msg.Questions, s.cfg)
	if err != nil {
		return s, tea.Batch(
			func() tea.Msg { return router.PopScreenMsg{} },
			screen.Notify("Could not start quiz: %v", err),
		)
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizplay.New(session, s.store)}
	}
}

// generate kicks off the provider call on a cancellable context.
func (s *GeneratingScreen) generate() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	seq := s.seq
	gen := s.generator
	cfg := s.cfg

	return func() tea.Msg {
		questions, err := gen.Generate(ctx, cfg)
		return generatedMsg{Seq: seq, Questions: questions, Err: err}
	}
}

// abort cancels the in-flight call and invalidates its result.
func (s *GeneratingScreen) abort() {
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *GeneratingScreen) View(width, height int) string {
	elapsed := int(time.Since(s.started).Seconds())

	body := theme.Title.Render(spinnerFrames[s.frame]+" Generating your quiz") + "\n\n" +
		theme.Body.Render("Topic: "+s.cfg.Topic) + "\n" +
		theme.Hint.Render(waitingLine(elapsed))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}

func waitingLine(elapsed int) string {
	switch {
	case elapsed > 30:
		return "Still working... large content can take a while"
	case elapsed > 10:
		return "Asking the model for good distractors..."
	default:
		return "This usually takes a few seconds"
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
