package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/history"
	"github.com/arjun/quizgen/internal/quizgen"
	"github.com/arjun/quizgen/internal/router"
	"github.com/arjun/quizgen/internal/screen"
	"github.com/arjun/quizgen/internal/screens/dashboard"
	"github.com/arjun/quizgen/internal/store"
	"github.com/arjun/quizgen/internal/ui/layout"
	"github.com/arjun/quizgen/internal/ui/theme"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Generator quizgen.Generator
	History   *history.Store
	EventRepo store.EventRepo
	Version   string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router       *router.Router
	width        int
	height       int
	themeMode    theme.Mode
	notification string
}

// newAppModel creates a new AppModel with the dashboard screen.
func newAppModel(opts Options) AppModel {
	dash := dashboard.New(opts.Generator, opts.History)
	return AppModel{
		router:    router.New(dash),
		themeMode: theme.Dark,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.NotifyMsg:
		m.notification = msg.Message
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.themeMode = m.themeMode.Toggle()
			theme.SetMode(m.themeMode)
			return m, nil
		case "x":
			if m.notification != "" {
				m.notification = ""
				return m, nil
			}
		}
	}

	// Screens own their Esc handling: mid-quiz it opens a confirmation
	// rather than navigating away.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak := 0
	if sp, ok := active.(screen.StreakProvider); ok {
		streak = sp.Streak()
	}

	header := layout.RenderHeader(title, streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	notification := ""
	if m.notification != "" {
		notification = layout.RenderNotification(m.notification, m.width)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	notifHeight := 0
	if notification != "" {
		notifHeight = lipgloss.Height(notification)
	}

	contentHeight := m.height - headerHeight - footerHeight - notifHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, notification, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
