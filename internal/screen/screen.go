package screen

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/quizgen/internal/ui/layout"
)

// NotifyMsg asks the application shell to show a dismissible banner above
// the content area. Screens emit it for non-fatal errors.
type NotifyMsg struct {
	Message string
}

// Notify returns a command that raises a banner notification.
func Notify(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg { return NotifyMsg{Message: msg} }
}

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StreakProvider is an optional interface for screens that track a running
// streak to surface in the header.
type StreakProvider interface {
	Streak() int
}
