package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode selects the active palette. Theme is process-wide UI state toggled
// independently of the screen stack; the AppModel owns the current mode
// and applies it through SetMode.
type Mode int

const (
	Dark Mode = iota
	Light
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Color palette. Reassigned wholesale by SetMode; the derived styles below
// capture colors at assignment time, so SetMode rebuilds them too.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography and state styles.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Card       lipgloss.Style
)

func init() {
	SetMode(Dark)
}

// SetMode swaps the active palette and rebuilds the derived styles.
func SetMode(m Mode) {
	if m == Light {
		Primary = lipgloss.Color("#6D28D9")   // Deep Purple
		Secondary = lipgloss.Color("#0D9488") // Teal
		Accent = lipgloss.Color("#C2410C")    // Burnt Orange
		Success = lipgloss.Color("#15803D")   // Green
		Error = lipgloss.Color("#BE123C")     // Rose
		Text = lipgloss.Color("#0F172A")      // Near Black
		TextDim = lipgloss.Color("#64748B")   // Slate
		BgCard = lipgloss.Color("#E2E8F0")    // Light Slate
		Border = lipgloss.Color("#94A3B8")    // Slate
	} else {
		Primary = lipgloss.Color("#8B5CF6")   // Vivid Purple
		Secondary = lipgloss.Color("#14B8A6") // Teal
		Accent = lipgloss.Color("#F97316")    // Orange
		Success = lipgloss.Color("#22C55E")   // Green
		Error = lipgloss.Color("#F43F5E")     // Rose
		Text = lipgloss.Color("#F8FAFC")      // White
		TextDim = lipgloss.Color("#94A3B8")   // Slate
		BgCard = lipgloss.Color("#1E293B")    // Dark Slate
		Border = lipgloss.Color("#334155")    // Slate
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}
