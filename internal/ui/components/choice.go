package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/quizgen/internal/ui/theme"
)

// Choice is an answer selector for a single quiz question. After Reveal it
// freezes and highlights the correct option against the chosen one.
type Choice struct {
	Question    string
	Options     []string
	Selected    int
	Revealed    bool
	ChosenIndex int
	correct     int
}

// NewChoice creates a selector over the question's options. The correct
// answer stays hidden until Reveal.
func NewChoice(question string, options []string, correctAnswer string) Choice {
	correct := -1
	for i, opt := range options {
		if opt == correctAnswer {
			correct = i
			break
		}
	}
	return Choice{
		Question:    question,
		Options:     options,
		Selected:    0,
		ChosenIndex: -1,
		correct:     correct,
	}
}

// Update handles keyboard navigation. Selection is submitted by the owning
// screen via Reveal, not here, so the screen can record the answer first.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Reveal freezes the selector with the current selection as the choice.
func (c *Choice) Reveal() {
	c.Revealed = true
	c.ChosenIndex = c.Selected
}

// RevealTimedOut freezes the selector with no choice made.
func (c *Choice) RevealTimedOut() {
	c.Revealed = true
	c.ChosenIndex = -1
}

// View renders the question and its options.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabel(i), opt)

		if c.Revealed {
			switch {
			case i == c.correct:
				s += theme.Correct.Render(line) + "\n"
			case i == c.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}

// Value returns the text of the currently selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
