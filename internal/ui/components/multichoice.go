package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/ui/theme"
)

// MaxChoices is the number of options a ChoiceSelector can label.
const MaxChoices = 6

var choiceLabels = [MaxChoices]string{"A", "B", "C", "D", "E", "F"}

// ChoiceSelector picks one option out of a short list. Arrow keys move the
// cursor, Enter confirms it, and the number keys 1..n pick directly.
type ChoiceSelector struct {
	Options  []string
	Selected int
	Chosen   int // -1 until the user commits
	Correct  int // -1 until Reveal is called
}

// NewChoiceSelector creates a selector over options. Options past
// MaxChoices are dropped.
func NewChoiceSelector(options []string) ChoiceSelector {
	if len(options) > MaxChoices {
		options = options[:MaxChoices]
	}
	return ChoiceSelector{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Update handles navigation. The returned bool reports whether this message
// committed a choice.
func (c ChoiceSelector) Update(msg tea.Msg) (ChoiceSelector, bool) {
	if c.Chosen >= 0 {
		return c, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
		return c, false
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
		return c, false
	case "enter":
		if len(c.Options) == 0 {
			return c, false
		}
		c.Chosen = c.Selected
		return c, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(c.Options) {
			c.Selected = idx
			c.Chosen = idx
			return c, true
		}
	}
	return c, false
}

// Value returns the chosen option text, or "" before a choice is made.
func (c ChoiceSelector) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// Reveal marks the option at idx as the correct one for rendering.
func (c *ChoiceSelector) Reveal(idx int) {
	c.Correct = idx
}

// View renders the option list.
func (c ChoiceSelector) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && c.Chosen < 0 {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, choiceLabels[i], opt)

		var style lipgloss.Style
		switch {
		case c.Chosen >= 0 && i == c.Correct:
			style = theme.Correct
		case c.Chosen >= 0 && i == c.Chosen:
			style = theme.Incorrect
		case c.Chosen >= 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
