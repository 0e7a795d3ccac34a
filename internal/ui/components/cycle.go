package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizai/internal/ui/theme"
)

// Cycle is a single-line selector that steps through a fixed set of values
// with the left and right keys.
type Cycle struct {
	Label   string
	Values  []string
	Index   int
	Focused bool
}

// NewCycle creates a Cycle with current preselected when it is one of values.
func NewCycle(label string, values []string, current string) Cycle {
	c := Cycle{Label: label, Values: values}
	for i, v := range values {
		if v == current {
			c.Index = i
			break
		}
	}
	return c
}

// Update moves the selection when focused.
func (c Cycle) Update(msg tea.Msg) Cycle {
	if !c.Focused || len(c.Values) == 0 {
		return c
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "left", "h":
		c.Index = (c.Index - 1 + len(c.Values)) % len(c.Values)
	case "right", "l", "space", " ":
		c.Index = (c.Index + 1) % len(c.Values)
	}
	return c
}

// Value returns the selected value.
func (c Cycle) Value() string {
	if len(c.Values) == 0 {
		return ""
	}
	return c.Values[c.Index]
}

// View renders "Label  ◂ value ▸".
func (c Cycle) View() string {
	var b strings.Builder
	label := c.Label + ":"
	for len(label) < 12 {
		label += " "
	}
	if c.Focused {
		b.WriteString(theme.Selected.Render("▸ " + label))
		b.WriteString(theme.Selected.Render("◂ " + c.Value() + " ▸"))
	} else {
		b.WriteString(theme.Unselected.Render("  " + label))
		b.WriteString(theme.Body.Render("  " + c.Value()))
	}
	return b.String()
}
