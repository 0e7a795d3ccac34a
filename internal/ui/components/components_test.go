package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizai/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestChoiceSelectorNumberKey(t *testing.T) {
	c := NewChoiceSelector([]string{"Paris", "Rome", "Madrid"})

	c, done := c.Update(keyPress('2'))
	assert.True(t, done)
	assert.Equal(t, "Rome", c.Value())
}

func TestChoiceSelectorIgnoresOutOfRangeNumber(t *testing.T) {
	c := NewChoiceSelector([]string{"True", "False"})

	c, done := c.Update(keyPress('3'))
	assert.False(t, done)
	assert.Equal(t, "", c.Value())
}

func TestChoiceSelectorArrowsThenEnter(t *testing.T) {
	c := NewChoiceSelector([]string{"a", "b", "c"})

	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, done := c.Update(specialKey(tea.KeyEnter))

	assert.True(t, done)
	assert.Equal(t, "c", c.Value())

	// Locked after a choice.
	c, done = c.Update(keyPress('1'))
	assert.False(t, done)
	assert.Equal(t, "c", c.Value())
}

func TestChoiceSelectorCapsOptions(t *testing.T) {
	c := NewChoiceSelector([]string{"1", "2", "3", "4", "5", "6", "7"})
	assert.Len(t, c.Options, MaxChoices)
}

func TestCycleWraps(t *testing.T) {
	c := NewCycle("Difficulty", []string{"easy", "medium", "hard"}, "hard")
	c.Focused = true

	c = c.Update(specialKey(tea.KeyRight))
	assert.Equal(t, "easy", c.Value())

	c = c.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, "hard", c.Value())
}

func TestCycleIgnoresKeysWhenBlurred(t *testing.T) {
	c := NewCycle("Format", []string{"mixed", "true-false"}, "mixed")
	c = c.Update(specialKey(tea.KeyRight))
	assert.Equal(t, "mixed", c.Value())
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "One"},
		{Label: "Two", Disabled: true},
		{Label: "Three"},
	})

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Selected)
}

func TestScoreBarColor(t *testing.T) {
	assert.Equal(t, theme.Success, ScoreBar(90, 20).Color)
	assert.Equal(t, theme.Warning, ScoreBar(60, 20).Color)
	assert.Equal(t, theme.Error, ScoreBar(10, 20).Color)
}

func TestProgressBarWidth(t *testing.T) {
	assert.Equal(t, 20, lipgloss.Width(NewProgressBar(0.5, 20).View()))
	assert.Equal(t, 4, lipgloss.Width(NewProgressBar(2, 1).View()))
	assert.Contains(t, ScoreBar(75, 10).View(), "75%")
}

func TestAnswerTrack(t *testing.T) {
	out := AnswerTrack([]Mark{MarkCorrect, MarkWrong, MarkCurrent, MarkPending, MarkPending})
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Equal(t, 1, strings.Count(out, "◉"))
	assert.Equal(t, 2, strings.Count(out, "○"))
	assert.Equal(t, 9, lipgloss.Width(out))
}

func TestMenuWrapsAndShortcuts(t *testing.T) {
	var fired string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			fired = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "New", Key: "n", Action: action("new")},
		{Label: "History", Key: "h", Action: action("history")},
		{Label: "Quit", Key: "q", Action: action("quit"), Disabled: true},
	})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected, "up from the top wraps past the disabled item")

	m, _ = m.Update(keyPress('n'))
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, "new", fired)

	fired = ""
	m, _ = m.Update(keyPress('q'))
	assert.Empty(t, fired, "disabled shortcut")
	assert.Equal(t, 0, m.Selected)
}
