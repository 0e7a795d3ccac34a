package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/ui/components"
	"github.com/abhisek/quizai/internal/ui/layout"
	"github.com/abhisek/quizai/internal/ui/theme"
)

// ResultsScreen shows the score for a finished quiz and the missed questions.
type ResultsScreen struct {
	quiz    *quiz.Quiz
	result  quiz.Result
	saveErr error
	retry   func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. saveErr is shown when the attempt could not
// be recorded. retry, when non-nil, builds a fresh play screen for the same quiz.
func New(q *quiz.Quiz, res quiz.Result, saveErr error, retry func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{quiz: q, result: res, saveErr: saveErr, retry: retry}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retry"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// HandlesEscape keeps Esc from popping back into the finished quiz.
func (s *ResultsScreen) HandlesEscape() bool { return true }

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r":
		if s.retry != nil {
			next := s.retry()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	title := "Quiz"
	if s.quiz != nil && s.quiz.Title != "" {
		title = s.quiz.Title
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	pct := s.result.Percent()
	scoreStyle := theme.Correct
	if pct < 50 {
		scoreStyle = theme.Incorrect
	}
	score := scoreStyle.Render(fmt.Sprintf("%d / %d", s.result.Correct, s.result.Total)) +
		theme.Body.Render(fmt.Sprintf("  (%.0f%%)", pct))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(score))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	bar := components.ScoreBar(pct, barWidth)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))
	b.WriteString("\n\n")

	if s.saveErr != nil {
		b.WriteString("  " + theme.ErrorText.Render("Could not save attempt: "+s.saveErr.Error()))
		b.WriteString("\n\n")
	}

	missed := s.result.Missed()
	if len(missed) == 0 {
		if s.result.Total > 0 {
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
				Render(theme.Correct.Render("Perfect score!")))
		}
		return b.String()
	}

	b.WriteString("  " + theme.Heading.Render("Missed questions"))
	b.WriteString("\n")
	for _, m := range missed {
		b.WriteString(renderMiss(m, width))
	}
	return b.String()
}

func renderMiss(m quiz.AnswerResult, width int) string {
	given := m.Given
	if given == "" {
		given = "(no answer)"
	}
	wrap := lipgloss.NewStyle().Width(width - 6)
	var b strings.Builder
	b.WriteString("\n  " + wrap.Render(theme.Body.Render(fmt.Sprintf("%d. %s", m.QuestionID, m.Question))))
	b.WriteString("\n     " + theme.Incorrect.Render("✗ "+given))
	b.WriteString("\n     " + theme.Correct.Render("✓ "+m.Expected))
	b.WriteString("\n")
	return b.String()
}
