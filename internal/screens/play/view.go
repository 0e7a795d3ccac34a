package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/ui/components"
	"github.com/abhisek/quizai/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.empty() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nThis quiz has no questions.\n\nPress any key to go back.")
	}
	if s.submitting {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nGrading...")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	q := s.current()
	b.WriteString(lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	if s.useInput {
		b.WriteString("  Answer: " + s.input.View())
		b.WriteString("\n")
	} else {
		for _, line := range strings.Split(strings.TrimRight(s.choice.View(), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	if s.feedback != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	if s.confirmQuit {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Notice.Render("Quit this quiz? Your answers will not be saved. (y/n)")))
	}

	return b.String()
}

// renderInfoLine renders "Question n/m", a track of answered questions and
// the running score. Long quizzes fall back to a plain bar.
func (s *PlayScreen) renderInfoLine(width int) string {
	total := len(s.quiz.Questions)
	correct, answered := 0, 0
	marks := make([]components.Mark, total)
	for i, q := range s.quiz.Questions {
		given, ok := s.answers[q.ID]
		switch {
		case ok && quiz.CheckAnswer(q, given):
			marks[i] = components.MarkCorrect
			correct++
			answered++
		case ok:
			marks[i] = components.MarkWrong
			answered++
		case i == s.index:
			marks[i] = components.MarkCurrent
		}
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.index+1, total))
	right := theme.Hint.Render(fmt.Sprintf("%s %d/%d",
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"), correct, answered))

	room := width - lipgloss.Width(left) - lipgloss.Width(right) - 8
	middle := components.AnswerTrack(marks)
	if lipgloss.Width(middle) > room {
		middle = components.NewProgressBar(float64(answered)/float64(total), room).View()
	}
	return left + "  " + middle + "  " + right
}

func (s *PlayScreen) renderFeedback(width int) string {
	fb := s.feedback
	var b strings.Builder
	if fb.Correct {
		b.WriteString("  " + theme.Correct.Render("✓ Correct!"))
	} else {
		b.WriteString("  " + theme.Incorrect.Render("✗ Incorrect."))
		b.WriteString(theme.Body.Render("  The answer is " + fb.Expected + "."))
	}
	if fb.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width - 4).
			PaddingLeft(2).
			Foreground(theme.TextDim).
			Render(fb.Explanation))
	}
	b.WriteString("\n\n  " + theme.Hint.Render("Press Enter to continue"))
	return b.String()
}
