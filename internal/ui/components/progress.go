package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/ui/theme"
)

// ProgressBar is a solid bar Width cells wide, filled to Fill (0..1).
type ProgressBar struct {
	Fill        float64
	Width       int
	Color       color.Color
	ShowPercent bool
}

func NewProgressBar(fill float64, width int) ProgressBar {
	return ProgressBar{Fill: fill, Width: width, Color: theme.Secondary}
}

// ScoreBar is a bar colored by how well the score went.
func ScoreBar(percent float64, width int) ProgressBar {
	p := NewProgressBar(percent/100, width)
	p.ShowPercent = true
	switch {
	case percent >= 80:
		p.Color = theme.Success
	case percent >= 50:
		p.Color = theme.Warning
	default:
		p.Color = theme.Error
	}
	return p
}

func (p ProgressBar) View() string {
	width := max(p.Width, 4)
	filled := min(max(int(float64(width)*p.Fill+0.5), 0), width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Background(p.Color).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", width-filled)))
	if p.ShowPercent {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(" %3.0f%%", p.Fill*100)))
	}
	return b.String()
}

// Mark is the state of one question in an AnswerTrack.
type Mark int

const (
	MarkPending Mark = iota
	MarkCurrent
	MarkCorrect
	MarkWrong
)

// AnswerTrack renders one glyph per question.
func AnswerTrack(marks []Mark) string {
	var b strings.Builder
	for i, m := range marks {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch m {
		case MarkCorrect:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		case MarkWrong:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("●"))
		case MarkCurrent:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("◉"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return b.String()
}
