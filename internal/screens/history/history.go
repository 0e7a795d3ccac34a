package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/store"
	"github.com/abhisek/quizai/internal/ui/layout"
	"github.com/abhisek/quizai/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Err      error
}

// HistoryScreen displays past attempts. Enter expands the missed questions.
type HistoryScreen struct {
	backend  screen.Backend
	attempts []store.AttemptRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(backend screen.Backend) *HistoryScreen {
	return &HistoryScreen{
		backend:  backend,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		attempts, err := backend.Attempts(context.Background(), historyLimit)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Local().Format("Jan 02, 2006 15:04")
		secs := a.DurationMs / 1000
		durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

		var pct float64
		if a.Total > 0 {
			pct = float64(a.Correct) / float64(a.Total) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-28s %d/%d  %3.0f%%  %s",
			prefix, dateStr, layout.Ellipsize(a.Title, 28), a.Correct, a.Total, pct, durationStr)

		style := lipgloss.NewStyle().Foreground(scoreColor(pct))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderMisses(a, width))
		}
	}

	return b.String()
}

// renderMisses lists the questions an attempt got wrong.
func renderMisses(a store.AttemptRecord, width int) string {
	answers, err := quiz.AttemptAnswers(a)
	if err != nil {
		return "      " + theme.ErrorText.Render("Could not read answers: "+err.Error()) + "\n"
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	var b strings.Builder
	missed := 0
	for _, ans := range answers {
		if ans.Correct {
			continue
		}
		missed++
		given := ans.Given
		if given == "" {
			given = "(no answer)"
		}
		b.WriteString(lipgloss.NewStyle().Width(width - 8).PaddingLeft(6).Foreground(theme.Text).
			Render(fmt.Sprintf("%d. %s", ans.QuestionID, ans.Question)))
		b.WriteString("\n")
		b.WriteString("         " + theme.Incorrect.Render("✗ "+given) + "   " + theme.Correct.Render("✓ "+ans.Expected))
		b.WriteString("\n")
	}
	if missed == 0 {
		b.WriteString("      " + dim.Render("No misses on this attempt") + "\n")
	}
	return b.String()
}

func scoreColor(pct float64) color.Color {
	switch {
	case pct >= 80:
		return theme.Success
	case pct >= 50:
		return theme.Text
	default:
		return theme.Error
	}
}
