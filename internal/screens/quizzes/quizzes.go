package quizzes

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/screens/play"
	"github.com/abhisek/quizai/internal/store"
	"github.com/abhisek/quizai/internal/ui/layout"
	"github.com/abhisek/quizai/internal/ui/theme"
)

const listLimit = 100

type quizzesLoadedMsg struct {
	Quizzes []store.QuizRecord
	Err     error
}

type quizLoadedMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// QuizzesScreen lists saved quizzes. Enter replays the selected one.
type QuizzesScreen struct {
	backend  screen.Backend
	quizzes  []store.QuizRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*QuizzesScreen)(nil)
var _ screen.KeyHintProvider = (*QuizzesScreen)(nil)

// New creates a new QuizzesScreen.
func New(backend screen.Backend) *QuizzesScreen {
	return &QuizzesScreen{backend: backend}
}

func (s *QuizzesScreen) Init() tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		list, err := backend.Quizzes(context.Background(), listLimit)
		return quizzesLoadedMsg{Quizzes: list, Err: err}
	}
}

func (s *QuizzesScreen) Title() string { return "Saved Quizzes" }

func (s *QuizzesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizzesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizzesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.quizzes = msg.Quizzes
		return s, nil

	case quizLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		next := play.New(s.backend, msg.Quiz)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.quizzes)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.quizzes) {
				return s, s.open(s.quizzes[s.selected].ID)
			}
		}
	}
	return s, nil
}

func (s *QuizzesScreen) open(id string) tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		q, err := backend.Quiz(context.Background(), id)
		return quizLoadedMsg{Quiz: q, Err: err}
	}
}

func (s *QuizzesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n  " + theme.ErrorText.Render("Error: "+s.errMsg)
	}
	if !s.loaded {
		return "\n  " + theme.Hint.Render("Loading...")
	}
	if len(s.quizzes) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo saved quizzes yet. Create one from the home screen.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render(fmt.Sprintf("  %-36s %-20s %4s  %s", "Title", "Topic", "Qs", "Created")))
	b.WriteString("\n")

	// Keep the selection visible when the list is taller than the screen.
	visible := max(height-3, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.quizzes))

	for i := start; i < end; i++ {
		q := s.quizzes[i]
		line := fmt.Sprintf("%-36s %-20s %4d  %s",
			layout.Ellipsize(q.Title, 36), layout.Ellipsize(q.Topic, 20), q.QuestionCount, q.CreatedAt.Local().Format("2006-01-02 15:04"))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
