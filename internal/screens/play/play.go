package play

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/screens/results"
	"github.com/abhisek/quizai/internal/ui/components"
	"github.com/abhisek/quizai/internal/ui/layout"
)

// feedback is the verdict shown after each answer.
type feedback struct {
	Correct     bool
	Given       string
	Expected    string
	Explanation string
}

// PlayScreen walks through a quiz one question at a time.
type PlayScreen struct {
	backend screen.Backend
	quiz    *quiz.Quiz
	now     func() time.Time

	index   int
	answers map[int]string
	started time.Time

	choice   components.ChoiceSelector
	input    components.TextInput
	useInput bool

	feedback    *feedback
	confirmQuit bool
	submitting  bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscapeHandler = (*PlayScreen)(nil)

// New creates a play screen for q.
func New(backend screen.Backend, q *quiz.Quiz) *PlayScreen {
	return &PlayScreen{
		backend: backend,
		quiz:    q,
		now:     time.Now,
		answers: make(map[int]string),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	s.started = s.now()
	return s.loadQuestion()
}

func (s *PlayScreen) Title() string {
	if s.quiz != nil && s.quiz.Title != "" {
		return s.quiz.Title
	}
	return "Quiz"
}

func (s *PlayScreen) HandlesEscape() bool { return true }

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.empty():
		return []layout.KeyHint{{Key: "Any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "y", Description: "Quit quiz"},
			{Key: "n", Description: "Keep going"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case s.useInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: fmt.Sprintf("1-%d", len(s.choice.Options)), Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) empty() bool {
	return s.quiz == nil || len(s.quiz.Questions) == 0
}

func (s *PlayScreen) current() *quiz.Question {
	if s.empty() || s.index >= len(s.quiz.Questions) {
		return nil
	}
	return &s.quiz.Questions[s.index]
}

// loadQuestion prepares the answer widget for the current question.
func (s *PlayScreen) loadQuestion() tea.Cmd {
	q := s.current()
	if q == nil {
		return nil
	}
	s.feedback = nil
	if q.Type == quiz.TypeShortAnswer || len(q.Options) == 0 {
		s.useInput = true
		s.input = components.NewTextInput("Type your answer", 200)
		return s.input.Init()
	}
	s.useInput = false
	s.choice = components.NewChoiceSelector(q.Options)
	return nil
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.useInput && s.feedback == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.empty() {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.submitting {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.feedback != nil {
		if key == "enter" || key == "space" || key == " " {
			return s.advance()
		}
		return s, nil
	}

	if s.useInput {
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s.answer(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var done bool
	s.choice, done = s.choice.Update(msg)
	if done {
		return s.answer(s.choice.Value())
	}
	return s, nil
}

// answer records given for the current question and shows feedback.
func (s *PlayScreen) answer(given string) (screen.Screen, tea.Cmd) {
	q := s.current()
	if q == nil {
		return s, nil
	}
	given = strings.TrimSpace(given)
	s.answers[q.ID] = given

	if !s.useInput {
		s.choice.Reveal(correctIndex(*q))
	}
	s.feedback = &feedback{
		Correct:     quiz.CheckAnswer(*q, given),
		Given:       given,
		Expected:    q.CorrectAnswer,
		Explanation: q.Explanation,
	}
	return s, nil
}

// advance moves to the next question, or submits after the last one.
func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	s.index++
	if s.index < len(s.quiz.Questions) {
		return s, s.loadQuestion()
	}
	s.feedback = nil
	s.submitting = true
	return s, s.submit()
}

func (s *PlayScreen) submit() tea.Cmd {
	q := s.quiz
	answers := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	elapsed := s.now().Sub(s.started)
	backend := s.backend

	return func() tea.Msg {
		rec, res, err := backend.Submit(context.Background(), q, answers, elapsed)
		return attemptSavedMsg{Attempt: rec, Result: res, Err: err}
	}
}

func (s *PlayScreen) handleSaved(msg attemptSavedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	backend, q := s.backend, s.quiz
	retry := func() screen.Screen { return New(backend, q) }
	next := results.New(q, msg.Result, msg.Err, retry)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// correctIndex returns the option matching the expected answer, or -1.
func correctIndex(q quiz.Question) int {
	for i, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
			return i
		}
	}
	return -1
}
