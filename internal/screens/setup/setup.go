package setup

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/screens/play"
	"github.com/abhisek/quizai/internal/ui/components"
	"github.com/abhisek/quizai/internal/ui/layout"
	"github.com/abhisek/quizai/internal/ui/theme"
)

// Form fields in focus order.
const (
	fieldTopic = iota
	fieldFormat
	fieldDifficulty
	fieldCount
	numFields
)

var counts = []string{"3", "5", "10", "15", "20", "25"}

// generatedMsg carries the result of a generation request.
type generatedMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// SetupScreen collects the quiz parameters and runs generation.
type SetupScreen struct {
	backend screen.Backend

	topic      components.TextInput
	format     components.Cycle
	difficulty components.Cycle
	count      components.Cycle
	focus      int

	spin       spinner.Model
	generating bool
	errMsg     string
	notice     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen. topic prefills the topic field.
func New(backend screen.Backend, topic string) *SetupScreen {
	formats := make([]string, len(quiz.Formats))
	for i, f := range quiz.Formats {
		formats[i] = string(f)
	}
	difficulties := make([]string, len(quiz.Difficulties))
	for i, d := range quiz.Difficulties {
		difficulties[i] = string(d)
	}

	ti := components.NewTextInput("e.g. The French Revolution", quiz.MaxTopicLength)
	ti.SetValue(topic)

	return &SetupScreen{
		backend:    backend,
		topic:      ti,
		format:     components.NewCycle("Format", formats, string(quiz.FormatMixed)),
		difficulty: components.NewCycle("Difficulty", difficulties, string(quiz.DifficultyMedium)),
		count:      components.NewCycle("Questions", counts, "5"),
		spin:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	s.setFocus(fieldTopic)
	return s.topic.Init()
}

func (s *SetupScreen) Title() string { return "New Quiz" }

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Input builds the generate request from the form.
func (s *SetupScreen) Input() quiz.GenerateInput {
	n, _ := strconv.Atoi(s.count.Value())
	return quiz.GenerateInput{
		Topic:      s.topic.Value(),
		Format:     quiz.Format(s.format.Value()),
		Difficulty: quiz.Difficulty(s.difficulty.Value()),
		Count:      n,
	}.Normalize()
}

func (s *SetupScreen) setFocus(f int) {
	s.focus = f
	s.format.Focused = f == fieldFormat
	s.difficulty.Focused = f == fieldDifficulty
	s.count.Focused = f == fieldCount
	if f == fieldTopic {
		s.topic.Focus()
	} else {
		s.topic.Blur()
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s.handleGenerated(msg)

	case spinner.TickMsg:
		if !s.generating {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == fieldTopic {
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		return s.start()
	case "tab", "down":
		s.setFocus((s.focus + 1) % numFields)
		return s, nil
	case "shift+tab", "up":
		s.setFocus((s.focus - 1 + numFields) % numFields)
		return s, nil
	}

	switch s.focus {
	case fieldTopic:
		s.errMsg = ""
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	case fieldFormat:
		s.format = s.format.Update(msg)
	case fieldDifficulty:
		s.difficulty = s.difficulty.Update(msg)
	case fieldCount:
		s.count = s.count.Update(msg)
	}
	return s, nil
}

// start validates the form and kicks off generation.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	in := s.Input()
	if err := in.Validate(); err != nil {
		s.errMsg = describe(err)
		return s, nil
	}

	s.errMsg = ""
	s.notice = ""
	s.generating = true
	backend := s.backend
	generate := func() tea.Msg {
		q, err := backend.Generate(context.Background(), in, true)
		return generatedMsg{Quiz: q, Err: err}
	}
	return s, tea.Batch(s.spin.Tick, generate)
}

func (s *SetupScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.errMsg = describe(msg.Err)
		return s, nil
	}
	if msg.Quiz.IsEmpty() || len(msg.Quiz.Questions) == 0 {
		if s.backend.Model() == "" {
			s.notice = "No model is configured, so no quiz was generated. Set QUIZAI_LLM_PROVIDER and an API key, then try again."
		} else {
			s.notice = "The model returned an empty quiz. Try rewording the topic."
		}
		return s, nil
	}
	next := play.New(s.backend, msg.Quiz)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// describe turns a generation error into a one-line message for the form.
func describe(err error) string {
	var inErr *quiz.InputError
	if errors.As(err, &inErr) {
		return strings.ToUpper(inErr.Field[:1]) + inErr.Field[1:] + " " + inErr.Message + "."
	}
	var vErr *quiz.ValidationError
	if errors.As(err, &vErr) {
		return "The model returned an unusable quiz: " + vErr.Message
	}
	return err.Error()
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Create a quiz"))
	b.WriteString("\n\n")

	label := "  Topic:      "
	if s.focus == fieldTopic {
		b.WriteString(theme.Selected.Render("▸ Topic:      "))
	} else {
		b.WriteString(theme.Unselected.Render(label))
	}
	b.WriteString(s.topic.View())
	b.WriteString("\n\n")

	for _, c := range []components.Cycle{s.format, s.difficulty, s.count} {
		b.WriteString(c.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case s.generating:
		b.WriteString("  " + s.spin.View() + " " + theme.Body.Render("Generating quiz on "+s.Input().Topic+"..."))
	case s.errMsg != "":
		b.WriteString("  " + theme.ErrorText.Render(s.errMsg))
	case s.notice != "":
		b.WriteString(lipgloss.NewStyle().Width(width - 4).PaddingLeft(2).Render(theme.Notice.Render(s.notice)))
	default:
		b.WriteString("  " + theme.Hint.Render("Press Enter to generate"))
	}
	b.WriteString("\n")
	return b.String()
}
