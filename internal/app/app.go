package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/screens/home"
	"github.com/abhisek/quizai/internal/screens/play"
	"github.com/abhisek/quizai/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Backend  screen.Backend
	Analysis *analysis.Service

	// StartQuizID opens the saved quiz with this id on launch.
	StartQuizID string
}

// startQuizMsg carries the quiz loaded for StartQuizID.
type startQuizMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	backend screen.Backend
	startID string
	errMsg  string
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	svc := opts.Analysis
	if svc == nil {
		svc = analysis.NewService(analysis.NoopAnalyzer{})
	}
	return AppModel{
		router:  router.New(home.New(opts.Backend, svc)),
		backend: opts.Backend,
		startID: opts.StartQuizID,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.startID != "" {
		backend, id := m.backend, m.startID
		cmds = append(cmds, func() tea.Msg {
			q, err := backend.Quiz(context.Background(), id)
			return startQuizMsg{Quiz: q, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startQuizMsg:
		if msg.Err != nil {
			m.errMsg = fmt.Sprintf("Could not open quiz %s: %v", m.startID, msg.Err)
			return m, nil
		}
		return m, m.router.Push(play.New(m.backend, msg.Quiz))

	case tea.KeyMsg:
		m.errMsg = ""
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.backend.Model(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if m.errMsg != "" {
		content = layout.RenderError(m.errMsg, m.width) + "\n" + content
	}
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
