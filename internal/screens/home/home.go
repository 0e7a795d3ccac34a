package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/router"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/screens/history"
	"github.com/abhisek/quizai/internal/screens/insights"
	"github.com/abhisek/quizai/internal/screens/quizzes"
	"github.com/abhisek/quizai/internal/screens/setup"
	"github.com/abhisek/quizai/internal/ui/components"
)

// stats is the dashboard summary shown above the menu.
type stats struct {
	Quizzes     int
	HasAttempt  bool
	LastCorrect int
	LastTotal   int
}

type statsLoadedMsg stats

// HomeScreen is the main menu.
type HomeScreen struct {
	backend screen.Backend
	menu    components.Menu
	stats   stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(backend screen.Backend, analysisSvc *analysis.Service) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "NEW QUIZ", Key: "n", Action: push(func() screen.Screen { return setup.New(backend, "") })},
		{Label: "SAVED QUIZZES", Key: "s", Action: push(func() screen.Screen { return quizzes.New(backend) })},
		{Label: "HISTORY", Key: "h", Action: push(func() screen.Screen { return history.New(backend) })},
		{Label: "INSIGHTS", Key: "i", Action: push(func() screen.Screen { return insights.New(backend, analysisSvc) })},
		{Label: "QUIT", Key: "q", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		backend: backend,
		menu:    components.NewMenu(items),
	}
}

// Init loads the dashboard stats. It runs again whenever the app returns home.
func (h *HomeScreen) Init() tea.Cmd {
	backend := h.backend
	return func() tea.Msg {
		ctx := context.Background()
		var st stats
		if list, err := backend.Quizzes(ctx, 0); err == nil {
			st.Quizzes = len(list)
		}
		if recent, err := backend.Attempts(ctx, 1); err == nil && len(recent) > 0 {
			st.HasAttempt = true
			st.LastCorrect = recent[0].Correct
			st.LastTotal = recent[0].Total
		}
		return statsLoadedMsg(st)
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if st, ok := msg.(statsLoadedMsg); ok {
		h.stats = stats(st)
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to estimate
	// the full terminal height.
	termHeight := height + 6
	compact := termHeight < 34 || width < 100

	cw := contentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if h.backend.Model() == "" {
		sections = append(sections, renderModelBanner(cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw))
	if compact {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
