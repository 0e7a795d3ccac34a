package insights

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/ui/layout"
	"github.com/abhisek/quizai/internal/ui/theme"
)

// historyLimit is how many recent attempts an analysis covers.
const historyLimit = 20

const pollInterval = 200 * time.Millisecond

type latestLoadedMsg struct {
	Report *analysis.Report
}

type historyLoadedMsg struct {
	History analysis.History
	Err     error
}

// pollMsg asks the screen to check the analysis service for a result.
type pollMsg struct{}

// InsightsScreen analyzes recent attempts and shows the report. The last
// saved report stays visible while a new one is generated.
type InsightsScreen struct {
	backend  screen.Backend
	analysis *analysis.Service

	report   *analysis.Report
	attempts int
	running  bool
	fresh    bool
	errMsg   string
	notice   string
	spin     spinner.Model
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New creates an InsightsScreen.
func New(backend screen.Backend, svc *analysis.Service) *InsightsScreen {
	return &InsightsScreen{
		backend:  backend,
		analysis: svc,
		spin:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (s *InsightsScreen) Init() tea.Cmd {
	backend := s.backend
	loadLatest := func() tea.Msg {
		r, err := backend.LatestReport(context.Background())
		if err != nil {
			return latestLoadedMsg{}
		}
		return latestLoadedMsg{Report: r}
	}
	return tea.Batch(loadLatest, s.refresh())
}

func (s *InsightsScreen) Title() string { return "Insights" }

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if !s.running {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Regenerate"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// refresh loads the history. The analysis request follows once it arrives.
func (s *InsightsScreen) refresh() tea.Cmd {
	if s.running {
		return nil
	}
	s.running = true
	s.errMsg = ""
	s.notice = ""
	backend := s.backend
	load := func() tea.Msg {
		h, err := backend.History(context.Background(), historyLimit)
		return historyLoadedMsg{History: h, Err: err}
	}
	return tea.Batch(s.spin.Tick, load)
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case latestLoadedMsg:
		// A fresh result wins over the stored one.
		if !s.fresh && !msg.Report.IsEmpty() {
			s.report = msg.Report
		}
		return s, nil

	case historyLoadedMsg:
		return s.handleHistory(msg)

	case pollMsg:
		return s.handlePoll()

	case spinner.TickMsg:
		if !s.running {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.refresh()
		}
	}
	return s, nil
}

func (s *InsightsScreen) handleHistory(msg historyLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.running = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.attempts = len(msg.History.Attempts)
	if s.attempts == 0 {
		s.running = false
		s.notice = "No attempts yet. Take a quiz first, then come back for insights."
		return s, nil
	}
	s.analysis.Request(context.Background(), msg.History)
	return s, poll()
}

func (s *InsightsScreen) handlePoll() (screen.Screen, tea.Cmd) {
	report, ok, err := s.analysis.Consume()
	if !ok {
		return s, poll()
	}
	s.running = false
	if err != nil {
		s.errMsg = describe(err)
		return s, nil
	}
	if report.IsEmpty() {
		if s.backend.Model() == "" {
			s.notice = "No model is configured, so no analysis was produced."
		} else {
			s.notice = "The model returned an empty analysis."
		}
		return s, nil
	}
	s.report = report
	s.fresh = true
	if err := s.backend.SaveReport(context.Background(), report, s.attempts); err != nil {
		s.errMsg = "Could not save report: " + err.Error()
	}
	return s, nil
}

func describe(err error) string {
	var vErr *analysis.ValidationError
	if errors.As(err, &vErr) {
		return "The model returned an unusable report: " + vErr.Message
	}
	return err.Error()
}

func (s *InsightsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case s.running:
		b.WriteString("  " + s.spin.View() + " " + theme.Body.Render("Analyzing your recent attempts..."))
	case s.errMsg != "":
		b.WriteString("  " + theme.ErrorText.Render(s.errMsg))
	case s.notice != "":
		b.WriteString("  " + theme.Notice.Render(s.notice))
	case s.fresh:
		b.WriteString("  " + theme.Hint.Render("Fresh analysis"))
	}
	b.WriteString("\n\n")

	if s.report.IsEmpty() {
		if !s.running {
			b.WriteString("  " + theme.Hint.Render("No report yet."))
		}
		return b.String()
	}

	wrap := lipgloss.NewStyle().Width(width - 6).PaddingLeft(2)
	if s.report.Summary != "" {
		b.WriteString(wrap.Render(theme.Body.Render(s.report.Summary)))
		b.WriteString("\n")
	}
	b.WriteString(section("Strengths", theme.Success, s.report.Strengths, width))
	b.WriteString(section("Weaknesses", theme.Error, s.report.Weaknesses, width))
	b.WriteString(section("Recommendations", theme.Secondary, s.report.Recommendations, width))
	return b.String()
}

func section(title string, c color.Color, items []string, width int) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + lipgloss.NewStyle().Foreground(c).Bold(true).Render(title) + "\n")
	item := lipgloss.NewStyle().Width(width - 8).PaddingLeft(4).Foreground(theme.Text)
	for _, it := range items {
		b.WriteString(item.Render("• "+it) + "\n")
	}
	return b.String()
}
