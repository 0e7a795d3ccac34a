package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/screen/screentest"
	"github.com/abhisek/quizai/internal/screens/play"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestStartQuizOpensPlay(t *testing.T) {
	q := screentest.SampleQuiz()
	backend := &screentest.Backend{SavedQuizzes: map[string]*quiz.Quiz{q.ID: q}}
	m := newAppModel(Options{Backend: backend, StartQuizID: q.ID})

	m, _ = update(t, m, startQuizMsg{Quiz: q})
	require.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*play.PlayScreen)
	assert.True(t, ok)
}

func TestStartQuizMissingShowsError(t *testing.T) {
	m := newAppModel(Options{Backend: &screentest.Backend{}, StartQuizID: "missing"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	_, err := m.backend.Quiz(t.Context(), "missing")
	m, _ = update(t, m, startQuizMsg{Err: err})

	assert.Equal(t, 1, m.router.Depth())
	assert.Contains(t, m.render(), "Could not open quiz missing")
}

func TestEscIsForwardedToPlay(t *testing.T) {
	q := screentest.SampleQuiz()
	m := newAppModel(Options{Backend: &screentest.Backend{}})
	m, _ = update(t, m, startQuizMsg{Quiz: q})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.router.View(100, 30), "Quit this quiz?")
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Backend: &screentest.Backend{}})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsModelInHeader(t *testing.T) {
	m := newAppModel(Options{Backend: &screentest.Backend{ModelName: "claude-haiku-4-5"}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.render(), "claude-haiku-4-5")
}
