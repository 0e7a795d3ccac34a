package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/llm"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

const quizJSON = `{
	"title": "Rivers",
	"questions": [
		{"id": 1, "question": "Longest river in Africa?", "type": "short-answer", "options": [], "correctAnswer": "Nile", "explanation": ""},
		{"id": 2, "question": "The Danube flows into the Black Sea.", "type": "true-false", "options": ["True", "False"], "correctAnswer": "True", "explanation": ""}
	]
}`

const reportJSON = `{"summary":"Good start.","strengths":["rivers"],"weaknesses":["lakes"],"recommendations":["try a hard quiz"]}`

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func newService(t *testing.T, st *store.Store, mock *llm.MockProvider) *Service {
	t.Helper()
	d := Deps{
		Quizzes:  st.QuizRepo(),
		Attempts: st.AttemptRepo(),
		Reports:  st.ReportRepo(),
	}
	if mock != nil {
		d.Generator = quiz.New(mock, quiz.DefaultConfig())
		d.Analyzer = analysis.NewLLMAnalyzer(mock, analysis.DefaultConfig())
		d.Model = "mock"
	}
	return New(d)
}

func TestService_Unconfigured(t *testing.T) {
	st := openStore(t)
	svc := newService(t, st, nil)
	ctx := context.Background()

	q, err := svc.Generate(ctx, quiz.GenerateInput{Topic: "rivers"}, true)
	require.NoError(t, err)
	assert.True(t, q.IsEmpty())

	list, err := svc.Quizzes(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "empty quiz must not be saved")

	r, err := svc.Analyze(ctx, 0)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())

	latest, err := svc.LatestReport(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestService_GeneratePlayAnalyze(t *testing.T) {
	st := openStore(t)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
		llm.MockResponse{Content: json.RawMessage(reportJSON)},
	)
	svc := newService(t, st, mock)
	ctx := context.Background()

	q, err := svc.Generate(ctx, quiz.GenerateInput{Topic: "rivers", Count: 2}, true)
	require.NoError(t, err)
	require.NotEmpty(t, q.ID)

	loaded, err := svc.Quiz(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rivers", loaded.Title)
	require.Len(t, loaded.Questions, 2)

	rec, res, err := svc.Submit(ctx, loaded, map[int]string{1: "the nile", 2: "no"}, 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, int64(3000), rec.DurationMs)
	assert.NotZero(t, rec.Sequence)

	report, err := svc.Analyze(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Good start.", report.Summary)

	msg := mock.Calls[1].Messages[0].Content
	assert.Contains(t, msg, "The Danube flows into the Black Sea.")

	latest, err := svc.LatestReport(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, report.Recommendations, latest.Recommendations)
}

func TestService_PriorQuestions(t *testing.T) {
	st := openStore(t)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
		llm.MockResponse{Err: errors.New("stop")},
	)
	svc := newService(t, st, mock)
	ctx := context.Background()

	q, err := svc.Generate(ctx, quiz.GenerateInput{Topic: "Rivers", Count: 2}, true)
	require.NoError(t, err)
	_, _, err = svc.Submit(ctx, q, nil, time.Second)
	require.NoError(t, err)

	_, err = svc.Generate(ctx, quiz.GenerateInput{Topic: "rivers", Count: 2}, false)
	require.Error(t, err)
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "1. Longest river in Africa?")
}

func TestService_InvalidInput(t *testing.T) {
	svc := newService(t, openStore(t), nil)
	_, err := svc.Generate(context.Background(), quiz.GenerateInput{Topic: "x", Count: 99}, true)
	var ie *quiz.InputError
	assert.True(t, errors.As(err, &ie))
}

func TestService_QuizNotFound(t *testing.T) {
	svc := newService(t, openStore(t), nil)
	_, err := svc.Quiz(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestService_SaveQuizAssignsID(t *testing.T) {
	st := openStore(t)
	svc := newService(t, st, nil)
	q := &quiz.Quiz{Title: "Imported", Questions: []quiz.Question{{ID: 1, Question: "Q", Type: quiz.TypeShortAnswer, CorrectAnswer: "A"}}}
	require.NoError(t, svc.SaveQuiz(context.Background(), q))
	assert.Len(t, q.ID, 26)
}

func TestService_DeleteQuiz(t *testing.T) {
	svc := newService(t, openStore(t), nil)
	ctx := context.Background()
	q := &quiz.Quiz{Title: "Temp", Questions: []quiz.Question{{ID: 1, Question: "Q", Type: quiz.TypeShortAnswer, CorrectAnswer: "A"}}}
	require.NoError(t, svc.SaveQuiz(ctx, q))

	require.NoError(t, svc.DeleteQuiz(ctx, q.ID))
	_, err := svc.Quiz(ctx, q.ID)
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(svc.DeleteQuiz(ctx, q.ID)))
}
