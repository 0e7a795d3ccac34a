package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/llm"
	"github.com/abhisek/quizai/internal/logger"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/service"
	"github.com/abhisek/quizai/internal/store"
)

const quizJSON = `{
	"title": "Planets",
	"questions": [
		{"id": 1, "question": "Largest planet?", "type": "multiple-choice", "options": ["Mars", "Jupiter", "Venus"], "correctAnswer": "Jupiter", "explanation": "Jupiter is the largest."},
		{"id": 2, "question": "Pluto is a planet.", "type": "true-false", "options": ["True", "False"], "correctAnswer": "False", "explanation": ""}
	]
}`

const reportJSON = `{"summary":"Solid.","strengths":["gas giants"],"weaknesses":["dwarf planets"],"recommendations":["review the IAU definition"]}`

func newTestServer(t *testing.T, mock *llm.MockProvider) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	d := service.Deps{Quizzes: st.QuizRepo(), Attempts: st.AttemptRepo(), Reports: st.ReportRepo()}
	if mock != nil {
		d.Generator = quiz.New(mock, quiz.DefaultConfig())
		d.Analyzer = analysis.NewLLMAnalyzer(mock, analysis.DefaultConfig())
		d.Model = "mock"
	}
	return New(service.New(d), Options{})
}

func do(t *testing.T, s *Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	resp, data := do(t, s, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","llm":false}`, string(data))
}

func TestCreateQuiz_Unconfigured(t *testing.T) {
	s := newTestServer(t, nil)
	resp, data := do(t, s, http.MethodPost, "/api/quizzes", map[string]any{"topic": "planets"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "{}", string(data))

	resp, data = do(t, s, http.MethodGet, "/api/quizzes", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(data))
}

func TestCreateQuiz_InvalidInput(t *testing.T) {
	s := newTestServer(t, nil)
	resp, data := do(t, s, http.MethodPost, "/api/quizzes", map[string]any{"topic": "planets", "count": 100})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, data)
	assert.Equal(t, CodeInvalidInput, e.Code)
	assert.Contains(t, e.Message, "count")
}

func TestQuizLifecycle(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
		llm.MockResponse{Content: json.RawMessage(reportJSON)},
	)
	s := newTestServer(t, mock)

	resp, data := do(t, s, http.MethodPost, "/api/quizzes", map[string]any{"topic": "planets", "count": 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var created quiz.Quiz
	require.NoError(t, json.Unmarshal(data, &created))
	require.NotEmpty(t, created.ID)

	resp, data = do(t, s, http.MethodGet, "/api/quizzes/"+created.ID+"?hide_answers=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hidden quiz.Quiz
	require.NoError(t, json.Unmarshal(data, &hidden))
	assert.Empty(t, hidden.Questions[0].CorrectAnswer)
	assert.Len(t, hidden.Questions[0].Options, 3)

	resp, data = do(t, s, http.MethodPost, "/api/quizzes/"+created.ID+"/attempts", map[string]any{
		"answers":    map[string]string{"1": "B", "2": "true"},
		"durationMs": 4200,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var attempt attemptResponse
	require.NoError(t, json.Unmarshal(data, &attempt))
	assert.Equal(t, 1, attempt.Correct)
	assert.Equal(t, 2, attempt.Total)
	assert.Equal(t, "Jupiter", attempt.Answers[0].Given)

	resp, data = do(t, s, http.MethodGet, "/api/attempts?limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var attempts []attemptSummary
	require.NoError(t, json.Unmarshal(data, &attempts))
	require.Len(t, attempts, 1)
	assert.Equal(t, int64(4200), attempts[0].DurationMs)

	resp, data = do(t, s, http.MethodPost, "/api/analysis", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	var report analysis.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Solid.", report.Summary)

	resp, data = do(t, s, http.MethodGet, "/api/analysis/latest", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []string{"review the IAU definition"}, report.Recommendations)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	resp, data := do(t, s, http.MethodGet, "/api/quizzes/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, CodeNotFound, decodeError(t, data).Code)

	resp, _ = do(t, s, http.MethodGet, "/api/analysis/latest", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data = do(t, s, http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, CodeHTTPError, decodeError(t, data).Code)
}

func TestSubmit_BadAnswerKey(t *testing.T) {
	s := newTestServer(t, nil)
	resp, data := do(t, s, http.MethodPost, "/api/quizzes/x/attempts", map[string]any{"answers": map[string]string{"one": "a"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, CodeInvalidInput, decodeError(t, data).Code)
}

func TestListLimit_Invalid(t *testing.T) {
	s := newTestServer(t, nil)
	resp, _ := do(t, s, http.MethodGet, "/api/attempts?limit=-3", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalysis_Unconfigured(t *testing.T) {
	s := newTestServer(t, nil)
	resp, data := do(t, s, http.MethodPost, "/api/analysis", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "{}", string(data))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{&quiz.InputError{Field: "topic", Message: "empty"}, CodeInvalidInput, 400},
		{store.ErrNotFound, CodeNotFound, 404},
		{&llm.ErrRateLimit{Err: errors.New("429")}, CodeLLMRateLimited, 429},
		{&llm.ErrProviderUnavailable{Err: errors.New("down")}, CodeLLMServiceError, 503},
		{fmt.Errorf("LLM generation failed: %w", &llm.ErrRequestRejected{Status: 401, Err: errors.New("bad key")}), CodeLLMRejected, 502},
		{&quiz.ValidationError{Validator: "type"}, CodeLLMInvalidOutput, 502},
		{&analysis.ValidationError{Validator: "report"}, CodeLLMInvalidOutput, 502},
		{&llm.ErrInvalidResponse{Err: errors.New("bad")}, CodeLLMInvalidOutput, 502},
		{errors.New("boom"), CodeInternal, 500},
	}
	for _, tt := range tests {
		code, status, _ := classify(tt.err)
		assert.Equal(t, tt.code, code, "%v", tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
	}
}

func TestDeleteQuiz(t *testing.T) {
	s := newTestServer(t, llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(quizJSON)}))

	resp, data := do(t, s, http.MethodPost, "/api/quizzes", map[string]any{"topic": "planets", "count": 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var q quiz.Quiz
	require.NoError(t, json.Unmarshal(data, &q))

	resp, _ = do(t, s, http.MethodDelete, "/api/quizzes/"+q.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, data = do(t, s, http.MethodDelete, "/api/quizzes/"+q.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, data).Code)
}

func TestRequestLogger_RecordsErrorStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	s := newTestServer(t, nil)
	resp, _ := do(t, s, http.MethodGet, "/api/quizzes/missing", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
}
