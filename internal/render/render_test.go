package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

func init() {
	color.NoColor = true
}

func sampleQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:         "01HZX",
		Title:      "Go Basics",
		Topic:      "go",
		Difficulty: quiz.DifficultyEasy,
		Questions: []quiz.Question{
			{ID: 1, Question: "Which keyword declares a constant?", Type: quiz.TypeMultipleChoice, Options: []string{"var", "const"}, CorrectAnswer: "const", Explanation: "const declares constants."},
			{ID: 2, Question: "Which tool formats code?", Type: quiz.TypeShortAnswer, CorrectAnswer: "gofmt"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatHuman, "JSON": FormatJSON, "yaml": FormatYAML, "human": FormatHuman} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEmptyValues(t *testing.T) {
	for _, tc := range []struct {
		format Format
		want   string
	}{
		{FormatJSON, "{}\n"},
		{FormatYAML, "{}\n"},
		{FormatHuman, "(empty quiz)\n"},
	} {
		var buf bytes.Buffer
		require.NoError(t, Quiz(&buf, &quiz.Quiz{}, tc.format, true))
		assert.Equal(t, tc.want, buf.String(), "quiz %s", tc.format)
	}

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, &analysis.Report{}, FormatJSON))
	assert.Equal(t, "{}\n", buf.String())

	buf.Reset()
	require.NoError(t, Report(&buf, nil, FormatHuman))
	assert.Equal(t, "(empty report)\n", buf.String())
}

func TestQuiz_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Quiz(&buf, sampleQuiz(), FormatHuman, false))
	out := buf.String()
	assert.Contains(t, out, "Go Basics")
	assert.Contains(t, out, "1. Which keyword declares a constant?")
	assert.Contains(t, out, "B) const")
	assert.NotContains(t, out, "Answer:")
	assert.NotContains(t, out, "const declares constants.")

	buf.Reset()
	require.NoError(t, Quiz(&buf, sampleQuiz(), FormatHuman, true))
	out = buf.String()
	assert.Contains(t, out, "Answer: gofmt")
	assert.Contains(t, out, "const declares constants.")
}

func TestQuiz_JSONHidesAnswers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Quiz(&buf, sampleQuiz(), FormatJSON, false))

	var got quiz.Quiz
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Questions, 2)
	assert.Empty(t, got.Questions[0].CorrectAnswer)
	assert.Equal(t, []string{"var", "const"}, got.Questions[0].Options)
}

func TestReport_YAML(t *testing.T) {
	r := &analysis.Report{Summary: "ok", Strengths: []string{"a"}, Weaknesses: []string{"b"}, Recommendations: []string{"c"}}
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r, FormatYAML))

	var got analysis.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *r, got)
}

func TestReport_Human(t *testing.T) {
	r := &analysis.Report{Summary: "Solid.", Strengths: []string{"syntax"}, Recommendations: []string{"practice channels"}}
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, r, FormatHuman))
	out := buf.String()
	assert.Contains(t, out, "Solid.")
	assert.Contains(t, out, "• syntax")
	assert.Contains(t, out, "Recommendations")
	assert.NotContains(t, out, "Weaknesses")
}

func TestAttempts(t *testing.T) {
	answers, _ := json.Marshal([]quiz.AnswerResult{{QuestionID: 1, Question: "q", Given: "x", Expected: "y"}})
	attempts := []store.AttemptRecord{{
		AttemptID: "a1", QuizID: "q1", Title: "Go Basics", Difficulty: "easy",
		Correct: 1, Total: 2, Timestamp: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), Answers: answers,
	}}

	var buf bytes.Buffer
	require.NoError(t, Attempts(&buf, attempts, FormatHuman))
	assert.Contains(t, buf.String(), "2026-01-02 03:04")
	assert.Contains(t, buf.String(), "1/2")

	buf.Reset()
	require.NoError(t, Attempts(&buf, attempts, FormatJSON))
	var rows []AttemptRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "y", rows[0].Answers[0].Expected)

	buf.Reset()
	require.NoError(t, Attempts(&buf, nil, FormatHuman))
	assert.Equal(t, "(empty history)\n", buf.String())
}

func TestQuizzes(t *testing.T) {
	quizzes := []store.QuizRecord{{ID: "01HZX", Title: "Go Basics", Difficulty: "easy", QuestionCount: 2, CreatedAt: time.Now()}}
	var buf bytes.Buffer
	require.NoError(t, Quizzes(&buf, quizzes, FormatHuman))
	assert.Contains(t, buf.String(), "01HZX")
	assert.Contains(t, buf.String(), "Go Basics")

	buf.Reset()
	require.NoError(t, Quizzes(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
