// Package screentest provides an in-memory screen.Backend for screen tests.
package screentest

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/screen"
	"github.com/abhisek/quizai/internal/store"
)

// Backend records calls and serves canned data.
type Backend struct {
	mu sync.Mutex

	ModelName    string
	GenQuiz      *quiz.Quiz
	GenErr       error
	SavedQuizzes map[string]*quiz.Quiz
	AttemptList  []store.AttemptRecord
	Latest       *analysis.Report
	SubmitErr    error

	GenerateInputs []quiz.GenerateInput
	Submitted      []map[int]string
	SavedReports   []*analysis.Report
}

var _ screen.Backend = (*Backend)(nil)

func (b *Backend) Model() string { return b.ModelName }

func (b *Backend) Generate(_ context.Context, in quiz.GenerateInput, _ bool) (*quiz.Quiz, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	b.GenerateInputs = append(b.GenerateInputs, in)
	if b.GenErr != nil {
		return nil, b.GenErr
	}
	if b.GenQuiz == nil {
		return &quiz.Quiz{}, nil
	}
	return b.GenQuiz, nil
}

func (b *Backend) Quiz(_ context.Context, id string) (*quiz.Quiz, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	q, ok := b.SavedQuizzes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return q, nil
}

func (b *Backend) Quizzes(context.Context, int) ([]store.QuizRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []store.QuizRecord
	for _, q := range b.SavedQuizzes {
		rec, err := quiz.ToRecord(q, time.Unix(0, 0))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (b *Backend) Submit(_ context.Context, q *quiz.Quiz, answers map[int]string, elapsed time.Duration) (*store.AttemptRecord, quiz.Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Submitted = append(b.Submitted, answers)
	res := quiz.Grade(q, answers)
	if b.SubmitErr != nil {
		return nil, res, b.SubmitErr
	}
	rec, err := quiz.NewAttempt(q, res, elapsed)
	if err != nil {
		return nil, res, err
	}
	b.AttemptList = append([]store.AttemptRecord{rec}, b.AttemptList...)
	return &rec, res, nil
}

func (b *Backend) Attempts(context.Context, int) ([]store.AttemptRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.AttemptList, nil
}

func (b *Backend) History(context.Context, int) (analysis.History, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return analysis.FromAttempts(b.AttemptList), nil
}

func (b *Backend) SaveReport(_ context.Context, r *analysis.Report, _ int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !r.IsEmpty() {
		b.SavedReports = append(b.SavedReports, r)
		b.Latest = r
	}
	return nil
}

func (b *Backend) LatestReport(context.Context) (*analysis.Report, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Latest, nil
}

// SampleQuiz returns a three-question quiz covering every question type.
func SampleQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:         "01J0000000000000000000TEST",
		Title:      "Capitals",
		Topic:      "geography",
		Format:     quiz.FormatMixed,
		Difficulty: quiz.DifficultyEasy,
		Questions: []quiz.Question{
			{ID: 1, Question: "Capital of France?", Type: quiz.TypeMultipleChoice,
				Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, CorrectAnswer: "Paris",
				Explanation: "Paris has been the capital since 987."},
			{ID: 2, Question: "Rome is in Spain.", Type: quiz.TypeTrueFalse,
				Options: []string{"True", "False"}, CorrectAnswer: "False"},
			{ID: 3, Question: "Capital of Japan?", Type: quiz.TypeShortAnswer, CorrectAnswer: "Tokyo"},
		},
	}
}
