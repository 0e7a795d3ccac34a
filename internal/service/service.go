// Package service ties generation, grading and analysis to storage. The
// CLI, the TUI and the HTTP API all go through it.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/logger"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// DefaultHistoryLimit is how many recent attempts an analysis covers by default.
const DefaultHistoryLimit = 20

// priorQuestionWindow is how many recent attempts feed prompt dedup.
const priorQuestionWindow = 10

// Deps holds what a Service needs.
type Deps struct {
	Generator quiz.Generator
	Analyzer  analysis.Analyzer
	Quizzes   store.QuizRepo
	Attempts  store.AttemptRepo
	Reports   store.ReportRepo

	// Model names the configured model, or is empty when none is.
	Model string

	Now func() time.Time
}

// Service implements the quiz workflows on top of storage.
type Service struct {
	gen      quiz.Generator
	analyzer analysis.Analyzer
	quizzes  store.QuizRepo
	attempts store.AttemptRepo
	reports  store.ReportRepo
	model    string
	now      func() time.Time
}

// New creates a Service. Nil generator or analyzer fall back to the Noop ones.
func New(d Deps) *Service {
	s := &Service{
		gen:      d.Generator,
		analyzer: d.Analyzer,
		quizzes:  d.Quizzes,
		attempts: d.Attempts,
		reports:  d.Reports,
		model:    d.Model,
		now:      d.Now,
	}
	if s.gen == nil {
		s.gen = quiz.NoopGenerator{}
	}
	if s.analyzer == nil {
		s.analyzer = analysis.NoopAnalyzer{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Model returns the configured model name, or "" when running unconfigured.
func (s *Service) Model() string { return s.model }

// Generate creates a quiz. Questions from recent attempts on the same topic
// are passed along for dedup. A non-empty quiz is saved when save is set.
func (s *Service) Generate(ctx context.Context, in quiz.GenerateInput, save bool) (*quiz.Quiz, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if len(in.PriorQuestions) == 0 {
		in.PriorQuestions = s.priorQuestions(ctx, in.Topic)
	}

	q, err := s.gen.Generate(ctx, in)
	if err != nil {
		return nil, err
	}
	if q.IsEmpty() || !save {
		return q, nil
	}
	if err := s.SaveQuiz(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// SaveQuiz stores q, assigning an id if it has none.
func (s *Service) SaveQuiz(ctx context.Context, q *quiz.Quiz) error {
	if q.ID == "" {
		q.ID = quiz.NewID(s.now())
	}
	rec, err := quiz.ToRecord(q, s.now())
	if err != nil {
		return err
	}
	if err := s.quizzes.SaveQuiz(ctx, rec); err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}
	return nil
}

// Quiz loads a saved quiz. Returns store.ErrNotFound if it does not exist.
func (s *Service) Quiz(ctx context.Context, id string) (*quiz.Quiz, error) {
	rec, err := s.quizzes.GetQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	return quiz.FromRecord(*rec)
}

// Quizzes lists saved quizzes newest first.
func (s *Service) Quizzes(ctx context.Context, limit int) ([]store.QuizRecord, error) {
	return s.quizzes.ListQuizzes(ctx, store.QueryOpts{Limit: limit})
}

// DeleteQuiz removes a saved quiz. Its attempts stay in the history.
func (s *Service) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.quizzes.DeleteQuiz(ctx, id); err != nil {
		return fmt.Errorf("delete quiz %s: %w", id, err)
	}
	return nil
}

// Submit grades answers for q and records the attempt.
func (s *Service) Submit(ctx context.Context, q *quiz.Quiz, answers map[int]string, elapsed time.Duration) (*store.AttemptRecord, quiz.Result, error) {
	res := quiz.Grade(q, answers)
	rec, err := quiz.NewAttempt(q, res, elapsed)
	if err != nil {
		return nil, res, err
	}
	saved, err := s.attempts.AppendAttempt(ctx, rec)
	if err != nil {
		return nil, res, fmt.Errorf("save attempt: %w", err)
	}
	return saved, res, nil
}

// Attempts lists attempts newest first.
func (s *Service) Attempts(ctx context.Context, limit int) ([]store.AttemptRecord, error) {
	return s.attempts.QueryAttempts(ctx, store.QueryOpts{Limit: limit})
}

// History loads the most recent attempts as an analysis history.
func (s *Service) History(ctx context.Context, limit int) (analysis.History, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	recs, err := s.Attempts(ctx, limit)
	if err != nil {
		return analysis.History{}, err
	}
	return analysis.FromAttempts(recs), nil
}

// Analyze runs the analyzer over the most recent attempts. A non-empty
// report is saved.
func (s *Service) Analyze(ctx context.Context, limit int) (*analysis.Report, error) {
	h, err := s.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	r, err := s.analyzer.Analyze(ctx, h)
	if err != nil {
		return nil, err
	}
	if err := s.SaveReport(ctx, r, len(h.Attempts)); err != nil {
		return nil, err
	}
	return r, nil
}

// SaveReport stores a non-empty report. Empty reports are ignored.
func (s *Service) SaveReport(ctx context.Context, r *analysis.Report, attemptCount int) error {
	if r.IsEmpty() {
		return nil
	}
	if _, err := s.reports.SaveReport(ctx, analysis.ToRecord(r, attemptCount, s.model)); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// LatestReport returns the most recently saved report, or nil if none.
func (s *Service) LatestReport(ctx context.Context) (*analysis.Report, error) {
	rec, err := s.reports.LatestReport(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.FromRecord(rec), nil
}

// priorQuestions collects question texts from recent attempts on topic.
// Lookup failures only cost dedup quality, so they are logged and ignored.
func (s *Service) priorQuestions(ctx context.Context, topic string) []string {
	recs, err := s.attempts.QueryAttempts(ctx, store.QueryOpts{Limit: priorQuestionWindow})
	if err != nil {
		logger.Get().Warn("load prior questions", zap.Error(err))
		return nil
	}
	var out []string
	for i := len(recs) - 1; i >= 0; i-- {
		if !strings.EqualFold(recs[i].Topic, topic) {
			continue
		}
		answers, err := quiz.AttemptAnswers(recs[i])
		if err != nil {
			continue
		}
		for _, a := range answers {
			out = append(out, a.Question)
		}
	}
	return out
}

// IsNotFound reports whether err means a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
