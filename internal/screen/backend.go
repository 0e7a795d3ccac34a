package screen

import (
	"context"
	"time"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// Backend is the slice of the quiz service the screens drive.
// *service.Service satisfies it.
type Backend interface {
	Model() string
	Generate(ctx context.Context, in quiz.GenerateInput, save bool) (*quiz.Quiz, error)
	Quiz(ctx context.Context, id string) (*quiz.Quiz, error)
	Quizzes(ctx context.Context, limit int) ([]store.QuizRecord, error)
	Submit(ctx context.Context, q *quiz.Quiz, answers map[int]string, elapsed time.Duration) (*store.AttemptRecord, quiz.Result, error)
	Attempts(ctx context.Context, limit int) ([]store.AttemptRecord, error)
	History(ctx context.Context, limit int) (analysis.History, error)
	SaveReport(ctx context.Context, r *analysis.Report, attemptCount int) error
	LatestReport(ctx context.Context) (*analysis.Report, error)
}
