package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures record queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizRecord is a persisted quiz. Questions hold the JSON-encoded
// question list exactly as produced by the quiz package.
type QuizRecord struct {
	ID            string
	Title         string
	Topic         string
	Format        string
	Difficulty    string
	QuestionCount int
	Questions     json.RawMessage
	Model         string
	CreatedAt     time.Time
}

// QuizRepo stores generated and imported quizzes.
type QuizRepo interface {
	// SaveQuiz inserts the quiz, replacing any quiz with the same id.
	SaveQuiz(ctx context.Context, q QuizRecord) error

	// GetQuiz returns the quiz with the given id or ErrNotFound.
	GetQuiz(ctx context.Context, id string) (*QuizRecord, error)

	// ListQuizzes returns quizzes newest first. Only Limit, From and To
	// apply; quizzes carry no sequence number.
	ListQuizzes(ctx context.Context, opts QueryOpts) ([]QuizRecord, error)

	// DeleteQuiz removes a quiz. Attempts referencing it are kept.
	DeleteQuiz(ctx context.Context, id string) error
}

// AttemptRecord is one graded run through a quiz.
type AttemptRecord struct {
	ID         int
	Sequence   int64
	Timestamp  time.Time
	AttemptID  string
	QuizID     string
	Title      string
	Topic      string
	Format     string
	Difficulty string
	Correct    int
	Total      int
	DurationMs int64
	Answers    json.RawMessage
}

// AttemptRepo records quiz attempts.
type AttemptRepo interface {
	// AppendAttempt stores an attempt and assigns its sequence number.
	AppendAttempt(ctx context.Context, a AttemptRecord) (*AttemptRecord, error)

	// QueryAttempts returns attempts newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)
}

// ReportRecord is a persisted analysis report.
type ReportRecord struct {
	ID              int
	Sequence        int64
	Timestamp       time.Time
	Summary         string
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	AttemptCount    int
	Model           string
}

// ReportRepo stores analysis reports.
type ReportRepo interface {
	SaveReport(ctx context.Context, r ReportRecord) (*ReportRecord, error)

	// LatestReport returns the most recent report, or nil if none exist.
	LatestReport(ctx context.Context) (*ReportRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if none.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose, most calls first.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates usage per model, most calls first.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
