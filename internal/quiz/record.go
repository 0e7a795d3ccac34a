package quiz

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizai/internal/store"
)

// ToRecord converts q for storage.
func ToRecord(q *Quiz, createdAt time.Time) (store.QuizRecord, error) {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return store.QuizRecord{}, fmt.Errorf("marshal questions: %w", err)
	}
	return store.QuizRecord{
		ID:            q.ID,
		Title:         q.Title,
		Topic:         q.Topic,
		Format:        string(q.Format),
		Difficulty:    string(q.Difficulty),
		QuestionCount: len(q.Questions),
		Questions:     questions,
		Model:         q.Model,
		CreatedAt:     createdAt,
	}, nil
}

// FromRecord restores a stored quiz.
func FromRecord(r store.QuizRecord) (*Quiz, error) {
	q := &Quiz{
		ID:         r.ID,
		Title:      r.Title,
		Topic:      r.Topic,
		Format:     Format(r.Format),
		Difficulty: Difficulty(r.Difficulty),
		Model:      r.Model,
	}
	if len(r.Questions) > 0 {
		if err := json.Unmarshal(r.Questions, &q.Questions); err != nil {
			return nil, fmt.Errorf("quiz %s: unmarshal questions: %w", r.ID, err)
		}
	}
	return q, nil
}

// NewAttempt builds the stored form of a graded attempt on q.
func NewAttempt(q *Quiz, res Result, duration time.Duration) (store.AttemptRecord, error) {
	answers, err := json.Marshal(res.Answers)
	if err != nil {
		return store.AttemptRecord{}, fmt.Errorf("marshal answers: %w", err)
	}
	return store.AttemptRecord{
		AttemptID:  uuid.NewString(),
		QuizID:     q.ID,
		Title:      q.Title,
		Topic:      q.Topic,
		Format:     string(q.Format),
		Difficulty: string(q.Difficulty),
		Correct:    res.Correct,
		Total:      res.Total,
		DurationMs: duration.Milliseconds(),
		Answers:    answers,
	}, nil
}

// AttemptAnswers decodes the per-question results of a stored attempt.
func AttemptAnswers(a store.AttemptRecord) ([]AnswerResult, error) {
	if len(a.Answers) == 0 {
		return nil, nil
	}
	var out []AnswerResult
	if err := json.Unmarshal(a.Answers, &out); err != nil {
		return nil, fmt.Errorf("attempt %s: unmarshal answers: %w", a.AttemptID, err)
	}
	return out, nil
}
