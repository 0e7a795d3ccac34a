package render

import (
	"fmt"
	"io"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// AttemptRow is the listing form of a stored attempt.
type AttemptRow struct {
	AttemptID  string              `json:"attemptId" yaml:"attemptId"`
	QuizID     string              `json:"quizId" yaml:"quizId"`
	Title      string              `json:"title" yaml:"title"`
	Topic      string              `json:"topic" yaml:"topic"`
	Difficulty string              `json:"difficulty" yaml:"difficulty"`
	Correct    int                 `json:"correct" yaml:"correct"`
	Total      int                 `json:"total" yaml:"total"`
	DurationMs int64               `json:"durationMs" yaml:"durationMs"`
	Timestamp  string              `json:"timestamp" yaml:"timestamp"`
	Answers    []quiz.AnswerResult `json:"answers,omitempty" yaml:"answers,omitempty"`
}

// Attempts writes a list of stored attempts.
func Attempts(w io.Writer, attempts []store.AttemptRecord, format Format) error {
	rows := make([]AttemptRow, len(attempts))
	for i, a := range attempts {
		answers, _ := quiz.AttemptAnswers(a)
		rows[i] = AttemptRow{
			AttemptID:  a.AttemptID,
			QuizID:     a.QuizID,
			Title:      a.Title,
			Topic:      a.Topic,
			Difficulty: a.Difficulty,
			Correct:    a.Correct,
			Total:      a.Total,
			DurationMs: a.DurationMs,
			Timestamp:  a.Timestamp.Format(timeLayout),
			Answers:    answers,
		}
	}
	if done, err := encode(w, rows, format); done {
		return err
	}
	if len(rows) == 0 {
		return empty(w, "history")
	}

	headColor.Fprintf(w, "%-16s  %-32s  %-10s  %s\n", "WHEN", "QUIZ", "LEVEL", "SCORE")
	for _, r := range rows {
		score := fmt.Sprintf("%d/%d", r.Correct, r.Total)
		c := goodColor
		if r.Total == 0 || r.Correct*2 < r.Total {
			c = badColor
		}
		fmt.Fprintf(w, "%-16s  %-32s  %-10s  %s\n", r.Timestamp, truncate(r.Title, 32), r.Difficulty, c.Sprint(score))
	}
	return nil
}
