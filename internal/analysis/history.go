package analysis

import (
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// FromAttempts builds a History from stored attempts. Records are expected
// newest first, as QueryAttempts returns them; the History is oldest first.
// Attempts whose answers cannot be decoded keep their score but list no misses.
func FromAttempts(records []store.AttemptRecord) History {
	h := History{Attempts: make([]AttemptSummary, 0, len(records))}
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		s := AttemptSummary{
			Topic:       r.Topic,
			Title:       r.Title,
			Difficulty:  r.Difficulty,
			Format:      r.Format,
			Correct:     r.Correct,
			Total:       r.Total,
			CompletedAt: r.Timestamp,
		}
		answers, err := quiz.AttemptAnswers(r)
		if err == nil {
			for _, a := range answers {
				if !a.Correct {
					s.Missed = append(s.Missed, MissedQuestion{
						Question: a.Question,
						Given:    a.Given,
						Expected: a.Expected,
					})
				}
			}
		}
		h.Attempts = append(h.Attempts, s)
	}
	return h
}
