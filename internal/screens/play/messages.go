package play

import (
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// attemptSavedMsg is sent once the finished attempt has been graded and stored.
type attemptSavedMsg struct {
	Attempt *store.AttemptRecord
	Result  quiz.Result
	Err     error
}
