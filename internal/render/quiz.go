package render

import (
	"fmt"
	"io"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// Quiz writes q. Answers and explanations are omitted unless withAnswers.
func Quiz(w io.Writer, q *quiz.Quiz, format Format, withAnswers bool) error {
	if q == nil {
		q = &quiz.Quiz{}
	}
	if !withAnswers {
		q = q.WithoutAnswers()
	}
	if done, err := encode(w, q, format); done {
		return err
	}
	if q.IsEmpty() {
		return empty(w, "quiz")
	}

	titleColor.Fprintln(w, q.Title)
	meta := fmt.Sprintf("%s · %s · %d questions", q.Topic, q.Difficulty, len(q.Questions))
	if q.ID != "" {
		meta += " · " + q.ID
	}
	dimColor.Fprintln(w, meta)
	rule(w)

	for _, qq := range q.Questions {
		fmt.Fprintf(w, "%d. %s %s\n", qq.ID, qq.Question, dimColor.Sprintf("[%s]", qq.Type))
		for i, o := range qq.Options {
			line := fmt.Sprintf("   %c) %s", 'A'+i, o)
			if withAnswers && o == qq.CorrectAnswer {
				goodColor.Fprintln(w, line)
				continue
			}
			fmt.Fprintln(w, line)
		}
		if withAnswers {
			if len(qq.Options) == 0 {
				goodColor.Fprintf(w, "   Answer: %s\n", qq.CorrectAnswer)
			}
			if qq.Explanation != "" {
				dimColor.Fprintf(w, "   %s\n", qq.Explanation)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// QuizRow is the listing form of a stored quiz.
type QuizRow struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Topic      string `json:"topic" yaml:"topic"`
	Format     string `json:"format" yaml:"format"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Questions  int    `json:"questions" yaml:"questions"`
	CreatedAt  string `json:"createdAt" yaml:"createdAt"`
}

// Quizzes writes a list of stored quizzes.
func Quizzes(w io.Writer, quizzes []store.QuizRecord, format Format) error {
	rows := make([]QuizRow, len(quizzes))
	for i, q := range quizzes {
		rows[i] = QuizRow{
			ID:         q.ID,
			Title:      q.Title,
			Topic:      q.Topic,
			Format:     q.Format,
			Difficulty: q.Difficulty,
			Questions:  q.QuestionCount,
			CreatedAt:  q.CreatedAt.Format(timeLayout),
		}
	}
	if done, err := encode(w, rows, format); done {
		return err
	}
	if len(rows) == 0 {
		return empty(w, "quiz list")
	}

	headColor.Fprintf(w, "%-26s  %-16s  %-32s  %-10s  %s\n", "ID", "CREATED", "TITLE", "LEVEL", "QUESTIONS")
	for _, r := range rows {
		fmt.Fprintf(w, "%-26s  %-16s  %-32s  %-10s  %d\n", r.ID, r.CreatedAt, truncate(r.Title, 32), r.Difficulty, r.Questions)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04"

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
