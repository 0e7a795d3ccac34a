package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var quizColumns = []string{
	"id", "title", "topic", "format", "difficulty",
	"question_count", "questions", "model", "created_at",
}

type quizRepo struct {
	drv *entsql.Driver
}

func (r *quizRepo) SaveQuiz(ctx context.Context, q QuizRecord) error {
	if q.ID == "" {
		return fmt.Errorf("save quiz: empty id")
	}
	created := q.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	questions := q.Questions
	if len(questions) == 0 {
		questions = []byte("[]")
	}

	ins := builder().Insert(tableQuizzes).
		Columns(quizColumns...).
		Values(q.ID, q.Title, q.Topic, q.Format, q.Difficulty,
			q.QuestionCount, string(questions), q.Model, created.UTC()).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues())
	if err := exec(ctx, r.drv, ins); err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}
	return nil
}

func (r *quizRepo) GetQuiz(ctx context.Context, id string) (*QuizRecord, error) {
	sel := builder().Select(quizColumns...).
		From(entsql.Table(tableQuizzes)).
		Where(entsql.EQ("id", id)).
		Limit(1)

	var found *QuizRecord
	err := scanAll(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		q, err := scanQuiz(rows)
		found = q
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get quiz %s: %w", id, err)
	}
	if found == nil {
		return nil, fmt.Errorf("quiz %s: %w", id, ErrNotFound)
	}
	return found, nil
}

func (r *quizRepo) ListQuizzes(ctx context.Context, opts QueryOpts) ([]QuizRecord, error) {
	sel := builder().Select(quizColumns...).
		From(entsql.Table(tableQuizzes))
	if preds := timeRange("created_at", opts); len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	// ULIDs sort by creation time, so id breaks ties within a timestamp.
	sel.OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	var out []QuizRecord
	err := scanAll(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		q, err := scanQuiz(rows)
		if err != nil {
			return err
		}
		out = append(out, *q)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return out, nil
}

func (r *quizRepo) DeleteQuiz(ctx context.Context, id string) error {
	del := builder().Delete(tableQuizzes).Where(entsql.EQ("id", id))
	var res entsql.Result
	query, args := del.Query()
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete quiz %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quiz %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("quiz %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanQuiz(rows *entsql.Rows) (*QuizRecord, error) {
	var (
		q         QuizRecord
		questions []byte
	)
	if err := rows.Scan(&q.ID, &q.Title, &q.Topic, &q.Format, &q.Difficulty,
		&q.QuestionCount, &questions, &q.Model, &q.CreatedAt); err != nil {
		return nil, err
	}
	q.Questions = questions
	q.CreatedAt = q.CreatedAt.UTC()
	return &q, nil
}
