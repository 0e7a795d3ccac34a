package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var attemptColumns = []string{
	"id", "sequence", "timestamp", "attempt_id", "quiz_id", "title", "topic",
	"format", "difficulty", "correct", "total", "duration_ms", "answers",
}

type attemptRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, a AttemptRecord) (*AttemptRecord, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}
	a.Sequence = seqNum
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	a.Timestamp = a.Timestamp.UTC()
	answers := a.Answers
	if len(answers) == 0 {
		answers = []byte("[]")
	}

	query, args := builder().Insert(tableAttempts).
		Columns(attemptColumns[1:]...).
		Values(a.Sequence, a.Timestamp, a.AttemptID, a.QuizID, a.Title, a.Topic,
			a.Format, a.Difficulty, a.Correct, a.Total, a.DurationMs, string(answers)).
		Query()
	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	a.ID = int(id)
	a.Answers = answers
	return &a, nil
}

func (r *attemptRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	sel := applyOpts(builder().Select(attemptColumns...).From(entsql.Table(tableAttempts)), opts)

	var out []AttemptRecord
	err := scanAll(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var (
			a       AttemptRecord
			answers []byte
		)
		if err := rows.Scan(&a.ID, &a.Sequence, &a.Timestamp, &a.AttemptID, &a.QuizID,
			&a.Title, &a.Topic, &a.Format, &a.Difficulty, &a.Correct, &a.Total,
			&a.DurationMs, &answers); err != nil {
			return err
		}
		a.Answers = answers
		a.Timestamp = a.Timestamp.UTC()
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return out, nil
}
