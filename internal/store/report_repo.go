package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var reportColumns = []string{
	"id", "sequence", "timestamp", "summary", "strengths", "weaknesses",
	"recommendations", "attempt_count", "model",
}

type reportRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *reportRepo) SaveReport(ctx context.Context, rep ReportRecord) (*ReportRecord, error) {
	strengths, err := marshalList(rep.Strengths)
	if err != nil {
		return nil, err
	}
	weaknesses, err := marshalList(rep.Weaknesses)
	if err != nil {
		return nil, err
	}
	recs, err := marshalList(rep.Recommendations)
	if err != nil {
		return nil, err
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}
	rep.Sequence = seqNum
	if rep.Timestamp.IsZero() {
		rep.Timestamp = time.Now()
	}
	rep.Timestamp = rep.Timestamp.UTC()

	query, args := builder().Insert(tableReports).
		Columns(reportColumns[1:]...).
		Values(rep.Sequence, rep.Timestamp, rep.Summary, strengths, weaknesses,
			recs, rep.AttemptCount, rep.Model).
		Query()
	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	rep.ID = int(id)
	return &rep, nil
}

func (r *reportRepo) LatestReport(ctx context.Context) (*ReportRecord, error) {
	sel := applyOpts(builder().Select(reportColumns...).From(entsql.Table(tableReports)), QueryOpts{Limit: 1})

	var found *ReportRecord
	err := scanAll(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var (
			rep                 ReportRecord
			strengths, weak, rc []byte
		)
		if err := rows.Scan(&rep.ID, &rep.Sequence, &rep.Timestamp, &rep.Summary,
			&strengths, &weak, &rc, &rep.AttemptCount, &rep.Model); err != nil {
			return err
		}
		if err := unmarshalLists(
			[][]byte{strengths, weak, rc},
			[]*[]string{&rep.Strengths, &rep.Weaknesses, &rep.Recommendations},
		); err != nil {
			return err
		}
		rep.Timestamp = rep.Timestamp.UTC()
		found = &rep
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("latest report: %w", err)
	}
	return found, nil
}

func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(b), nil
}

func unmarshalLists(raw [][]byte, dst []*[]string) error {
	for i, b := range raw {
		if len(b) == 0 {
			continue
		}
		if err := json.Unmarshal(b, dst[i]); err != nil {
			return fmt.Errorf("unmarshal list: %w", err)
		}
	}
	return nil
}
