package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// builder returns an SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// applyOpts adds the QueryOpts filters to a selector over a table that
// carries the event mixin columns. Results are ordered newest first.
func applyOpts(s *entsql.Selector, opts QueryOpts) *entsql.Selector {
	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	preds = append(preds, timeRange("timestamp", opts)...)
	if len(preds) > 0 {
		s.Where(entsql.And(preds...))
	}
	s.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		s.Limit(opts.Limit)
	}
	return s
}

func timeRange(col string, opts QueryOpts) []*entsql.Predicate {
	var preds []*entsql.Predicate
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(col, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(col, opts.To.UTC()))
	}
	return preds
}

// exec runs a write statement produced by a builder.
func exec(ctx context.Context, drv *entsql.Driver, q entsql.Querier) error {
	query, args := q.Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("exec %q: %w", query, err)
	}
	return nil
}

// scanAll runs a select and calls scan once per row.
func scanAll(ctx context.Context, drv *entsql.Driver, s *entsql.Selector, scan func(*entsql.Rows) error) error {
	query, args := s.Query()
	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(&rows); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}
	return rows.Err()
}
