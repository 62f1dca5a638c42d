package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// appendEvent writes one row into table with the next log sequence and the
// current time prepended to cols. Allocation and insert share a transaction,
// so a failed insert leaves no gap in the sequence.
func (r *eventRepo) appendEvent(ctx context.Context, table string, cols []string, args ...any) (int64, error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin %s append: %w", table, err)
	}
	defer tx.Rollback()

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		return 0, err
	}

	query, qargs, err := builder().Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, cols...)...).
		Values(append([]any{seq, toMillis(r.now())}, args...)...).
		QueryErr()
	if err != nil {
		return 0, fmt.Errorf("build %s insert: %w", table, err)
	}
	if err := tx.Exec(ctx, query, qargs, nil); err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s append: %w", table, err)
	}
	return seq, nil
}

// nextSequence bumps the global counter inside tx and returns the value it
// held before the bump.
func nextSequence(ctx context.Context, tx dialect.ExecQuerier) (int64, error) {
	query, args := builder().Update("global_sequence").
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()

	var rows entsql.Rows
	if err := tx.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	next, err := entsql.ScanInt64(rows)
	if err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return next - 1, nil
}
