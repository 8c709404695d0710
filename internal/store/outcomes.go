package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// Outcome returns the recorded outcome for a date.
// Reports false when no record exists - the "not yet recorded" state.
func (s *Store) Outcome(ctx context.Context, d routine.Date) (routine.Outcome, bool, error) {
	var status string
	err := s.db.QueryRowContext(ctx, `
		SELECT status FROM training_logs WHERE date_recorded = ?
	`, d.String()).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read outcome %s: %w", d, err)
	}
	return routine.Outcome(status), true, nil
}

// UpsertOutcome records an outcome for a date, replacing any existing
// record. At most one record per date is enforced by the primary key.
func (s *Store) UpsertOutcome(ctx context.Context, d routine.Date, o routine.Outcome) error {
	if !o.Valid() {
		return fmt.Errorf("upsert outcome %s: invalid status %q", d, o)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training_logs (date_recorded, status)
		VALUES (?, ?)
		ON CONFLICT(date_recorded) DO UPDATE SET status = excluded.status
	`, d.String(), string(o))
	if err != nil {
		return fmt.Errorf("upsert outcome %s: %w", d, err)
	}
	return nil
}

// DeleteOutcome removes the record for a date, returning the day to its
// derived state. Deleting an absent record is a no-op.
func (s *Store) DeleteOutcome(ctx context.Context, d routine.Date) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM training_logs WHERE date_recorded = ?
	`, d.String())
	if err != nil {
		return fmt.Errorf("delete outcome %s: %w", d, err)
	}
	return nil
}

// ListOutcomes returns outcome records in ascending date order.
// Nil bounds are open: ListOutcomes(ctx, nil, nil) returns the full log.
// Bounds are inclusive.
//
// Returns an empty slice (not nil) when no records match.
func (s *Store) ListOutcomes(ctx context.Context, from, to *routine.Date) ([]routine.OutcomeRecord, error) {
	query := `SELECT date_recorded, status FROM training_logs`
	var args []any
	switch {
	case from != nil && to != nil:
		query += ` WHERE date_recorded >= ? AND date_recorded <= ?`
		args = append(args, from.String(), to.String())
	case from != nil:
		query += ` WHERE date_recorded >= ?`
		args = append(args, from.String())
	case to != nil:
		query += ` WHERE date_recorded <= ?`
		args = append(args, to.String())
	}
	query += ` ORDER BY date_recorded ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	records := []routine.OutcomeRecord{}
	for rows.Next() {
		var rawDate, rawStatus string
		if err := rows.Scan(&rawDate, &rawStatus); err != nil {
			return nil, fmt.Errorf("list outcomes: scan: %w", err)
		}
		d, err := routine.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("list outcomes: %w", err)
		}
		records = append(records, routine.OutcomeRecord{Date: d, Status: routine.Outcome(rawStatus)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list outcomes: iterate: %w", err)
	}

	return records, nil
}
