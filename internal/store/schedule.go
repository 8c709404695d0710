package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// ScheduledWeekdays returns the configured training weekdays.
// An empty schedule means no routine is configured (or the routine has
// been reset); that is a valid state, not an error.
func (s *Store) ScheduledWeekdays(ctx context.Context) (routine.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day_of_week FROM target_days ORDER BY day_of_week ASC
	`)
	if err != nil {
		return routine.Schedule{}, fmt.Errorf("read schedule: %w", err)
	}
	defer rows.Close()

	var days []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return routine.Schedule{}, fmt.Errorf("read schedule: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return routine.Schedule{}, fmt.Errorf("read schedule: iterate: %w", err)
	}

	sched, err := routine.ScheduleFromInts(days)
	if err != nil {
		return routine.Schedule{}, fmt.Errorf("read schedule: %w", err)
	}
	return sched, nil
}

// SetScheduledWeekdays replaces the schedule wholesale in one
// transaction, mirroring the delete-then-insert configuration flow.
func (s *Store) SetScheduledWeekdays(ctx context.Context, sched routine.Schedule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set schedule: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM target_days`); err != nil {
		return fmt.Errorf("set schedule: clear: %w", err)
	}

	for _, w := range sched.Days() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO target_days (day_of_week) VALUES (?)
		`, int(w)); err != nil {
			return fmt.Errorf("set schedule: insert weekday %d: %w", int(w), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("set schedule: commit: %w", err)
	}
	return nil
}

// HasConfiguredRoutine reports whether any training weekday is set.
func (s *Store) HasConfiguredRoutine(ctx context.Context) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM target_days`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check routine configured: %w", err)
	}
	return count > 0, nil
}

// RoutineStartDate returns the routine's start date.
// Reports false when no routine has been armed yet.
func (s *Store) RoutineStartDate(ctx context.Context) (routine.Date, bool, error) {
	var raw sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT routine_start_date FROM user_metadata WHERE id = 1
	`).Scan(&raw)
	if err != nil {
		return routine.Date{}, false, fmt.Errorf("read routine start date: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return routine.Date{}, false, nil
	}

	d, err := routine.ParseDate(raw.String)
	if err != nil {
		return routine.Date{}, false, fmt.Errorf("read routine start date: %w", err)
	}
	return d, true, nil
}

// SetRoutineStartDate arms the routine start date.
func (s *Store) SetRoutineStartDate(ctx context.Context, d routine.Date) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE user_metadata SET routine_start_date = ? WHERE id = 1
	`, d.String())
	if err != nil {
		return fmt.Errorf("set routine start date: %w", err)
	}
	return nil
}
