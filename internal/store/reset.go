package store

import (
	"context"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// Reset clears the schedule, the outcome log, and the streak counters,
// and re-arms the routine start date, all in a single transaction.
//
// Atomicity is the whole point: a failure at any step rolls back every
// prior step, so callers never observe a half-reset database. This is
// the one operation that deletes outcome records.
func (s *Store) Reset(ctx context.Context, start routine.Date) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM target_days`); err != nil {
		return fmt.Errorf("reset: clear schedule: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM training_logs`); err != nil {
		return fmt.Errorf("reset: clear outcome log: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE user_metadata
		SET current_streak = 0, max_streak = 0, routine_start_date = ?
		WHERE id = 1
	`, start.String()); err != nil {
		return fmt.Errorf("reset: clear streak state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reset: commit: %w", err)
	}
	return nil
}
