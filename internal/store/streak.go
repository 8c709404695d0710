package store

import (
	"context"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// StreakState returns the streak counters.
func (s *Store) StreakState(ctx context.Context) (routine.StreakState, error) {
	var st routine.StreakState
	err := s.db.QueryRowContext(ctx, `
		SELECT current_streak, max_streak FROM user_metadata WHERE id = 1
	`).Scan(&st.Current, &st.Max)
	if err != nil {
		return routine.StreakState{}, fmt.Errorf("read streak state: %w", err)
	}
	return st, nil
}

// SetStreakState replaces the streak counters wholesale.
// Both counters are written in one statement so a reader never observes
// a torn record; the schema CHECK constraints reject any state that
// violates the invariants.
func (s *Store) SetStreakState(ctx context.Context, st routine.StreakState) error {
	if err := st.Check(); err != nil {
		return fmt.Errorf("set streak state: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE user_metadata SET current_streak = ?, max_streak = ? WHERE id = 1
	`, st.Current, st.Max)
	if err != nil {
		return fmt.Errorf("set streak state: %w", err)
	}
	return nil
}
