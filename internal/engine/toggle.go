package engine

import (
	"context"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	Date   routine.Date        `json:"date"`
	Status routine.DayStatus   `json:"status"`
	Streak routine.StreakState `json:"streak"`
}

// ToggleToday flips today's status across the pending/completed
// boundary and applies the matching streak delta:
//
//	pending   -> completed: record completed, streak increment
//	completed -> pending:   delete the record, streak decrement
//
// Only today is togglable; that is an interface constraint, not an
// oversight - historical days belong to the reconciler, and their
// outcomes are terminal. A failed or not-applicable today returns a
// typed error.
//
// The read-classify-write-delta sequence runs under the single-writer
// mutex so two concurrent toggles cannot double-apply a delta.
func (e *Engine) ToggleToday(ctx context.Context) (ToggleResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()

	snap, err := e.Load(ctx)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("toggle today: %w", err)
	}

	switch status := snap.Status(today); status {
	case routine.StatusPending:
		if err := e.store.UpsertOutcome(ctx, today, routine.OutcomeCompleted); err != nil {
			return ToggleResult{}, fmt.Errorf("toggle today: %w", err)
		}
		st, err := e.applyDelta(ctx, routine.Increment)
		if err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Date: today, Status: routine.StatusCompleted, Streak: st}, nil

	case routine.StatusCompleted:
		// Reverting removes the record rather than storing a pending
		// marker; pending is derived, never persisted.
		if err := e.store.DeleteOutcome(ctx, today); err != nil {
			return ToggleResult{}, fmt.Errorf("toggle today: %w", err)
		}
		st, err := e.applyDelta(ctx, routine.Decrement)
		if err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Date: today, Status: routine.StatusPending, Streak: st}, nil

	case routine.StatusFailed:
		return ToggleResult{}, &ToggleError{Date: today, Status: status, Reason: "today is already recorded as failed"}

	default:
		return ToggleResult{}, &ToggleError{Date: today, Status: status, Reason: "today is not a scheduled training day"}
	}
}

// applyDelta reads, mutates and rewrites the streak counters. Caller
// holds e.mu. The invariants (max >= current, current >= 0) are
// re-established by StreakState.Apply before the write.
func (e *Engine) applyDelta(ctx context.Context, d routine.Delta) (routine.StreakState, error) {
	st, err := e.store.StreakState(ctx)
	if err != nil {
		return routine.StreakState{}, fmt.Errorf("apply streak delta: %w", err)
	}

	next := st.Apply(d)
	if err := e.store.SetStreakState(ctx, next); err != nil {
		return routine.StreakState{}, fmt.Errorf("apply streak delta: %w", err)
	}
	return next, nil
}
