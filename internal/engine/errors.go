package engine

import (
	"errors"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// ErrEmptySchedule is returned by Configure when no weekday is given.
// (An empty schedule as a *stored* state is valid; installing one on
// purpose is a caller bug.)
var ErrEmptySchedule = errors.New("schedule must contain at least one weekday")

// ToggleError reports a toggle attempt on a day whose status does not
// sit on the pending/completed boundary.
type ToggleError struct {
	Date   routine.Date
	Status routine.DayStatus
	Reason string
}

// Error implements the error interface.
func (e *ToggleError) Error() string {
	return fmt.Sprintf("toggle %s (%s): %s", e.Date, e.Status, e.Reason)
}

// BackfillFailure is one failed per-date write during reconciliation.
type BackfillFailure struct {
	Date routine.Date
	Err  error
}

// PartialBackfillError aggregates per-date write failures from one
// reconciliation pass. Successfully-written dates are kept; the next
// pass retries exactly the dates carried here, because the idempotent
// filter re-derives them from the still-missing records.
type PartialBackfillError struct {
	Failures []BackfillFailure
}

// Error implements the error interface.
func (e *PartialBackfillError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("backfill: write for %s failed: %v", e.Failures[0].Date, e.Failures[0].Err)
	}
	return fmt.Sprintf("backfill: %d per-date writes failed (first: %s: %v)",
		len(e.Failures), e.Failures[0].Date, e.Failures[0].Err)
}

// Unwrap exposes the underlying store errors for errors.Is/As.
func (e *PartialBackfillError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// IsPartialBackfill reports whether err is (or wraps) a partial
// backfill failure. Callers treat it as a warning, not a fatal error.
func IsPartialBackfill(err error) bool {
	var pe *PartialBackfillError
	return errors.As(err, &pe)
}
