package routine

import "fmt"

// Outcome is a recorded result for one calendar date. Only terminal
// results are persisted; "pending" is never stored, it is derived
// (see DayStatus).
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
)

// Valid reports whether o is a persistable outcome.
func (o Outcome) Valid() bool {
	return o == OutcomeCompleted || o == OutcomeFailed
}

// Status maps a stored outcome to its derived day status.
func (o Outcome) Status() DayStatus {
	if o == OutcomeCompleted {
		return StatusCompleted
	}
	return StatusFailed
}

// DayStatus is the derived classification of a single calendar day.
// It is never persisted: StatusPending and StatusNotApplicable exist
// only as read-time derivations over the schedule and the outcome log.
type DayStatus string

const (
	StatusCompleted     DayStatus = "completed"
	StatusPending       DayStatus = "pending"
	StatusFailed        DayStatus = "failed"
	StatusNotApplicable DayStatus = "not-applicable"
)

// OutcomeRecord is one row of the outcome log: at most one per date.
type OutcomeRecord struct {
	Date   Date    `json:"date"`
	Status Outcome `json:"status"`
}

// Delta is the direction of a streak mutation.
type Delta int

const (
	Increment Delta = 1
	Decrement Delta = -1
)

// StreakState holds the streak counters.
//
// INVARIANTS (re-established by Apply after every mutation):
//   - Max >= Current
//   - Current >= 0
type StreakState struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Apply returns the state after one streak mutation.
//
// Increment raises Current and lifts Max when Current passes it.
// Decrement lowers Current with a floor of zero; Max is never lowered.
func (s StreakState) Apply(d Delta) StreakState {
	switch d {
	case Increment:
		s.Current++
	case Decrement:
		if s.Current > 0 {
			s.Current--
		}
	}
	if s.Current > s.Max {
		s.Max = s.Current
	}
	return s
}

// Check returns an error when the streak invariants do not hold.
// A violation indicates corrupted storage, not a user error.
func (s StreakState) Check() error {
	if s.Current < 0 {
		return fmt.Errorf("streak state: current %d is negative", s.Current)
	}
	if s.Max < s.Current {
		return fmt.Errorf("streak state: max %d below current %d", s.Max, s.Current)
	}
	return nil
}
