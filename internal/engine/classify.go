package engine

import "github.com/lvidal/trainstreak/internal/routine"

// OutcomeIndex maps dates to their recorded outcomes.
type OutcomeIndex map[routine.Date]routine.Outcome

// Snapshot is a point-in-time view of everything classification needs:
// the schedule, the routine start date, the outcome log, and today.
//
// All methods are pure - the same snapshot always classifies the same
// date identically, which is the basis for the property tests.
type Snapshot struct {
	Schedule routine.Schedule
	Start    routine.Date
	HasStart bool
	Outcomes OutcomeIndex
	Today    routine.Date
}

// Status classifies a single calendar day.
//
// Priority order, first match wins:
//  1. weekday not scheduled        -> not-applicable (log is irrelevant)
//  2. outcome record exists        -> the record's status (authoritative)
//  3. no start date, or before it  -> not-applicable (routine not started)
//  4. strictly after today         -> not-applicable (nothing to classify)
//  5. otherwise                    -> pending
//
// An empty schedule short-circuits at rule 1 for every date: a valid
// steady state, not an error.
func (s Snapshot) Status(d routine.Date) routine.DayStatus {
	if !s.Schedule.Contains(d.Weekday()) {
		return routine.StatusNotApplicable
	}
	if outcome, ok := s.Outcomes[d]; ok {
		return outcome.Status()
	}
	if !s.HasStart || d.Before(s.Start) {
		return routine.StatusNotApplicable
	}
	if d.After(s.Today) {
		return routine.StatusNotApplicable
	}
	return routine.StatusPending
}

// NextTrainingDay returns the first scheduled date strictly after
// today. Reports false when the schedule is empty.
func (s Snapshot) NextTrainingDay() (routine.Date, bool) {
	next, ok := s.Schedule.Next(s.Today.Weekday())
	if !ok {
		return routine.Date{}, false
	}
	offset := int(next-s.Today.Weekday()+7) % 7
	if offset == 0 {
		offset = 7
	}
	return s.Today.AddDays(offset), true
}
