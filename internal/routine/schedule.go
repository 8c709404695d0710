package routine

import (
	"fmt"
	"strings"
	"time"
)

// Schedule is the set of weekdays the user has committed to training on.
// Weekday indexing follows time.Weekday (Sunday == 0).
//
// The set is stored unordered; Days returns it sorted by weekday so
// callers can compute the next training day deterministically.
type Schedule struct {
	days [7]bool
}

// NewSchedule builds a schedule from the given weekdays.
// Duplicates are collapsed.
func NewSchedule(days ...time.Weekday) Schedule {
	var s Schedule
	for _, d := range days {
		s.days[d] = true
	}
	return s
}

// ScheduleFromInts builds a schedule from raw weekday indices 0-6.
// Returns an error on any out-of-range index.
func ScheduleFromInts(days []int) (Schedule, error) {
	var s Schedule
	for _, d := range days {
		if d < 0 || d > 6 {
			return Schedule{}, fmt.Errorf("weekday index %d out of range 0-6", d)
		}
		s.days[d] = true
	}
	return s, nil
}

// Contains reports whether w is a training day.
func (s Schedule) Contains(w time.Weekday) bool {
	return s.days[w]
}

// IsEmpty reports whether no weekday is scheduled. An empty schedule is
// a valid steady state: every date classifies as not-applicable.
func (s Schedule) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of scheduled weekdays.
func (s Schedule) Len() int {
	n := 0
	for _, set := range s.days {
		if set {
			n++
		}
	}
	return n
}

// Days returns the scheduled weekdays in ascending order (Sunday first).
func (s Schedule) Days() []time.Weekday {
	out := make([]time.Weekday, 0, s.Len())
	for w := time.Sunday; w <= time.Saturday; w++ {
		if s.days[w] {
			out = append(out, w)
		}
	}
	return out
}

// Next returns the first scheduled weekday strictly after w, wrapping
// around the week. Reports false when the schedule is empty.
func (s Schedule) Next(w time.Weekday) (time.Weekday, bool) {
	for i := 1; i <= 7; i++ {
		candidate := (w + time.Weekday(i)) % 7
		if s.days[candidate] {
			return candidate, true
		}
	}
	return 0, false
}

// String renders the schedule as comma-separated short weekday names,
// e.g. "Mon, Wed, Fri".
func (s Schedule) String() string {
	names := make([]string, 0, s.Len())
	for _, w := range s.Days() {
		names = append(names, w.String()[:3])
	}
	return strings.Join(names, ", ")
}
