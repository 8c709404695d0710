package engine

import (
	"iter"

	"github.com/lvidal/trainstreak/internal/routine"
)

// Day pairs a calendar date with its derived status.
type Day struct {
	Date   routine.Date      `json:"date"`
	Status routine.DayStatus `json:"status"`
}

// Project returns the statuses for every date in the closed range
// [a, b], ascending, as a lazy restartable sequence. An inverted range
// yields nothing.
//
// The sequence is a pure function of the snapshot: re-ranging over it,
// or calling Project again with the same bounds, yields the identical
// sequence of exactly a..b entries. Month boundaries are a rendering
// concern; classification is month-agnostic.
func (s Snapshot) Project(a, b routine.Date) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for d := a; !b.Before(d); d = d.AddDays(1) {
			if !yield(Day{Date: d, Status: s.Status(d)}) {
				return
			}
		}
	}
}

// ProjectSlice materializes Project into a slice.
func (s Snapshot) ProjectSlice(a, b routine.Date) []Day {
	days := []Day{}
	for day := range s.Project(a, b) {
		days = append(days, day)
	}
	return days
}
