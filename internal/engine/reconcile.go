package engine

import (
	"context"
	"fmt"

	"github.com/lvidal/trainstreak/internal/routine"
)

// BackfillReport describes one reconciliation pass.
type BackfillReport struct {
	// Cutoff is the last date eligible for backfill: yesterday by
	// wall-clock date, not a 24h offset.
	Cutoff routine.Date `json:"cutoff"`

	// Written lists the dates converted to failed records, ascending.
	Written []routine.Date `json:"written"`

	// Skipped counts scheduled in-window dates that already had a
	// record - the idempotency filter at work.
	Skipped int `json:"skipped"`
}

// reconcileLocked performs the backfill pass. Caller holds e.mu.
//
// Any scheduled day in [routineStartDate, yesterday] with no recorded
// outcome is deemed missed and written as a failed record. Writes are
// independent per date: a failed write is logged, collected into a
// PartialBackfillError, and the pass moves on - the next pass retries
// exactly the still-missing dates because the filter re-derives them.
//
// The streak counters are never touched here. Backfilled days are
// historical; only the in-session toggle of today mutates the streak.
func (e *Engine) reconcileLocked(ctx context.Context) (BackfillReport, error) {
	today := e.today()
	report := BackfillReport{Cutoff: today.AddDays(-1)}

	sched, err := e.store.ScheduledWeekdays(ctx)
	if err != nil {
		return report, fmt.Errorf("reconcile: %w", err)
	}

	start, hasStart, err := e.store.RoutineStartDate(ctx)
	if err != nil {
		return report, fmt.Errorf("reconcile: %w", err)
	}

	// No armed routine, or the routine has not had a full day to miss.
	if !hasStart || sched.IsEmpty() || report.Cutoff.Before(start) {
		return report, nil
	}

	existing, err := e.store.ListOutcomes(ctx, &start, &report.Cutoff)
	if err != nil {
		return report, fmt.Errorf("reconcile: %w", err)
	}
	recorded := make(map[routine.Date]bool, len(existing))
	for _, rec := range existing {
		recorded[rec.Date] = true
	}

	var failures []BackfillFailure
	for d := start; !report.Cutoff.Before(d); d = d.AddDays(1) {
		if !sched.Contains(d.Weekday()) {
			continue
		}
		if recorded[d] {
			report.Skipped++
			continue
		}

		if err := e.store.UpsertOutcome(ctx, d, routine.OutcomeFailed); err != nil {
			e.log.Warn("backfill write failed",
				"date", d.String(),
				"session", e.session,
				"error", err)
			failures = append(failures, BackfillFailure{Date: d, Err: err})
			continue
		}
		report.Written = append(report.Written, d)
	}

	if len(failures) > 0 {
		return report, &PartialBackfillError{Failures: failures}
	}

	if len(report.Written) > 0 {
		e.log.Info("backfill pass complete",
			"session", e.session,
			"written", len(report.Written),
			"cutoff", report.Cutoff.String())
	}
	return report, nil
}
