// Package engine implements the routine status and streak
// reconciliation engine.
//
// Four components share one package:
//
//   - Day Classifier: Snapshot.Status derives a per-date status
//     (completed, pending, failed, not-applicable) from the schedule
//     and the outcome log. Pure, deterministic.
//   - Reconciler: Engine.Reconcile backfills past scheduled days that
//     have no recorded outcome into failed records. Idempotent per
//     date; partial failures self-heal on the next pass.
//   - Streak Tracker: Engine.ToggleToday is the only caller of the
//     streak delta. Backfill never touches the counters - a missed
//     historical day is already outside the live streak window.
//   - Calendar Projector: Snapshot.Project maps a date range to a lazy
//     status-per-day sequence using the same classification rules.
//
// SINGLE-WRITER DISCIPLINE:
// Every read-modify-write sequence (Reconcile, ToggleToday, Reset)
// runs under one mutex. A second caller blocks rather than interleave.
// Snapshot loads are pure reads over a point-in-time copy and take no
// lock; a reader racing a writer may observe a pre-write snapshot but
// never a torn record (the store's per-record write is atomic).
//
// SESSION LIFECYCLE:
// OnSessionStart runs the reconciliation at most once per Engine
// instance, before anything else reads day or streak state. The guard
// is explicit - composition decides when a session begins, not any
// UI-level mount tracking.
package engine
