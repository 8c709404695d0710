package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lvidal/trainstreak/internal/routine"
)

// Store is the persistence contract the engine drives. Implemented by
// *store.Store (SQLite) in production and by wrappers in tests.
//
// The engine trusts each individual operation to be atomic; it supplies
// the serialization across operations itself (see package doc).
type Store interface {
	ScheduledWeekdays(ctx context.Context) (routine.Schedule, error)
	SetScheduledWeekdays(ctx context.Context, sched routine.Schedule) error
	HasConfiguredRoutine(ctx context.Context) (bool, error)
	RoutineStartDate(ctx context.Context) (routine.Date, bool, error)
	SetRoutineStartDate(ctx context.Context, d routine.Date) error

	Outcome(ctx context.Context, d routine.Date) (routine.Outcome, bool, error)
	UpsertOutcome(ctx context.Context, d routine.Date, o routine.Outcome) error
	DeleteOutcome(ctx context.Context, d routine.Date) error
	ListOutcomes(ctx context.Context, from, to *routine.Date) ([]routine.OutcomeRecord, error)

	StreakState(ctx context.Context) (routine.StreakState, error)
	SetStreakState(ctx context.Context, st routine.StreakState) error

	Reset(ctx context.Context, start routine.Date) error
}

// TodayFunc supplies the current calendar date. Injected so tests can
// pin or advance the day deterministically.
type TodayFunc func() routine.Date

// Engine owns all mutations of the outcome log and the streak state.
//
// Thread-safety model:
//   - Reconcile, ToggleToday, Reset, OnSessionStart, Configure:
//     serialized by an internal mutex (single logical writer)
//   - Load and everything on Snapshot: pure reads, no locking
type Engine struct {
	store Store
	today TodayFunc
	log   *slog.Logger

	mu      sync.Mutex
	started bool   // session guard: reconciliation ran already
	session string // UUIDv7 stamped on the first OnSessionStart
}

// Option configures an Engine.
type Option func(*Engine)

// WithToday overrides the engine's notion of "today".
func WithToday(f TodayFunc) Option {
	return func(e *Engine) {
		e.today = f
	}
}

// WithLogger sets the structured logger used for reconciliation
// diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates an Engine over the given store.
func New(s Store, opts ...Option) *Engine {
	e := &Engine{
		store: s,
		today: routine.Today,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load reads a point-in-time Snapshot: schedule, routine start date,
// the full outcome log, and today's date. No lock is taken - the result
// is a consistent-enough read view for classification and projection.
func (e *Engine) Load(ctx context.Context) (Snapshot, error) {
	sched, err := e.store.ScheduledWeekdays(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	start, hasStart, err := e.store.RoutineStartDate(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	records, err := e.store.ListOutcomes(ctx, nil, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	outcomes := make(OutcomeIndex, len(records))
	for _, rec := range records {
		outcomes[rec.Date] = rec.Status
	}

	return Snapshot{
		Schedule: sched,
		Start:    start,
		HasStart: hasStart,
		Outcomes: outcomes,
		Today:    e.today(),
	}, nil
}

// OnSessionStart runs the backfill reconciliation exactly once per
// Engine instance. Subsequent calls are no-ops reporting ran=false, so
// repeated triggers from the composition layer cannot re-run the pass.
//
// The guard arms even when the pass fails partially: the next session's
// pass retries any date still missing a record (idempotent filter).
func (e *Engine) OnSessionStart(ctx context.Context) (report BackfillReport, ran bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return BackfillReport{}, false, nil
	}
	e.started = true
	e.session = uuid.Must(uuid.NewV7()).String()

	report, err = e.reconcileLocked(ctx)
	return report, true, err
}

// Reconcile runs one backfill pass, serialized with all other writers.
// Most callers want OnSessionStart instead; Reconcile exists for
// explicit re-runs (e.g. a long-lived process crossing midnight).
func (e *Engine) Reconcile(ctx context.Context) (BackfillReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reconcileLocked(ctx)
}

// Streak returns the persisted streak counters.
func (e *Engine) Streak(ctx context.Context) (routine.StreakState, error) {
	st, err := e.store.StreakState(ctx)
	if err != nil {
		return routine.StreakState{}, fmt.Errorf("read streak: %w", err)
	}
	return st, nil
}

// HasConfiguredRoutine reports whether any training weekday is set.
// The composition layer gates the main flow on this, redirecting to
// configuration when false.
func (e *Engine) HasConfiguredRoutine(ctx context.Context) (bool, error) {
	return e.store.HasConfiguredRoutine(ctx)
}

// Configure resets all data and installs a new routine: the schedule
// and a start date of today. The reset and the install are separate
// store operations; the reset is atomic on its own, and a failure
// between the two leaves a cleanly-reset database, never a mix of old
// and new routine.
func (e *Engine) Configure(ctx context.Context, sched routine.Schedule) error {
	if sched.IsEmpty() {
		return ErrEmptySchedule
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()
	if err := e.store.Reset(ctx, today); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	if err := e.store.SetScheduledWeekdays(ctx, sched); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	return nil
}

// Reset clears the schedule, outcome log and streak counters and
// re-arms the routine start date to today. Atomic: the store runs the
// whole sequence in one transaction and rolls back on failure.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Reset(ctx, e.today()); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Week projects the current week (Sunday through Saturday) around
// today. Used for the weekly status row.
func (e *Engine) Week(ctx context.Context) ([]Day, error) {
	snap, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}
	weekStart := snap.Today.AddDays(-int(snap.Today.Weekday()))
	return snap.ProjectSlice(weekStart, weekStart.AddDays(6)), nil
}
