package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvidal/trainstreak/internal/routine"
)

// Toggle scenario from the spec: today is a scheduled day with no
// record. Toggling completes it and raises the streak; toggling back
// removes the record, restores pending, and restores the streak.
func TestToggleToday_RoundTrip(t *testing.T) {
	// 2026-03-06 is a Friday.
	e, s, _ := newTestEngine(t, "2026-03-06", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()
	today := routine.MustParseDate("2026-03-06")

	snap, err := e.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, routine.StatusPending, snap.Status(today))

	res, err := e.ToggleToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StatusCompleted, res.Status)
	assert.Equal(t, routine.StreakState{Current: 1, Max: 1}, res.Streak)

	got, ok, err := s.Outcome(ctx, today)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, routine.OutcomeCompleted, got)

	// Toggle back: record removed, pending restored, streak decremented.
	res, err = e.ToggleToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StatusPending, res.Status)
	assert.Equal(t, routine.StreakState{Current: 0, Max: 1}, res.Streak,
		"decrement restores current; max is never lowered")

	_, ok, err = s.Outcome(ctx, today)
	require.NoError(t, err)
	assert.False(t, ok, "revert deletes the record instead of storing pending")
}

func TestToggleToday_AccumulatesStreak(t *testing.T) {
	e, _, cal := newTestEngine(t, "2026-03-02", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()

	// Complete Monday, Wednesday, Friday of the same week.
	for i, advance := range []int{0, 2, 2} {
		cal.Advance(advance)
		res, err := e.ToggleToday(ctx)
		require.NoError(t, err)
		assert.Equal(t, routine.StreakState{Current: i + 1, Max: i + 1}, res.Streak)
	}

	st, err := e.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StreakState{Current: 3, Max: 3}, st)
}

func TestToggleToday_NotAScheduledDay(t *testing.T) {
	// 2026-03-07 is a Saturday, not in the schedule.
	e, _, _ := newTestEngine(t, "2026-03-07", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)

	_, err := e.ToggleToday(context.Background())
	require.Error(t, err)

	var te *ToggleError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, routine.StatusNotApplicable, te.Status)
}

func TestToggleToday_FailedDayIsTerminal(t *testing.T) {
	e, s, _ := newTestEngine(t, "2026-03-06", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()
	today := routine.MustParseDate("2026-03-06")

	require.NoError(t, s.UpsertOutcome(ctx, today, routine.OutcomeFailed))

	_, err := e.ToggleToday(ctx)
	require.Error(t, err)

	var te *ToggleError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, routine.StatusFailed, te.Status)

	// The streak must be untouched by the refused toggle.
	st, err := e.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StreakState{}, st)
}

// Backfilled failures never perturb the live counter: reconcile a
// missed week, then complete today - the streak starts at 1, not
// some negative-adjusted value.
func TestBackfillDoesNotTouchStreak(t *testing.T) {
	e, _, _ := newTestEngine(t, "2026-03-09", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()

	report, _, err := e.OnSessionStart(ctx)
	require.NoError(t, err)
	require.Len(t, report.Written, 3)

	st, err := e.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StreakState{}, st, "backfill must not call the streak tracker")

	res, err := e.ToggleToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StreakState{Current: 1, Max: 1}, res.Streak)
}

func TestConfigure_InstallsFreshRoutine(t *testing.T) {
	e, s, _ := newTestEngine(t, "2026-03-09", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()

	// Accumulate some state first.
	_, _, err := e.OnSessionStart(ctx)
	require.NoError(t, err)
	_, err = e.ToggleToday(ctx)
	require.NoError(t, err)

	require.NoError(t, e.Configure(ctx, routine.NewSchedule(time.Tuesday, time.Thursday)))

	sched, err := s.ScheduledWeekdays(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.NewSchedule(time.Tuesday, time.Thursday), sched)

	start, ok, err := s.RoutineStartDate(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2026-03-09", start.String(), "start date re-arms to the configuration date")

	log, err := s.ListOutcomes(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, log, "configure clears the previous outcome log")

	st, err := e.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StreakState{}, st)
}

func TestConfigure_RejectsEmptySchedule(t *testing.T) {
	e, _, _ := newTestEngine(t, "2026-03-09", "2026-03-02", time.Monday)

	err := e.Configure(context.Background(), routine.Schedule{})
	assert.ErrorIs(t, err, ErrEmptySchedule)
}

// Reset scenario from the spec: after arbitrary operations, reset
// yields zeroed counters, empty log and schedule, a fresh start date,
// and an immediately-following reconciliation writes zero records.
func TestReset_Scenario(t *testing.T) {
	e, s, _ := newTestEngine(t, "2026-03-09", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()

	_, _, err := e.OnSessionStart(ctx)
	require.NoError(t, err)
	_, err = e.ToggleToday(ctx)
	require.NoError(t, err)

	require.NoError(t, e.Reset(ctx))

	st, err := e.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, routine.StreakState{}, st)

	log, err := s.ListOutcomes(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, log)

	sched, err := s.ScheduledWeekdays(ctx)
	require.NoError(t, err)
	assert.True(t, sched.IsEmpty())

	start, ok, err := s.RoutineStartDate(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2026-03-09", start.String())

	// The backfill window is empty: cutoff (yesterday) precedes the
	// fresh start date.
	report, err := e.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Written)
}

func TestWeek_CurrentWeekProjection(t *testing.T) {
	// Friday 2026-03-06; the week runs Sunday 03-01 .. Saturday 03-07.
	e, s, _ := newTestEngine(t, "2026-03-06", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()

	require.NoError(t, s.UpsertOutcome(ctx, routine.MustParseDate("2026-03-02"), routine.OutcomeCompleted))
	require.NoError(t, s.UpsertOutcome(ctx, routine.MustParseDate("2026-03-04"), routine.OutcomeFailed))

	week, err := e.Week(ctx)
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, "2026-03-01", week[0].Date.String())
	assert.Equal(t, "2026-03-07", week[6].Date.String())

	want := []routine.DayStatus{
		routine.StatusNotApplicable, // Sun
		routine.StatusCompleted,     // Mon
		routine.StatusNotApplicable, // Tue
		routine.StatusFailed,        // Wed
		routine.StatusNotApplicable, // Thu
		routine.StatusPending,       // Fri (today)
		routine.StatusNotApplicable, // Sat
	}
	for i, day := range week {
		assert.Equal(t, want[i], day.Status, "weekday %d (%s)", i, day.Date)
	}
}

func TestHasConfiguredRoutine(t *testing.T) {
	s := newTestStore(t)
	e := New(s)
	ctx := context.Background()

	configured, err := e.HasConfiguredRoutine(ctx)
	require.NoError(t, err)
	assert.False(t, configured)

	require.NoError(t, e.Configure(ctx, routine.NewSchedule(time.Monday)))

	configured, err = e.HasConfiguredRoutine(ctx)
	require.NoError(t, err)
	assert.True(t, configured)
}

func TestLoad_SnapshotContents(t *testing.T) {
	e, s, _ := newTestEngine(t, "2026-03-06", "2026-03-02",
		time.Monday, time.Wednesday, time.Friday)
	ctx := context.Background()

	require.NoError(t, s.UpsertOutcome(ctx, routine.MustParseDate("2026-03-04"), routine.OutcomeFailed))

	snap, err := e.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, routine.NewSchedule(time.Monday, time.Wednesday, time.Friday), snap.Schedule)
	assert.True(t, snap.HasStart)
	assert.Equal(t, "2026-03-02", snap.Start.String())
	assert.Equal(t, "2026-03-06", snap.Today.String())
	assert.Equal(t, OutcomeIndex{
		routine.MustParseDate("2026-03-04"): routine.OutcomeFailed,
	}, snap.Outcomes)
}
