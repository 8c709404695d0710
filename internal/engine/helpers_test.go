package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lvidal/trainstreak/internal/routine"
	"github.com/lvidal/trainstreak/internal/store"
	"github.com/lvidal/trainstreak/internal/testutil"
)

// newTestStore opens a fresh SQLite store in a temp dir.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestEngine wires a real store, a pinned calendar, and an engine
// with an armed routine: the given schedule, started on startDate.
func newTestEngine(t *testing.T, today, startDate string, days ...time.Weekday) (*Engine, *store.Store, *testutil.Calendar) {
	t.Helper()
	ctx := context.Background()

	s := newTestStore(t)
	require.NoError(t, s.SetScheduledWeekdays(ctx, routine.NewSchedule(days...)))
	require.NoError(t, s.SetRoutineStartDate(ctx, routine.MustParseDate(startDate)))

	cal := testutil.NewCalendar(routine.MustParseDate(today))
	e := New(s, WithToday(cal.Today))
	return e, s, cal
}

// flakyStore wraps a Store and fails UpsertOutcome for chosen dates,
// simulating per-date write failures during backfill.
type flakyStore struct {
	Store
	failOn map[routine.Date]error
}

func (f *flakyStore) UpsertOutcome(ctx context.Context, d routine.Date, o routine.Outcome) error {
	if err, ok := f.failOn[d]; ok {
		return err
	}
	return f.Store.UpsertOutcome(ctx, d, o)
}
