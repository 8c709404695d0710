package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lvidal/trainstreak/internal/routine"
)

// createTestStore creates a fresh on-disk store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	tables := []string{"user_metadata", "target_days", "training_logs"}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := createTestStore(t)

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("foreign_keys", "1"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
}

func TestOpen_SeedsMetadataRow(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	st, err := s.StreakState(ctx)
	if err != nil {
		t.Fatalf("StreakState() failed: %v", err)
	}
	if st.Current != 0 || st.Max != 0 {
		t.Errorf("fresh store streak = %+v, want zeros", st)
	}

	if _, ok, err := s.RoutineStartDate(ctx); err != nil {
		t.Fatalf("RoutineStartDate() failed: %v", err)
	} else if ok {
		t.Error("fresh store has a routine start date, want unset")
	}
}

func TestSchedule_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	sched, err := s.ScheduledWeekdays(ctx)
	if err != nil {
		t.Fatalf("ScheduledWeekdays() failed: %v", err)
	}
	if !sched.IsEmpty() {
		t.Errorf("fresh store schedule = %v, want empty", sched.Days())
	}

	want := routine.NewSchedule(time.Monday, time.Wednesday, time.Friday)
	if err := s.SetScheduledWeekdays(ctx, want); err != nil {
		t.Fatalf("SetScheduledWeekdays() failed: %v", err)
	}

	got, err := s.ScheduledWeekdays(ctx)
	if err != nil {
		t.Fatalf("ScheduledWeekdays() failed: %v", err)
	}
	if got != want {
		t.Errorf("schedule = %v, want %v", got.Days(), want.Days())
	}

	configured, err := s.HasConfiguredRoutine(ctx)
	if err != nil {
		t.Fatalf("HasConfiguredRoutine() failed: %v", err)
	}
	if !configured {
		t.Error("HasConfiguredRoutine() = false after saving a schedule")
	}
}

func TestSchedule_SetReplacesWholesale(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := routine.NewSchedule(time.Monday, time.Tuesday, time.Wednesday)
	if err := s.SetScheduledWeekdays(ctx, first); err != nil {
		t.Fatalf("SetScheduledWeekdays() failed: %v", err)
	}

	second := routine.NewSchedule(time.Saturday)
	if err := s.SetScheduledWeekdays(ctx, second); err != nil {
		t.Fatalf("SetScheduledWeekdays() failed: %v", err)
	}

	got, err := s.ScheduledWeekdays(ctx)
	if err != nil {
		t.Fatalf("ScheduledWeekdays() failed: %v", err)
	}
	if got != second {
		t.Errorf("schedule = %v, want %v (old days must not survive)", got.Days(), second.Days())
	}
}

func TestRoutineStartDate_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := routine.MustParseDate("2026-03-02")
	if err := s.SetRoutineStartDate(ctx, want); err != nil {
		t.Fatalf("SetRoutineStartDate() failed: %v", err)
	}

	got, ok, err := s.RoutineStartDate(ctx)
	if err != nil {
		t.Fatalf("RoutineStartDate() failed: %v", err)
	}
	if !ok {
		t.Fatal("RoutineStartDate() reports unset after SetRoutineStartDate")
	}
	if got != want {
		t.Errorf("start date = %s, want %s", got, want)
	}
}
