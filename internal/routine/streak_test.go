package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakState_Increment(t *testing.T) {
	s := StreakState{}.Apply(Increment)
	assert.Equal(t, StreakState{Current: 1, Max: 1}, s)

	s = s.Apply(Increment)
	assert.Equal(t, StreakState{Current: 2, Max: 2}, s)
}

func TestStreakState_IncrementBelowMax(t *testing.T) {
	s := StreakState{Current: 2, Max: 10}.Apply(Increment)
	assert.Equal(t, StreakState{Current: 3, Max: 10}, s)
}

func TestStreakState_DecrementClampsAtZero(t *testing.T) {
	s := StreakState{Current: 0, Max: 5}.Apply(Decrement)
	assert.Equal(t, StreakState{Current: 0, Max: 5}, s)
}

func TestStreakState_DecrementNeverLowersMax(t *testing.T) {
	s := StreakState{Current: 5, Max: 5}.Apply(Decrement)
	assert.Equal(t, StreakState{Current: 4, Max: 5}, s)
}

// Round trip: increment then decrement with current < max restores
// current and leaves max untouched.
func TestStreakState_RoundTrip(t *testing.T) {
	for current := 0; current < 8; current++ {
		start := StreakState{Current: current, Max: current + 3}
		end := start.Apply(Increment).Apply(Decrement)
		assert.Equal(t, start, end, "start %+v", start)
	}
}

// Invariant: max >= current >= 0 holds after any delta sequence.
func TestStreakState_InvariantUnderArbitrarySequences(t *testing.T) {
	// Deterministic pseudo-random walk over deltas.
	deltas := make([]Delta, 0, 500)
	seed := uint32(42)
	for i := 0; i < 500; i++ {
		seed = seed*1664525 + 1013904223
		if seed%3 == 0 {
			deltas = append(deltas, Decrement)
		} else {
			deltas = append(deltas, Increment)
		}
	}

	s := StreakState{}
	for i, d := range deltas {
		s = s.Apply(d)
		require.NoError(t, s.Check(), "after delta %d", i)
	}
}

func TestStreakState_Check(t *testing.T) {
	assert.NoError(t, StreakState{}.Check())
	assert.NoError(t, StreakState{Current: 3, Max: 7}.Check())
	assert.Error(t, StreakState{Current: -1, Max: 0}.Check())
	assert.Error(t, StreakState{Current: 5, Max: 2}.Check())
}

func TestOutcome_Valid(t *testing.T) {
	assert.True(t, OutcomeCompleted.Valid())
	assert.True(t, OutcomeFailed.Valid())
	assert.False(t, Outcome("pending").Valid())
	assert.False(t, Outcome("").Valid())
}

func TestOutcome_Status(t *testing.T) {
	assert.Equal(t, StatusCompleted, OutcomeCompleted.Status())
	assert.Equal(t, StatusFailed, OutcomeFailed.Status())
}
