package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebot/internal/testutils"
)

func TestNewSession(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID())
	assert.False(t, s.Started().IsZero())
	assert.Empty(t, s.Exchanges())
}

func TestSessionOptions(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(
		WithClock(testutils.FixedClock(start)),
		WithID(testutils.SessionID()),
	)

	assert.Equal(t, "00000001-0000-4000-8000-000000000001", s.ID())
	assert.Equal(t, start, s.Started())

	next := New(WithID(testutils.SessionID()))
	assert.Equal(t, "00000002-0000-4000-8000-000000000002", next.ID())
}

func TestSessionRecord(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := testutils.IncrementingClock(start, time.Second)
	s := New(WithClock(clock))

	s.Record("hello", "greeting", "Hi!")
	s.Record("when is the exam", "assessment", "Soon.")

	exchanges := s.Exchanges()
	require.Len(t, exchanges, 2)

	assert.Equal(t, "hello", exchanges[0].Input)
	assert.Equal(t, "greeting", exchanges[0].Intent)
	assert.Equal(t, "Hi!", exchanges[0].Response)
	assert.True(t, exchanges[1].Time.After(exchanges[0].Time))
}

func TestSessionExchangesIsCopy(t *testing.T) {
	s := New()
	s.Record("a", "x", "b")

	exchanges := s.Exchanges()
	exchanges[0].Intent = "mutated"

	assert.Equal(t, "x", s.Exchanges()[0].Intent)
}

func TestSessionStatistics(t *testing.T) {
	s := New(WithClock(testutils.FixedClock(testutils.MorningTime)))

	stats := s.Statistics()
	assert.Equal(t, 0, stats.TotalExchanges)
	assert.Empty(t, stats.Intents)

	s.Record("hello", "greeting", "r")
	s.Record("hi", "greeting", "r")
	s.Record("exam", "assessment", "r")
	s.Record("???", "unknown", "r")
	s.Record("hey", "greeting", "r")

	stats = s.Statistics()
	assert.Equal(t, 5, stats.TotalExchanges)
	require.Len(t, stats.Intents, 3)

	// Ordered by count descending, then name.
	assert.Equal(t, IntentCount{Intent: "greeting", Count: 3}, stats.Intents[0])
	assert.Equal(t, IntentCount{Intent: "assessment", Count: 1}, stats.Intents[1])
	assert.Equal(t, IntentCount{Intent: "unknown", Count: 1}, stats.Intents[2])
}
