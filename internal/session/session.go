// Package session tracks the exchanges of a single chat session and
// derives the usage statistics shown when the session ends. Everything
// is in-memory; nothing survives the process.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Exchange is one completed turn: what the user typed, which intent it
// resolved to, and what the bot answered.
type Exchange struct {
	Time     time.Time
	Input    string
	Intent   string
	Response string
}

// Session holds the ordered exchange history of one conversation.
type Session struct {
	id        string
	started   time.Time
	clock     func() time.Time
	exchanges []Exchange
}

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithClock injects the clock used to timestamp exchanges.
// Default: time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithID overrides the generated session id. Tests use this for
// deterministic ids.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// New creates an empty session with a fresh UUID.
func New(opts ...Option) *Session {
	s := &Session{
		id:    uuid.New().String(),
		clock: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.started = s.clock()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Started returns when the session was created.
func (s *Session) Started() time.Time {
	return s.started
}

// Record appends one exchange to the history, timestamped with the
// session clock.
func (s *Session) Record(input, intent, response string) {
	s.exchanges = append(s.exchanges, Exchange{
		Time:     s.clock(),
		Input:    input,
		Intent:   intent,
		Response: response,
	})
}

// Exchanges returns a copy of the exchange history in order.
func (s *Session) Exchanges() []Exchange {
	return append([]Exchange(nil), s.exchanges...)
}

// IntentCount pairs an intent label with how often it was matched.
type IntentCount struct {
	Intent string
	Count  int
}

// Statistics summarizes a session for the end-of-conversation report.
type Statistics struct {
	TotalExchanges int
	Intents        []IntentCount
}

// Statistics tallies the recorded exchanges per intent. The result is
// ordered by count descending, then intent name, so the report is
// stable across runs.
func (s *Session) Statistics() Statistics {
	counts := make(map[string]int)
	for _, ex := range s.exchanges {
		counts[ex.Intent]++
	}

	stats := Statistics{TotalExchanges: len(s.exchanges)}
	for intent, count := range counts {
		stats.Intents = append(stats.Intents, IntentCount{Intent: intent, Count: count})
	}
	sort.Slice(stats.Intents, func(i, j int) bool {
		if stats.Intents[i].Count != stats.Intents[j].Count {
			return stats.Intents[i].Count > stats.Intents[j].Count
		}
		return stats.Intents[i].Intent < stats.Intents[j].Intent
	})
	return stats
}
