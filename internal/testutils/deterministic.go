// Package testutils provides deterministic generators for coursebot
// tests, keeping time- and id-dependent output stable across runs.
package testutils

import (
	"fmt"
	"sync"
	"time"
)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// FixedClock returns a clock that always reports the given time.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// IncrementingClock returns a clock that starts at start and advances
// by step on each call, so recorded timestamps sort properly.
func IncrementingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(step)
		return t
	}
}

// MorningTime is a fixed reference inside the "morning" greeting bucket.
var MorningTime = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

// EveningTime is a fixed reference inside the "evening" greeting bucket.
var EveningTime = time.Date(2025, 1, 1, 20, 15, 0, 0, time.UTC)

// SessionID generates deterministic session ids in UUID format:
// 00000001-0000-4000-8000-000000000001, 00000002-..., and so on.
func SessionID() string {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter++
	return fmt.Sprintf("%08d-0000-4000-8000-%012d", idCounter, idCounter)
}
