// Package ratelimit caps how many outbound resolver fetches the skill may
// perform per window, so a burst of searches cannot hammer the news sites.
package ratelimit

import (
	"sync"
	"time"
)

type Budget struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	count   int
	denied  int
	resetAt time.Time
}

// NewBudget allows up to max fetches per window. max <= 0 disables the cap.
func NewBudget(max int, window time.Duration) *Budget {
	return &Budget{
		max:     max,
		window:  window,
		resetAt: time.Now().Add(window),
	}
}

// Allow reports whether one more fetch fits in the current window and
// consumes a slot if it does.
func (b *Budget) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.max > 0 && b.count >= b.max {
		b.denied++
		return false
	}

	b.count++
	return true
}

func (b *Budget) checkReset() {
	if time.Now().After(b.resetAt) {
		b.count = 0
		b.resetAt = time.Now().Add(b.window)
	}
}

// Stats returns usage counters for the monitoring endpoint.
func (b *Budget) Stats() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return map[string]int{
		"used":   b.count,
		"max":    b.max,
		"denied": b.denied,
	}
}
