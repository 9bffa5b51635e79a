package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	SearchesPerformed int64
	ResultsReturned   int64
	ResolverFailures  int64
	ResolverCacheHits int64
	EmptySearches     int64

	// Timings
	LastSearchTime    time.Duration
	AverageSearchTime time.Duration
	TotalSearchTime   time.Duration
	SearchCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementSearches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchesPerformed++
}

func (m *Metrics) AddResultsReturned(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultsReturned += int64(n)
	if n == 0 {
		m.EmptySearches++
	}
}

func (m *Metrics) IncrementResolverFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResolverFailures++
}

func (m *Metrics) IncrementResolverCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResolverCacheHits++
}

func (m *Metrics) RecordSearchTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastSearchTime = duration
	m.TotalSearchTime += duration
	m.SearchCount++

	if m.SearchCount > 0 {
		m.AverageSearchTime = m.TotalSearchTime / time.Duration(m.SearchCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"searches_performed":     m.SearchesPerformed,
		"results_returned":       m.ResultsReturned,
		"empty_searches":         m.EmptySearches,
		"resolver_failures":      m.ResolverFailures,
		"resolver_cache_hits":    m.ResolverCacheHits,
		"last_search_time_ms":    m.LastSearchTime.Milliseconds(),
		"average_search_time_ms": m.AverageSearchTime.Milliseconds(),
		"last_run_time":          m.LastRunTime.Format(time.RFC3339),
		"last_error_time":        m.LastErrorTime.Format(time.RFC3339),
		"last_error":             m.LastError,
		"is_healthy":             m.IsHealthy,
	}
}
