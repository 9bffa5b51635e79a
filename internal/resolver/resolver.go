// Package resolver fetches live stream URIs for the few catalog sources
// that cannot publish a stable URL. Each resolver is registered by name and
// looked up by the scorer when a candidate needs its stream resolved.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"newskill/internal/cache"
	"newskill/internal/metrics"
	"newskill/internal/ratelimit"
)

// ErrNoStream means the resolver ran without a transport error but found
// nothing playable.
var ErrNoStream = errors.New("no stream found")

// Func resolves one source's current stream URI.
type Func func(ctx context.Context) (string, error)

// Registry maps resolver names to functions and memoizes successful
// resolutions for a short TTL. Failures are never cached.
type Registry struct {
	mu     sync.RWMutex
	funcs  map[string]Func
	cache  *cache.Cache
	ttl    time.Duration
	budget *ratelimit.Budget
}

// NewRegistry builds a registry. cache and budget may be nil to disable
// memoization and the outbound fetch cap.
func NewRegistry(c *cache.Cache, ttl time.Duration, budget *ratelimit.Budget) *Registry {
	return &Registry{
		funcs:  make(map[string]Func),
		cache:  c,
		ttl:    ttl,
		budget: budget,
	}
}

func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Resolve runs the named resolver. Any error, including an unknown name or
// an exhausted fetch budget, is a resolution failure for the caller.
func (r *Registry) Resolve(ctx context.Context, name string) (string, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("no resolver registered for %q", name)
	}

	if r.cache != nil {
		if uri, hit := r.cache.Get(name); hit {
			metrics.Global.IncrementResolverCacheHits()
			return uri, nil
		}
	}

	if r.budget != nil && !r.budget.Allow() {
		return "", fmt.Errorf("fetch budget exhausted, skipping %q", name)
	}

	uri, err := fn(ctx)
	if err != nil {
		return "", err
	}
	if uri != "" && r.cache != nil {
		r.cache.Set(name, uri, r.ttl)
	}
	return uri, nil
}
