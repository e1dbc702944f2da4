package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-authgate/riskgate/internal/core"

	"golang.org/x/sync/singleflight"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// Compile-time interface check.
var _ core.Cache[struct{}] = (*MemoryCache[struct{}])(nil)

// MemoryCache is a process-local TTL cache. Expired entries are dropped
// lazily on read and swept on write once the map grows past sweepEvery.
type MemoryCache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	group   singleflight.Group
	writes  int
	now     func() time.Time
}

const sweepEvery = 256

// NewMemoryCache creates a new memory cache instance.
func NewMemoryCache[T any]() *MemoryCache[T] {
	return &MemoryCache[T]{
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get returns ErrCacheMiss for absent or expired keys.
func (m *MemoryCache[T]) Get(_ context.Context, key string) (T, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || e.expired(m.now()) {
		var zero T
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

// Set stores a value with TTL. A non-positive TTL deletes the key.
func (m *MemoryCache[T]) Set(_ context.Context, key string, value T, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		delete(m.entries, key)
		return nil
	}

	now := m.now()
	m.entries[key] = entry[T]{value: value, expiresAt: now.Add(ttl)}

	m.writes++
	if m.writes%sweepEvery == 0 {
		for k, e := range m.entries {
			if e.expired(now) {
				delete(m.entries, k)
			}
		}
	}
	return nil
}

// Delete removes a key from cache.
func (m *MemoryCache[T]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryCache[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close drops every entry.
func (m *MemoryCache[T]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry[T])
	return nil
}

// Health always succeeds for the in-process cache.
func (m *MemoryCache[T]) Health(context.Context) error {
	return nil
}

// GetWithFetch retrieves a value using the cache-aside pattern.
// Concurrent misses for the same key wait for a single fetchFunc call.
// Fetch errors are returned to every waiter and never cached; a panicking
// fetchFunc is reported as ErrFetchPanic.
func (m *MemoryCache[T]) GetWithFetch(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetchFunc func(ctx context.Context, key string) (T, error),
) (T, error) {
	var zero T
	if value, err := m.Get(ctx, key); err == nil {
		return value, nil
	}

	ch := m.group.DoChan(key, func() (v any, err error) {
		// DoChan re-raises panics on a new goroutine, which would take the
		// process down.
		defer func() {
			if r := recover(); r != nil {
				v, err = nil, fmt.Errorf("%w: %v", ErrFetchPanic, r)
			}
		}()

		// A fetch that finished between Get and DoChan already filled the entry.
		if cached, getErr := m.Get(ctx, key); getErr == nil {
			return cached, nil
		}
		value, fetchErr := fetchFunc(ctx, key)
		if fetchErr != nil {
			return nil, fetchErr
		}
		_ = m.Set(ctx, key, value, ttl)
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
