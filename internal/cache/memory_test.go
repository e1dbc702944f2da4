package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache[string]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache[string]()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	_, err := c.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_NonPositiveTTLDeletes(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "k", 2, 0))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_SweepDropsExpired(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "old", 1, time.Second))
	now = now.Add(time.Minute)

	for i := 0; i < sweepEvery; i++ {
		require.NoError(t, c.Set(ctx, "fresh", i, time.Hour))
	}
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_DeleteAndClose(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Delete(ctx, "a"))
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Close())
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, c.Health(ctx))
}

func TestMemoryCache_GetWithFetch(t *testing.T) {
	c := NewMemoryCache[string]()
	ctx := context.Background()
	var calls atomic.Int32

	fetch := func(_ context.Context, key string) (string, error) {
		calls.Add(1)
		return "value-" + key, nil
	}

	got, err := c.GetWithFetch(ctx, "x", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "value-x", got)

	got, err = c.GetWithFetch(ctx, "x", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "value-x", got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMemoryCache_GetWithFetchErrorNotCached(t *testing.T) {
	c := NewMemoryCache[string]()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := c.GetWithFetch(ctx, "x", time.Minute, func(context.Context, string) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = c.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_GetWithFetchSharesInflight(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(context.Context, string) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetWithFetch(ctx, "shared", time.Minute, fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let the goroutines pile up on the first fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}

func TestMemoryCache_GetWithFetchPanicReleasesKey(t *testing.T) {
	c := NewMemoryCache[string]()
	var calls atomic.Int32

	fetch := func(context.Context, string) (string, error) {
		if calls.Add(1) == 1 {
			panic("driver crashed")
		}
		return "recovered", nil
	}

	_, err := c.GetWithFetch(context.Background(), "x", time.Minute, fetch)
	require.ErrorIs(t, err, ErrFetchPanic)
	assert.Contains(t, err.Error(), "driver crashed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	got, err := c.GetWithFetch(ctx, "x", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMemoryCache_GetWithFetchWaiterHonoursContext(t *testing.T) {
	c := NewMemoryCache[string]()
	release := make(chan struct{})
	defer close(release)

	started := make(chan struct{})
	go func() {
		_, _ = c.GetWithFetch(context.Background(), "slow", time.Minute,
			func(context.Context, string) (string, error) {
				close(started)
				<-release
				return "late", nil
			})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.GetWithFetch(ctx, "slow", time.Minute, func(context.Context, string) (string, error) {
		return "unused", nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
