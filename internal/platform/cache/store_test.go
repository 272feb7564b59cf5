package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 16
	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	results := make(chan any, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer done.Done()
			started.Done()
			v, err := store.GetOrLoad(context.Background(), "standings:1", loader)
			if err == nil {
				results <- v
			}
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()
	close(results)

	count := 0
	for v := range results {
		assert.Equal(t, "value", v)
		count++
	}
	assert.Equal(t, workers, count)
	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestStore_ExpiresWithClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStoreWithClock(30*time.Second, clock)
	ctx := context.Background()

	store.Set(ctx, "k", 1)
	v, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clock.Advance(31 * time.Second)
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "standings:1", "a")
	store.Set(ctx, "standings:2", "b")
	store.Set(ctx, "leaders", "c")

	store.DeletePrefix(ctx, "standings:")

	_, ok := store.Get(ctx, "standings:1")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "standings:2")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "leaders")
	assert.True(t, ok)
}

func TestStore_GetOrLoad_ErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")
	_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestStore_NilStoreCallsLoader(t *testing.T) {
	t.Parallel()

	var store *Store
	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestStore_GetOrLoad_DeleteDuringLoadDropsStaleValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan any, 1)

	go func() {
		v, _ := store.GetOrLoad(ctx, "standings:1", func(context.Context) (any, error) {
			close(started)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-started
	store.Delete(ctx, "standings:1")
	close(release)
	assert.Equal(t, "stale", <-done)

	_, ok := store.Get(ctx, "standings:1")
	assert.False(t, ok)

	var calls atomic.Int32
	v, err := store.GetOrLoad(ctx, "standings:1", func(context.Context) (any, error) {
		calls.Add(1)
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.EqualValues(t, 1, calls.Load())
}

func TestStore_GetOrLoad_DeletePrefixDuringLoadStartsNewLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = store.GetOrLoad(ctx, "team:list", func(context.Context) (any, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()

	<-started
	store.DeletePrefix(ctx, "team:")

	v, err := store.GetOrLoad(ctx, "team:list", func(context.Context) (any, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)

	close(release)
	<-done

	cached, ok := store.Get(ctx, "team:list")
	require.True(t, ok)
	assert.Equal(t, "fresh", cached)
}

func TestStore_GetOrLoad_StoresWhenNoDeleteOverlaps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Delete(ctx, "standings:2")

	_, err := store.GetOrLoad(ctx, "standings:2", func(context.Context) (any, error) {
		return "value", nil
	})
	require.NoError(t, err)

	cached, ok := store.Get(ctx, "standings:2")
	require.True(t, ok)
	assert.Equal(t, "value", cached)
}
