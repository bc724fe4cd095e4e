package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_PurgeExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 9, 1, 3, 0, 0, 0, time.UTC)
	store := NewStore(15 * time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "match:all", 1)
	now = now.Add(10 * time.Minute)
	store.Set(context.Background(), "training:J3", 2)
	now = now.Add(6 * time.Minute)

	if removed := store.PurgeExpired(context.Background()); removed != 1 {
		t.Fatalf("expected 1 purged entry, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", store.Len())
	}
	if _, ok := store.Get(context.Background(), "training:J3"); !ok {
		t.Fatalf("fresh entry must survive purge")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "match:all", 1)
	store.Set(context.Background(), "match:J3", 2)
	store.Set(context.Background(), "league:teams", 3)

	if removed := store.DeletePrefix(context.Background(), "match:"); removed != 2 {
		t.Fatalf("expected 2 removed entries, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", store.Len())
	}
}

func TestStore_GetOrLoad_ReportsHitsAndMisses(t *testing.T) {
	t.Parallel()

	obs := &countingObserver{}
	store := NewStore(time.Minute).WithObserver(obs)
	loader := func(context.Context) (any, error) { return "v", nil }

	_, _ = store.GetOrLoad(context.Background(), "league:teams", loader)
	_, _ = store.GetOrLoad(context.Background(), "league:teams", loader)

	if obs.misses.Load() != 1 || obs.hits.Load() != 1 {
		t.Fatalf("unexpected hits=%d misses=%d", obs.hits.Load(), obs.misses.Load())
	}
}

type countingObserver struct {
	hits   atomic.Int32
	misses atomic.Int32
}

func (o *countingObserver) CacheHit(string)  { o.hits.Add(1) }
func (o *countingObserver) CacheMiss(string) { o.misses.Add(1) }

var errUnexpectedValue = errors.New("unexpected loaded value")
