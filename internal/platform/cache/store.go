package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a process-local TTL cache. Concurrent loads of the same key are
// collapsed into one loader call. A load that overlaps a Delete or
// DeletePrefix of its key returns its value to the callers that waited for
// it but never stores it.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   clockwork.Clock
	flight  singleflight.Group

	// gens counts deletes per key and epoch counts prefix deletes.
	gens    map[string]uint64
	epoch   uint64
	loading map[string]int
}

func NewStore(ttl time.Duration) *Store {
	return NewStoreWithClock(ttl, clockwork.NewRealClock())
}

func NewStoreWithClock(ttl time.Duration, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		entries: make(map[string]entry),
		gens:    make(map[string]uint64),
		loading: make(map[string]int),
		ttl:     ttl,
		clock:   clock,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if s == nil || key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.clock.Now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	s.setLocked(key, value)
	s.mu.Unlock()
}

func (s *Store) setLocked(key string, value any) {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.clock.Now().Add(s.ttl)
	}
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
}

func (s *Store) Delete(_ context.Context, key string) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.gens[key]++
	s.mu.Unlock()
	s.flight.Forget(key)
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if s == nil || prefix == "" {
		return
	}

	s.mu.Lock()
	s.epoch++
	forget := make([]string, 0)
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			forget = append(forget, key)
		}
	}
	for key := range s.loading {
		if strings.HasPrefix(key, prefix) {
			forget = append(forget, key)
		}
	}
	s.mu.Unlock()

	for _, key := range forget {
		s.flight.Forget(key)
	}
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		gen, epoch := s.beginLoad(key)
		loaded, loadErr := loader(ctx)
		s.endLoad(key, gen, epoch, loaded, loadErr == nil)
		if loadErr != nil {
			return nil, loadErr
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) beginLoad(key string) (uint64, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading[key]++
	return s.gens[key], s.epoch
}

// endLoad stores value only when no delete touched key since beginLoad.
func (s *Store) endLoad(key string, gen, epoch uint64, value any, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading[key]--; s.loading[key] <= 0 {
		delete(s.loading, key)
	}
	if ok && s.gens[key] == gen && s.epoch == epoch {
		s.setLocked(key, value)
	}
}
