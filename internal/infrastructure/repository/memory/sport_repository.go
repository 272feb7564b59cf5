package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
)

type SportRepository struct {
	mu    sync.RWMutex
	items []sport.Sport
	seq   *id.Sequence
}

func NewSportRepository(items []sport.Sport) *SportRepository {
	seq := id.NewSequence(0)
	for _, item := range items {
		seq.Observe(item.ID)
	}

	return &SportRepository{items: append([]sport.Sport(nil), items...), seq: seq}
}

func (r *SportRepository) List(_ context.Context) ([]sport.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]sport.Sport(nil), r.items...), nil
}

func (r *SportRepository) GetByID(_ context.Context, sportID int64) (sport.Sport, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == sportID {
			return item, true, nil
		}
	}

	return sport.Sport{}, false, nil
}

func (r *SportRepository) Create(_ context.Context, item sport.Sport) (sport.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.seq.Next()
	r.items = append(r.items, item)
	return item, nil
}

func (r *SportRepository) Update(_ context.Context, item sport.Sport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == item.ID {
			r.items[idx] = item
			return nil
		}
	}

	return fmt.Errorf("sport %d not found", item.ID)
}

func (r *SportRepository) Delete(_ context.Context, sportID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == sportID {
			r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("sport %d not found", sportID)
}

// Restore replaces the stored sports with items. Allocated ids are not
// handed out again.
func (r *SportRepository) Restore(items []sport.Sport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]sport.Sport(nil), items...)
}
