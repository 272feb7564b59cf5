package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
)

type DisciplineRepository struct {
	mu    sync.RWMutex
	items []discipline.Action
	seq   *id.Sequence
}

func NewDisciplineRepository(items []discipline.Action) *DisciplineRepository {
	seq := id.NewSequence(0)
	for _, item := range items {
		seq.Observe(item.ID)
	}

	return &DisciplineRepository{items: append([]discipline.Action(nil), items...), seq: seq}
}

func (r *DisciplineRepository) List(_ context.Context) ([]discipline.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]discipline.Action(nil), r.items...), nil
}

func (r *DisciplineRepository) ListByTournament(_ context.Context, tournamentID int64) ([]discipline.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return discipline.FilterByTournament(r.items, tournamentID), nil
}

func (r *DisciplineRepository) GetByID(_ context.Context, actionID int64) (discipline.Action, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == actionID {
			return item, true, nil
		}
	}

	return discipline.Action{}, false, nil
}

func (r *DisciplineRepository) Create(_ context.Context, item discipline.Action) (discipline.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.seq.Next()
	r.items = append(r.items, item)
	return item, nil
}

func (r *DisciplineRepository) Delete(_ context.Context, actionID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == actionID {
			r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("disciplinary action %d not found", actionID)
}

func (r *DisciplineRepository) DeleteByTournament(_ context.Context, tournamentID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(item discipline.Action) bool {
		return item.TournamentID == tournamentID
	})
	return before - len(r.items), nil
}

// Restore replaces the stored actions with items. Allocated ids are not
// handed out again.
func (r *DisciplineRepository) Restore(items []discipline.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]discipline.Action(nil), items...)
}
