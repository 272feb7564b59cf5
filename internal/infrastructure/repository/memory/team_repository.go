package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
	seq   *id.Sequence
}

func NewTeamRepository(items []team.Team) *TeamRepository {
	seq := id.NewSequence(0)
	stored := make([]team.Team, 0, len(items))
	for _, item := range items {
		seq.Observe(item.ID)
		stored = append(stored, item.Clone())
	}

	return &TeamRepository{items: stored, seq: seq}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (r *TeamRepository) ListBySport(_ context.Context, sportID int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.items {
		if item.SportID == sportID {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == teamID {
			return item.Clone(), true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item = item.Clone()
	item.ID = r.seq.Next()
	r.items = append(r.items, item)
	return item.Clone(), nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == item.ID {
			r.items[idx] = item.Clone()
			return nil
		}
	}

	return fmt.Errorf("team %d not found", item.ID)
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == teamID {
			r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("team %d not found", teamID)
}

// Restore replaces the stored teams with items. Allocated ids are not
// handed out again.
func (r *TeamRepository) Restore(items []team.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]team.Team(nil), items...)
}
