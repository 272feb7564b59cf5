package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
)

type TournamentRepository struct {
	mu    sync.RWMutex
	items []tournament.Tournament
	seq   *id.Sequence
}

func NewTournamentRepository(items []tournament.Tournament) *TournamentRepository {
	seq := id.NewSequence(0)
	stored := make([]tournament.Tournament, 0, len(items))
	for _, item := range items {
		seq.Observe(item.ID)
		stored = append(stored, item.Clone())
	}

	return &TournamentRepository{items: stored, seq: seq}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == tournamentID {
			return item.Clone(), true, nil
		}
	}

	return tournament.Tournament{}, false, nil
}

func (r *TournamentRepository) Create(_ context.Context, item tournament.Tournament) (tournament.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item = item.Clone()
	item.ID = r.seq.Next()
	r.items = append(r.items, item)
	return item.Clone(), nil
}

func (r *TournamentRepository) Update(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == item.ID {
			r.items[idx] = item.Clone()
			return nil
		}
	}

	return fmt.Errorf("tournament %d not found", item.ID)
}

func (r *TournamentRepository) Delete(_ context.Context, tournamentID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == tournamentID {
			r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("tournament %d not found", tournamentID)
}

// Restore replaces the stored tournaments with items. Allocated ids are not
// handed out again.
func (r *TournamentRepository) Restore(items []tournament.Tournament) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]tournament.Tournament(nil), items...)
}
