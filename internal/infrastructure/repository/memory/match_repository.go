package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
	seq   *id.Sequence
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	seq := id.NewSequence(0)
	for _, item := range items {
		seq.Observe(item.ID)
	}

	return &MatchRepository{items: append([]match.Match(nil), items...), seq: seq}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]match.Match(nil), r.items...), nil
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.items {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == matchID {
			return item, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.seq.Next()
	r.items = append(r.items, item)
	return item, nil
}

func (r *MatchRepository) AppendBatch(_ context.Context, items []match.Match) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		item.ID = r.seq.Next()
		out = append(out, item)
	}
	r.items = append(r.items, out...)

	return append([]match.Match(nil), out...), nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == item.ID {
			r.items[idx] = item
			return nil
		}
	}

	return fmt.Errorf("match %d not found", item.ID)
}

func (r *MatchRepository) Delete(_ context.Context, matchID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == matchID {
			r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("match %d not found", matchID)
}

func (r *MatchRepository) DeleteByTournament(_ context.Context, tournamentID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(item match.Match) bool {
		return item.TournamentID == tournamentID
	})
	return before - len(r.items), nil
}

// Restore replaces the stored matches with items. Allocated ids are not
// handed out again.
func (r *MatchRepository) Restore(items []match.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]match.Match(nil), items...)
}
