package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	basecache "github.com/riskibarqy/school-tournament/internal/platform/cache"
)

const (
	sportPrefix = "sport:"
	teamPrefix  = "team:"
)

// SportRepository caches catalog reads. Any write drops every sport entry.
type SportRepository struct {
	next  sport.Repository
	cache *basecache.Store
}

func NewSportRepository(next sport.Repository, cache *basecache.Store) *SportRepository {
	return &SportRepository{next: next, cache: cache}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	v, err := r.cache.GetOrLoad(ctx, sportPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]sport.Sport(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]sport.Sport)
	return append([]sport.Sport(nil), items...), nil
}

func (r *SportRepository) GetByID(ctx context.Context, sportID int64) (sport.Sport, bool, error) {
	key := sportPrefix + "id:" + strconv.FormatInt(sportID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, sportID)
		if err != nil {
			return nil, err
		}
		return cachedSportByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return sport.Sport{}, false, err
	}

	cached, _ := v.(cachedSportByID)
	return cached.value, cached.exists, nil
}

func (r *SportRepository) Create(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	defer r.cache.DeletePrefix(ctx, sportPrefix)
	return r.next.Create(ctx, item)
}

func (r *SportRepository) Update(ctx context.Context, item sport.Sport) error {
	defer r.cache.DeletePrefix(ctx, sportPrefix)
	return r.next.Update(ctx, item)
}

func (r *SportRepository) Delete(ctx context.Context, sportID int64) error {
	defer r.cache.DeletePrefix(ctx, sportPrefix)
	return r.next.Delete(ctx, sportID)
}

type cachedSportByID struct {
	value  sport.Sport
	exists bool
}

// TeamRepository caches team reads. Any write drops every team entry.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.list(ctx, teamPrefix+"list", r.next.List)
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportID int64) ([]team.Team, error) {
	return r.list(ctx, teamPrefix+"sport:"+strconv.FormatInt(sportID, 10), func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListBySport(ctx, sportID)
	})
}

func (r *TeamRepository) list(ctx context.Context, key string, load func(context.Context) ([]team.Team, error)) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cloneTeams(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return cloneTeams(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := teamPrefix + "id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value.Clone(), cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Create(ctx, item)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Update(ctx, item)
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Delete(ctx, teamID)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func cloneTeams(items []team.Team) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
