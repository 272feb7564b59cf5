package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	sportmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/sport"
	teammock "github.com/riskibarqy/school-tournament/internal/mocks/domain/team"
	tournamentmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/tournament"
)

func TestSportService_CreateValidatesInput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.sportService.Create(ctx, SportInput{Name: "Ajedrez", Icon: "♟", MaxPlayers: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero max players, got %v", err)
	}

	created, err := env.sportService.Create(ctx, SportInput{Name: "  Ajedrez ", Icon: "♟", MaxPlayers: 1})
	if err != nil {
		t.Fatalf("create sport: %v", err)
	}
	if created.ID != 6 || created.Name != "Ajedrez" {
		t.Fatalf("unexpected sport: %+v", created)
	}
}

func TestSportService_DeleteRejectsSportInUse(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	env.mustTeam(t, "Tigres", 1)

	if err := env.sportService.Delete(ctx, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := env.sportService.Delete(ctx, 5); err != nil {
		t.Fatalf("delete unused sport: %v", err)
	}
	if _, err := env.sportService.Get(ctx, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSportService_UpdateMissingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sportRepo := sportmock.NewRepository(t)
	service := NewSportService(sportRepo, teammock.NewRepository(t), tournamentmock.NewRepository(t))

	sportRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(42)).
		Return(sport.Sport{}, false, nil).
		Once()

	_, err := service.Update(ctx, 42, SportInput{Name: "x", Icon: "x", MaxPlayers: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
