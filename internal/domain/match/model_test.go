package match

import (
	"errors"
	"testing"
	"time"
)

func TestMatchValidate(t *testing.T) {
	base := Match{
		TournamentID: 1,
		Team1ID:      1,
		Team2ID:      2,
		Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       StatusScheduled,
	}

	tests := []struct {
		name      string
		mutate    func(*Match)
		targetErr error
		wantErr   bool
	}{
		{name: "scheduled without scores", mutate: func(_ *Match) {}},
		{
			name: "completed with scores",
			mutate: func(m *Match) {
				m.Status = StatusCompleted
				m.Score1, m.Score2 = Score(2), Score(0)
			},
		},
		{name: "same team", mutate: func(m *Match) { m.Team2ID = 1 }, targetErr: ErrSameTeam},
		{name: "one score only", mutate: func(m *Match) { m.Status = StatusCompleted; m.Score1 = Score(1) }, targetErr: ErrScoreMismatch},
		{name: "completed without scores", mutate: func(m *Match) { m.Status = StatusCompleted }, targetErr: ErrScoreMismatch},
		{name: "live with scores", mutate: func(m *Match) { m.Status = StatusLive; m.Score1, m.Score2 = Score(0), Score(0) }, targetErr: ErrScoreMismatch},
		{
			name: "negative score",
			mutate: func(m *Match) {
				m.Status = StatusCompleted
				m.Score1, m.Score2 = Score(-1), Score(0)
			},
			targetErr: ErrNegativeScore,
		},
		{name: "missing tournament", mutate: func(m *Match) { m.TournamentID = 0 }, wantErr: true},
		{name: "missing date", mutate: func(m *Match) { m.Date = time.Time{} }, wantErr: true},
		{name: "bad status", mutate: func(m *Match) { m.Status = "paused" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := base
			tc.mutate(&item)
			err := item.Validate()
			switch {
			case tc.targetErr != nil:
				if !errors.Is(err, tc.targetErr) {
					t.Fatalf("expected %v, got %v", tc.targetErr, err)
				}
			case tc.wantErr:
				if err == nil {
					t.Fatalf("expected error")
				}
			default:
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestMatchScoreFor(t *testing.T) {
	item := Match{Team1ID: 4, Team2ID: 6, Score1: Score(3), Score2: Score(1)}

	if scored, conceded, ok := item.ScoreFor(4); !ok || scored != 3 || conceded != 1 {
		t.Fatalf("unexpected home score: %d %d %v", scored, conceded, ok)
	}
	if scored, conceded, ok := item.ScoreFor(6); !ok || scored != 1 || conceded != 3 {
		t.Fatalf("unexpected away score: %d %d %v", scored, conceded, ok)
	}
	if _, _, ok := item.ScoreFor(5); ok {
		t.Fatalf("team 5 did not play")
	}
	if _, _, ok := (Match{Team1ID: 4, Team2ID: 6}).ScoreFor(4); ok {
		t.Fatalf("match without result has no score")
	}
	if !item.Involves(6) || item.Involves(5) {
		t.Fatalf("unexpected Involves result")
	}
}

func TestCompleted(t *testing.T) {
	matches := []Match{
		{ID: 1, TournamentID: 1, Status: StatusCompleted},
		{ID: 2, TournamentID: 1, Status: StatusScheduled},
		{ID: 3, TournamentID: 2, Status: StatusCompleted},
		{ID: 4, TournamentID: 1, Status: StatusCompleted},
	}
	got := Completed(matches, 1)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("unexpected completed matches: %+v", got)
	}
}
