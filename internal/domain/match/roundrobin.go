package match

import (
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

const (
	GroupStageRound    = "Fase de Grupos"
	RoundOf16          = "Octavos de Final"
	QuarterFinalRound  = "Cuartos de Final"
	SemiFinalRound     = "Semifinal"
	FinalRound         = "Final"
	DefaultKickoffTime = "14:00"
	DefaultLocation    = "Cancha Principal"
)

// Rounds lists the round labels offered when scheduling by hand.
var Rounds = []string{GroupStageRound, RoundOf16, QuarterFinalRound, SemiFinalRound, FinalRound}

// GenerateRoundRobin pairs every team of the tournament sport with every
// other one exactly once. The k-th generated match is dated k days after
// the tournament start. Inputs are not modified.
func GenerateRoundRobin(t tournament.Tournament, teams []team.Team) ([]Match, error) {
	eligible := team.FilterBySport(teams, t.SportID)
	if len(eligible) < 2 {
		return nil, errors.Wrapf(ErrInsufficientTeams, "tournament %d has %d eligible teams", t.ID, len(eligible))
	}

	n := len(eligible)
	out := make([]Match, 0, n*(n-1)/2)
	date := t.StartDate
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Match{
				TournamentID: t.ID,
				Team1ID:      eligible[i].ID,
				Team2ID:      eligible[j].ID,
				Date:         date,
				Time:         DefaultKickoffTime,
				Location:     DefaultLocation,
				Round:        GroupStageRound,
				Status:       StatusScheduled,
			})
			date = date.AddDate(0, 0, 1)
		}
	}

	return out, nil
}
