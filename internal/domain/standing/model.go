package standing

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

const (
	PointsPerWin  = 3
	PointsPerDraw = 1
)

// Row represents a standings table row for one team. Rows are derived on
// demand and never persisted.
type Row struct {
	Position       int
	Team           team.Team
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Calculate ranks the teams of the tournament sport by its completed
// matches. Order is points, goal difference and goals for, all descending,
// then team id ascending.
func Calculate(t tournament.Tournament, teams []team.Team, matches []match.Match) []Row {
	eligible := team.FilterBySport(teams, t.SportID)
	if len(eligible) == 0 {
		return []Row{}
	}
	completed := match.Completed(matches, t.ID)

	rows := make([]Row, 0, len(eligible))
	for _, item := range eligible {
		row := Row{Team: item}
		for _, m := range completed {
			scored, conceded, ok := m.ScoreFor(item.ID)
			if !ok {
				continue
			}
			row.Played++
			row.GoalsFor += scored
			row.GoalsAgainst += conceded
			switch {
			case scored > conceded:
				row.Wins++
			case scored == conceded:
				row.Draws++
			default:
				row.Losses++
			}
		}
		row.Points = row.Wins*PointsPerWin + row.Draws*PointsPerDraw
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, compareRows)
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows
}

func compareRows(a, b Row) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
		return c
	}
	return cmp.Compare(a.Team.ID, b.Team.ID)
}

// Leader is the first row of a tournament table.
type Leader struct {
	Tournament tournament.Tournament
	Row        Row
}
