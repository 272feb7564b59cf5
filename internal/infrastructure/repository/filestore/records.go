package filestore

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/dateutil"
)

// Snapshot documents use the same field names as the public API so files
// stay readable and hand-editable.

type sportRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	MaxPlayers int    `json:"maxPlayers"`
}

type playerRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Number   string `json:"number,omitempty"`
}

type teamRecord struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Grade     string         `json:"grade"`
	SportID   int64          `json:"sportId"`
	Captain   string         `json:"captain,omitempty"`
	Coach     string         `json:"coach,omitempty"`
	Players   []playerRecord `json:"players"`
	CreatedAt time.Time      `json:"createdAt"`
}

type tournamentRecord struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	SportID         int64     `json:"sportId"`
	Description     string    `json:"description,omitempty"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate,omitempty"`
	MaxTeams        int       `json:"maxTeams"`
	Status          string    `json:"status"`
	RegisteredTeams []int64   `json:"registeredTeams"`
	CreatedAt       time.Time `json:"createdAt"`
}

type matchRecord struct {
	ID           int64     `json:"id"`
	TournamentID int64     `json:"tournamentId"`
	Team1ID      int64     `json:"team1Id"`
	Team2ID      int64     `json:"team2Id"`
	Date         string    `json:"date"`
	Time         string    `json:"time,omitempty"`
	Location     string    `json:"location,omitempty"`
	Round        string    `json:"round,omitempty"`
	Status       string    `json:"status"`
	Score1       *int      `json:"score1"`
	Score2       *int      `json:"score2"`
	CreatedAt    time.Time `json:"createdAt"`
}

type actionRecord struct {
	ID           int64     `json:"id"`
	TournamentID int64     `json:"tournamentId"`
	TeamID       int64     `json:"teamId"`
	PlayerName   string    `json:"playerName"`
	ActionType   string    `json:"actionType"`
	Reason       string    `json:"reason,omitempty"`
	MatchDate    string    `json:"matchDate,omitempty"`
	Referee      string    `json:"referee,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func sportRecords(items []sport.Sport) []sportRecord {
	out := make([]sportRecord, 0, len(items))
	for _, item := range items {
		out = append(out, sportRecord(item))
	}
	return out
}

func sportsFromRecords(rows []sportRecord) []sport.Sport {
	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, sport.Sport(row))
	}
	return out
}

func teamRecords(items []team.Team) []teamRecord {
	out := make([]teamRecord, 0, len(items))
	for _, item := range items {
		players := make([]playerRecord, 0, len(item.Players))
		for _, p := range item.Players {
			players = append(players, playerRecord(p))
		}
		out = append(out, teamRecord{
			ID:        item.ID,
			Name:      item.Name,
			Grade:     item.Grade,
			SportID:   item.SportID,
			Captain:   item.Captain,
			Coach:     item.Coach,
			Players:   players,
			CreatedAt: item.CreatedAt,
		})
	}
	return out
}

func teamsFromRecords(rows []teamRecord) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		players := make([]team.Player, 0, len(row.Players))
		for _, p := range row.Players {
			players = append(players, team.Player(p))
		}
		out = append(out, team.Team{
			ID:        row.ID,
			Name:      row.Name,
			Grade:     row.Grade,
			SportID:   row.SportID,
			Captain:   row.Captain,
			Coach:     row.Coach,
			Players:   players,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}

func tournamentRecords(items []tournament.Tournament) []tournamentRecord {
	out := make([]tournamentRecord, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentRecord{
			ID:              item.ID,
			Name:            item.Name,
			SportID:         item.SportID,
			Description:     item.Description,
			StartDate:       dateutil.Format(item.StartDate),
			EndDate:         dateutil.Format(item.EndDate),
			MaxTeams:        item.MaxTeams,
			Status:          string(item.Status),
			RegisteredTeams: append([]int64{}, item.RegisteredTeams...),
			CreatedAt:       item.CreatedAt,
		})
	}
	return out
}

func tournamentsFromRecords(rows []tournamentRecord) ([]tournament.Tournament, error) {
	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		start, err := dateutil.ParseOptional(row.StartDate)
		if err != nil {
			return nil, errors.Wrapf(err, "tournament %d start date", row.ID)
		}
		end, err := dateutil.ParseOptional(row.EndDate)
		if err != nil {
			return nil, errors.Wrapf(err, "tournament %d end date", row.ID)
		}
		out = append(out, tournament.Tournament{
			ID:              row.ID,
			Name:            row.Name,
			SportID:         row.SportID,
			Description:     row.Description,
			StartDate:       start,
			EndDate:         end,
			MaxTeams:        row.MaxTeams,
			Status:          tournament.Status(row.Status),
			RegisteredTeams: append([]int64(nil), row.RegisteredTeams...),
			CreatedAt:       row.CreatedAt,
		})
	}
	return out, nil
}

func matchRecords(items []match.Match) []matchRecord {
	out := make([]matchRecord, 0, len(items))
	for _, item := range items {
		out = append(out, matchRecord{
			ID:           item.ID,
			TournamentID: item.TournamentID,
			Team1ID:      item.Team1ID,
			Team2ID:      item.Team2ID,
			Date:         dateutil.Format(item.Date),
			Time:         item.Time,
			Location:     item.Location,
			Round:        item.Round,
			Status:       string(item.Status),
			Score1:       item.Score1,
			Score2:       item.Score2,
			CreatedAt:    item.CreatedAt,
		})
	}
	return out
}

func matchesFromRecords(rows []matchRecord) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		date, err := dateutil.ParseOptional(row.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "match %d date", row.ID)
		}
		out = append(out, match.Match{
			ID:           row.ID,
			TournamentID: row.TournamentID,
			Team1ID:      row.Team1ID,
			Team2ID:      row.Team2ID,
			Date:         date,
			Time:         row.Time,
			Location:     row.Location,
			Round:        row.Round,
			Status:       match.Status(row.Status),
			Score1:       row.Score1,
			Score2:       row.Score2,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

func actionRecords(items []discipline.Action) []actionRecord {
	out := make([]actionRecord, 0, len(items))
	for _, item := range items {
		out = append(out, actionRecord{
			ID:           item.ID,
			TournamentID: item.TournamentID,
			TeamID:       item.TeamID,
			PlayerName:   item.PlayerName,
			ActionType:   string(item.ActionType),
			Reason:       item.Reason,
			MatchDate:    dateutil.Format(item.MatchDate),
			Referee:      item.Referee,
			CreatedAt:    item.CreatedAt,
		})
	}
	return out
}

func actionsFromRecords(rows []actionRecord) ([]discipline.Action, error) {
	out := make([]discipline.Action, 0, len(rows))
	for _, row := range rows {
		date, err := dateutil.ParseOptional(row.MatchDate)
		if err != nil {
			return nil, errors.Wrapf(err, "disciplinary action %d match date", row.ID)
		}
		out = append(out, discipline.Action{
			ID:           row.ID,
			TournamentID: row.TournamentID,
			TeamID:       row.TeamID,
			PlayerName:   row.PlayerName,
			ActionType:   discipline.ActionType(row.ActionType),
			Reason:       row.Reason,
			MatchDate:    date,
			Referee:      row.Referee,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}
