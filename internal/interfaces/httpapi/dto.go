package httpapi

import (
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/standing"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/domain/user"
	"github.com/riskibarqy/school-tournament/internal/platform/dateutil"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin viewer"`
}

type sportRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Icon       string `json:"icon" validate:"required,max=16"`
	MaxPlayers int    `json:"maxPlayers" validate:"required,min=1"`
}

type playerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position string `json:"position" validate:"max=50"`
	Number   string `json:"number" validate:"max=10"`
}

type teamRequest struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Grade   string          `json:"grade" validate:"required,max=50"`
	SportID int64           `json:"sportId" validate:"required,gt=0"`
	Captain string          `json:"captain" validate:"max=100"`
	Coach   string          `json:"coach" validate:"max=100"`
	Players []playerRequest `json:"players" validate:"dive"`
}

type tournamentRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	SportID     int64  `json:"sportId" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=1000"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	MaxTeams    int    `json:"maxTeams" validate:"gte=0"`
}

type tournamentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming active completed"`
}

type scheduleMatchRequest struct {
	TournamentID int64  `json:"tournamentId" validate:"required,gt=0"`
	Team1ID      int64  `json:"team1Id" validate:"required,gt=0"`
	Team2ID      int64  `json:"team2Id" validate:"required,gt=0,nefield=Team1ID"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"omitempty,datetime=15:04"`
	Location     string `json:"location" validate:"max=150"`
	Round        string `json:"round" validate:"max=50"`
}

type scoreRequest struct {
	Score1 *int `json:"score1" validate:"required,gte=0"`
	Score2 *int `json:"score2" validate:"required,gte=0"`
}

type matchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled live"`
}

type disciplineRequest struct {
	TournamentID int64  `json:"tournamentId" validate:"required,gt=0"`
	TeamID       int64  `json:"teamId" validate:"required,gt=0"`
	PlayerName   string `json:"playerName" validate:"required,max=100"`
	ActionType   string `json:"actionType" validate:"required,oneof=warning yellow_card red_card suspension"`
	Reason       string `json:"reason" validate:"max=500"`
	MatchDate    string `json:"matchDate" validate:"omitempty,datetime=2006-01-02"`
	Referee      string `json:"referee" validate:"max=100"`
}

type sessionDTO struct {
	Token     string `json:"token,omitempty"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime"`
}

type sportDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	MaxPlayers int    `json:"maxPlayers"`
}

type playerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   string `json:"number"`
}

type teamDTO struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Grade     string      `json:"grade"`
	SportID   int64       `json:"sportId"`
	Captain   string      `json:"captain"`
	Coach     string      `json:"coach"`
	Players   []playerDTO `json:"players"`
	CreatedAt string      `json:"createdAt"`
}

type tournamentDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	SportID         int64   `json:"sportId"`
	Description     string  `json:"description"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate,omitempty"`
	MaxTeams        int     `json:"maxTeams"`
	Status          string  `json:"status"`
	RegisteredTeams []int64 `json:"registeredTeams"`
	CreatedAt       string  `json:"createdAt"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournamentId"`
	Team1ID      int64  `json:"team1Id"`
	Team2ID      int64  `json:"team2Id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Round        string `json:"round"`
	Status       string `json:"status"`
	Score1       *int   `json:"score1"`
	Score2       *int   `json:"score2"`
	CreatedAt    string `json:"createdAt"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	Grade          string `json:"grade"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type leaderDTO struct {
	TournamentID   int64       `json:"tournamentId"`
	TournamentName string      `json:"tournamentName"`
	SportID        int64       `json:"sportId"`
	Leader         standingDTO `json:"leader"`
}

type disciplineDTO struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournamentId"`
	TeamID       int64  `json:"teamId"`
	PlayerName   string `json:"playerName"`
	ActionType   string `json:"actionType"`
	Reason       string `json:"reason"`
	MatchDate    string `json:"matchDate,omitempty"`
	Referee      string `json:"referee"`
	CreatedAt    string `json:"createdAt"`
}

type playerSummaryDTO struct {
	PlayerName  string `json:"playerName"`
	TeamID      int64  `json:"teamId"`
	Warnings    int    `json:"warnings"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
	Suspensions int    `json:"suspensions"`
	Total       int    `json:"total"`
}

type dashboardDTO struct {
	Sports              int `json:"sports"`
	Tournaments         int `json:"tournaments"`
	ActiveTournaments   int `json:"activeTournaments"`
	Teams               int `json:"teams"`
	CompletedMatches    int `json:"completedMatches"`
	ScheduledMatches    int `json:"scheduledMatches"`
	DisciplinaryActions int `json:"disciplinaryActions"`
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func sessionToDTO(s user.Session, withToken bool) sessionDTO {
	out := sessionDTO{
		Username:  s.Username,
		Role:      string(s.Role),
		LoginTime: formatTimestamp(s.LoginTime),
	}
	if withToken {
		out.Token = s.Token
	}
	return out
}

func sportToDTO(v sport.Sport) sportDTO {
	return sportDTO{ID: v.ID, Name: v.Name, Icon: v.Icon, MaxPlayers: v.MaxPlayers}
}

func teamToDTO(v team.Team) teamDTO {
	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerDTO{ID: p.ID, Name: p.Name, Position: p.Position, Number: p.Number})
	}
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		Grade:     v.Grade,
		SportID:   v.SportID,
		Captain:   v.Captain,
		Coach:     v.Coach,
		Players:   players,
		CreatedAt: formatTimestamp(v.CreatedAt),
	}
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	registered := append([]int64{}, v.RegisteredTeams...)
	return tournamentDTO{
		ID:              v.ID,
		Name:            v.Name,
		SportID:         v.SportID,
		Description:     v.Description,
		StartDate:       dateutil.Format(v.StartDate),
		EndDate:         dateutil.Format(v.EndDate),
		MaxTeams:        v.MaxTeams,
		Status:          string(v.Status),
		RegisteredTeams: registered,
		CreatedAt:       formatTimestamp(v.CreatedAt),
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		Team1ID:      v.Team1ID,
		Team2ID:      v.Team2ID,
		Date:         dateutil.Format(v.Date),
		Time:         v.Time,
		Location:     v.Location,
		Round:        v.Round,
		Status:       string(v.Status),
		Score1:       v.Score1,
		Score2:       v.Score2,
		CreatedAt:    formatTimestamp(v.CreatedAt),
	}
}

func standingToDTO(v standing.Row) standingDTO {
	return standingDTO{
		Position:       v.Position,
		TeamID:         v.Team.ID,
		TeamName:       v.Team.Name,
		Grade:          v.Team.Grade,
		Played:         v.Played,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
	}
}

func disciplineToDTO(v discipline.Action) disciplineDTO {
	return disciplineDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		TeamID:       v.TeamID,
		PlayerName:   v.PlayerName,
		ActionType:   string(v.ActionType),
		Reason:       v.Reason,
		MatchDate:    dateutil.Format(v.MatchDate),
		Referee:      v.Referee,
		CreatedAt:    formatTimestamp(v.CreatedAt),
	}
}

func playerSummaryToDTO(v discipline.PlayerSummary) playerSummaryDTO {
	return playerSummaryDTO{
		PlayerName:  v.PlayerName,
		TeamID:      v.TeamID,
		Warnings:    v.Warnings,
		YellowCards: v.YellowCards,
		RedCards:    v.RedCards,
		Suspensions: v.Suspensions,
		Total:       v.Total,
	}
}

func dashboardToDTO(v usecase.Overview) dashboardDTO {
	return dashboardDTO{
		Sports:              v.Sports,
		Tournaments:         v.Tournaments,
		ActiveTournaments:   v.ActiveTournaments,
		Teams:               v.Teams,
		CompletedMatches:    v.CompletedMatches,
		ScheduledMatches:    v.ScheduledMatches,
		DisciplinaryActions: v.DisciplinaryCount,
	}
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
