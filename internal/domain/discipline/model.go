package discipline

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

type ActionType string

const (
	ActionWarning    ActionType = "warning"
	ActionYellowCard ActionType = "yellow_card"
	ActionRedCard    ActionType = "red_card"
	ActionSuspension ActionType = "suspension"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionWarning, ActionYellowCard, ActionRedCard, ActionSuspension:
		return true
	default:
		return false
	}
}

// Action is one disciplinary record against a player of a team.
type Action struct {
	ID           int64
	TournamentID int64
	TeamID       int64
	PlayerName   string
	ActionType   ActionType
	Reason       string
	MatchDate    time.Time
	Referee      string
	CreatedAt    time.Time
}

func (a Action) Validate() error {
	if a.TournamentID <= 0 {
		return fmt.Errorf("disciplinary action tournament id is required")
	}
	if a.TeamID <= 0 {
		return fmt.Errorf("disciplinary action team id is required")
	}
	if a.PlayerName == "" {
		return fmt.Errorf("disciplinary action player name is required")
	}
	if !a.ActionType.Valid() {
		return fmt.Errorf("invalid disciplinary action type %q", a.ActionType)
	}

	return nil
}

// PlayerSummary aggregates the record of one player within one team.
type PlayerSummary struct {
	PlayerName  string
	TeamID      int64
	Warnings    int
	YellowCards int
	RedCards    int
	Suspensions int
	Total       int
}

// Severe counts the actions that remove a player from play.
func (s PlayerSummary) Severe() int {
	return s.RedCards + s.Suspensions
}

// Summarize groups actions by player and team, worst records first.
func Summarize(actions []Action) []PlayerSummary {
	type key struct {
		player string
		teamID int64
	}

	index := make(map[key]int, len(actions))
	out := make([]PlayerSummary, 0, len(actions))
	for _, action := range actions {
		k := key{player: action.PlayerName, teamID: action.TeamID}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, PlayerSummary{PlayerName: action.PlayerName, TeamID: action.TeamID})
		}

		switch action.ActionType {
		case ActionWarning:
			out[i].Warnings++
		case ActionYellowCard:
			out[i].YellowCards++
		case ActionRedCard:
			out[i].RedCards++
		case ActionSuspension:
			out[i].Suspensions++
		}
		out[i].Total++
	}

	slices.SortStableFunc(out, func(a, b PlayerSummary) int {
		if c := cmp.Compare(b.Severe(), a.Severe()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.YellowCards, a.YellowCards); c != 0 {
			return c
		}
		if c := cmp.Compare(a.PlayerName, b.PlayerName); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})

	return out
}

// FilterByTournament keeps the actions of one tournament in input order.
func FilterByTournament(actions []Action, tournamentID int64) []Action {
	out := make([]Action, 0, len(actions))
	for _, item := range actions {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out
}
