package team

import (
	"fmt"
	"time"
)

// Team is a school team registered under one sport.
type Team struct {
	ID        int64
	Name      string
	Grade     string
	SportID   int64
	Captain   string
	Coach     string
	Players   []Player
	CreatedAt time.Time
}

// Player is one roster entry. Number is free text as printed on the shirt.
type Player struct {
	ID       int64
	Name     string
	Position string
	Number   string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Grade == "" {
		return fmt.Errorf("team grade is required")
	}
	if t.SportID <= 0 {
		return fmt.Errorf("team sport id is required")
	}
	for _, p := range t.Players {
		if p.Name == "" {
			return fmt.Errorf("player name is required")
		}
	}

	return nil
}

func (t Team) PlayerIndex(playerID int64) int {
	for i, p := range t.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// NextPlayerID returns an id above every roster entry of the team.
func (t Team) NextPlayerID() int64 {
	var maxID int64
	for _, p := range t.Players {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// Clone returns a copy that does not share the roster backing array.
func (t Team) Clone() Team {
	out := t
	out.Players = append([]Player(nil), t.Players...)
	return out
}

// FilterBySport keeps the teams of one sport in their original order.
func FilterBySport(teams []Team, sportID int64) []Team {
	out := make([]Team, 0, len(teams))
	for _, item := range teams {
		if item.SportID == sportID {
			out = append(out, item)
		}
	}
	return out
}
