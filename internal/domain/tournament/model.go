package tournament

import (
	"fmt"
	"slices"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// Tournament groups matches of one sport between registered teams.
type Tournament struct {
	ID              int64
	Name            string
	SportID         int64
	Description     string
	StartDate       time.Time
	EndDate         time.Time
	MaxTeams        int
	Status          Status
	RegisteredTeams []int64
	CreatedAt       time.Time
}

func (t Tournament) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.SportID <= 0 {
		return fmt.Errorf("tournament sport id is required")
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("tournament start date is required")
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date must not be before start date")
	}
	if t.MaxTeams < 0 {
		return fmt.Errorf("tournament max teams must be >= 0")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("invalid tournament status %q", t.Status)
	}

	return nil
}

func (t Tournament) IsRegistered(teamID int64) bool {
	return slices.Contains(t.RegisteredTeams, teamID)
}

// IsFull reports whether registration reached MaxTeams. Zero means unlimited.
func (t Tournament) IsFull() bool {
	return t.MaxTeams > 0 && len(t.RegisteredTeams) >= t.MaxTeams
}

func (t Tournament) Clone() Tournament {
	out := t
	out.RegisteredTeams = append([]int64(nil), t.RegisteredTeams...)
	return out
}
