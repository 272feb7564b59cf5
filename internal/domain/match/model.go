package match

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusCompleted:
		return true
	default:
		return false
	}
}

var (
	ErrInsufficientTeams = errors.New("at least two teams of the tournament sport are required")
	ErrSameTeam          = errors.New("a team cannot play against itself")
	ErrScoreMismatch     = errors.New("scores must be set together on completed matches only")
	ErrNegativeScore     = errors.New("score must not be negative")
)

// Match is one fixture of a tournament. Time and Location are free text
// entered by the organizer.
type Match struct {
	ID           int64
	TournamentID int64
	Team1ID      int64
	Team2ID      int64
	Date         time.Time
	Time         string
	Location     string
	Round        string
	Status       Status
	Score1       *int
	Score2       *int
	CreatedAt    time.Time
}

func (m Match) Validate() error {
	if m.TournamentID <= 0 {
		return fmt.Errorf("match tournament id is required")
	}
	if m.Team1ID <= 0 || m.Team2ID <= 0 {
		return fmt.Errorf("match teams are required")
	}
	if m.Team1ID == m.Team2ID {
		return ErrSameTeam
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("invalid match status %q", m.Status)
	}

	hasScore := m.Score1 != nil && m.Score2 != nil
	if (m.Score1 == nil) != (m.Score2 == nil) || hasScore != (m.Status == StatusCompleted) {
		return ErrScoreMismatch
	}
	if hasScore && (*m.Score1 < 0 || *m.Score2 < 0) {
		return ErrNegativeScore
	}

	return nil
}

func (m Match) Involves(teamID int64) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// ScoreFor returns the goals scored and conceded by teamID. ok is false when
// the match has no result or the team did not take part.
func (m Match) ScoreFor(teamID int64) (scored, conceded int, ok bool) {
	if m.Score1 == nil || m.Score2 == nil {
		return 0, 0, false
	}
	switch teamID {
	case m.Team1ID:
		return *m.Score1, *m.Score2, true
	case m.Team2ID:
		return *m.Score2, *m.Score1, true
	default:
		return 0, 0, false
	}
}

// Completed keeps finished matches of one tournament in input order.
func Completed(matches []Match, tournamentID int64) []Match {
	out := make([]Match, 0, len(matches))
	for _, item := range matches {
		if item.TournamentID == tournamentID && item.Status == StatusCompleted {
			out = append(out, item)
		}
	}
	return out
}

func Score(v int) *int {
	return &v
}
