package memory

import (
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
)

// SeedSports is the catalog a fresh store starts with.
func SeedSports() []sport.Sport {
	return sport.Defaults()
}
