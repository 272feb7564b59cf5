package sport

import "fmt"

// Sport is a catalog entry tournaments and teams are filed under.
type Sport struct {
	ID         int64
	Name       string
	Icon       string
	MaxPlayers int
}

func (s Sport) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("sport name is required")
	}
	if s.Icon == "" {
		return fmt.Errorf("sport icon is required")
	}
	if s.MaxPlayers < 1 {
		return fmt.Errorf("sport max players must be >= 1")
	}

	return nil
}

// Defaults is the catalog written when storage holds no sports yet.
func Defaults() []Sport {
	return []Sport{
		{ID: 1, Name: "Fútbol", Icon: "⚽", MaxPlayers: 11},
		{ID: 2, Name: "Baloncesto", Icon: "🏀", MaxPlayers: 5},
		{ID: 3, Name: "Voleibol", Icon: "🏐", MaxPlayers: 6},
		{ID: 4, Name: "Atletismo", Icon: "🏃", MaxPlayers: 1},
		{ID: 5, Name: "Tenis de Mesa", Icon: "🏓", MaxPlayers: 1},
	}
}
