package game

// Player represents a seated player: a bankroll and the hands in play.
// Hands[0] is the original hand; higher indexes exist only after a
// split. Players persist across rounds, hands do not.
type Player struct {
	Name  string
	Chips int
	Hands []Hand
}

// NewPlayer creates a player with a starting bankroll and a single
// empty hand.
func NewPlayer(name string, chips int) *Player {
	return &Player{
		Name:  name,
		Chips: chips,
		Hands: []Hand{{}},
	}
}
