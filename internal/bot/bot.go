// Package bot provides scripted strategy agents for driving the round
// engine without a human: a fixed-threshold hitter, a basic-strategy
// chart player and a random player for soak testing.
package bot

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/twentyone/internal/game"
)

// Strategies lists the names accepted by New.
var Strategies = []string{"basic", "threshold", "random"}

// New constructs a named strategy agent betting a flat amount per round.
func New(strategy string, bet int, logger zerolog.Logger) (game.Agent, error) {
	switch strategy {
	case "basic":
		return NewBasic(bet, logger), nil
	case "threshold":
		return NewThreshold(bet, 17, logger), nil
	case "random":
		return NewRandom(bet, 0, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// flatBet returns a bet the player can actually cover, so a shrinking
// bankroll degrades the wager instead of looping on rejections.
func flatBet(amount int, seat game.Seat) game.Decision {
	if p, ok := seat.Player(); ok && p.Chips < amount {
		amount = p.Chips
	}
	return game.Decision{Action: game.Bet, Amount: amount}
}
