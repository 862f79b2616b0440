package bot

import (
	"github.com/rs/zerolog"

	"github.com/lox/twentyone/internal/game"
)

// Threshold hits any hand below a target value and stands otherwise.
// It never doubles or splits, so every response it gives is valid.
type Threshold struct {
	bet    int
	target int
	logger zerolog.Logger
}

// NewThreshold creates a threshold agent. The classic mimic-the-dealer
// target is 17.
func NewThreshold(bet, target int, logger zerolog.Logger) *Threshold {
	return &Threshold{
		bet:    bet,
		target: target,
		logger: logger.With().Str("strategy", "threshold").Logger(),
	}
}

// Respond implements game.Agent.
func (t *Threshold) Respond(req game.Request, seat game.Seat) game.Decision {
	switch r := req.(type) {
	case game.BetRequest:
		return flatBet(t.bet, seat)

	case game.PlayRequest:
		p, ok := seat.Player()
		if !ok {
			return game.Decision{Action: game.Stand}
		}
		value := game.HandValue(p.Hands[r.HandIndex], true)
		if value < t.target {
			t.logger.Debug().Int("hand", r.HandIndex).Int("value", value).Msg("hit")
			return game.Decision{Action: game.Hit}
		}
		t.logger.Debug().Int("hand", r.HandIndex).Int("value", value).Msg("stand")
		return game.Decision{Action: game.Stand}

	default:
		return game.Decision{}
	}
}
