package bot

import (
	rand "math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
)

// Random plays uniformly among the actions that look legal for the
// current hand. It exists to soak-test the engine rather than to win.
type Random struct {
	bet    int
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewRandom creates a random agent seeded deterministically from seed.
func NewRandom(bet int, seed int64, logger zerolog.Logger) *Random {
	return &Random{
		bet:    bet,
		rng:    randutil.New(seed),
		logger: logger.With().Str("strategy", "random").Logger(),
	}
}

// Respond implements game.Agent.
func (a *Random) Respond(req game.Request, seat game.Seat) game.Decision {
	r, ok := req.(game.PlayRequest)
	if !ok {
		if _, isBet := req.(game.BetRequest); isBet {
			return flatBet(a.bet, seat)
		}
		return game.Decision{}
	}

	p, ok := seat.Player()
	if !ok {
		return game.Decision{Action: game.Stand}
	}

	hand := p.Hands[r.HandIndex]
	choices := []game.Action{game.Hit, game.Stand}
	if len(hand) == 2 {
		choices = append(choices, game.DoubleDown)
	}
	if r.HandIndex == 0 && len(p.Hands) == 1 && game.CanSplit(hand) {
		choices = append(choices, game.Split)
	}

	action := choices[a.rng.IntN(len(choices))]
	a.logger.Debug().Int("hand", r.HandIndex).Stringer("action", action).Msg("play")
	return game.Decision{Action: action}
}
