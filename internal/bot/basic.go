package bot

import (
	"github.com/rs/zerolog"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
)

// Basic plays the standard basic-strategy chart (hard totals, soft
// totals and pairs) keyed on the dealer's up card, which it learns
// from the UpCardNotice each round.
//
// The chart sometimes wants a double or split the table rules or
// bankroll won't allow; the engine rejects those and re-solicits, so
// Basic watches its own ErrorNotices and degrades to the chart's
// hit/stand line for the rest of the round.
type Basic struct {
	bet    int
	logger zerolog.Logger

	upCard   deck.Card
	haveUp   bool
	noDouble bool
	noSplit  bool
}

// NewBasic creates a basic-strategy agent with a flat per-round bet.
func NewBasic(bet int, logger zerolog.Logger) *Basic {
	return &Basic{
		bet:    bet,
		logger: logger.With().Str("strategy", "basic").Logger(),
	}
}

// Respond implements game.Agent.
func (b *Basic) Respond(req game.Request, seat game.Seat) game.Decision {
	switch r := req.(type) {
	case game.BetRequest:
		b.haveUp = false
		b.noDouble = false
		b.noSplit = false
		return flatBet(b.bet, seat)

	case game.UpCardNotice:
		b.upCard = r.Card
		b.haveUp = true
		return game.Decision{}

	case game.ErrorNotice:
		switch r.Attempted.Action {
		case game.DoubleDown:
			b.noDouble = true
		case game.Split:
			b.noSplit = true
		}
		b.logger.Debug().Err(r.Err).Stringer("attempted", r.Attempted.Action).Msg("degrading")
		return game.Decision{}

	case game.PlayRequest:
		p, ok := seat.Player()
		if !ok {
			return game.Decision{Action: game.Stand}
		}
		action := b.decide(p, r.HandIndex)
		b.logger.Debug().
			Int("hand", r.HandIndex).
			Int("value", game.HandValue(p.Hands[r.HandIndex], true)).
			Stringer("action", action).
			Msg("play")
		return game.Decision{Action: action}

	default:
		return game.Decision{}
	}
}

func (b *Basic) decide(p *game.Player, handIndex int) game.Action {
	hand := p.Hands[handIndex]

	// Without an up card (should not happen mid-round) play it safe
	if !b.haveUp {
		if game.HandValue(hand, true) < 17 {
			return game.Hit
		}
		return game.Stand
	}

	up := game.HandValue(game.Hand{b.upCard}, true)

	canSplit := !b.noSplit && handIndex == 0 && len(p.Hands) == 1 && game.CanSplit(hand)
	canDouble := !b.noDouble && len(hand) == 2

	if canSplit {
		if action, ok := pairAction(hand[0].Rank, up); ok {
			return action
		}
	}

	if isSoftHand(hand) {
		return softAction(game.HandValue(hand, true), up, canDouble)
	}
	return hardAction(game.HandValue(hand, true), up, canDouble)
}

// pairAction returns the pair line of the chart, or ok=false to fall
// through to the total-based lines (fives and tens never split).
func pairAction(rank deck.Rank, up int) (game.Action, bool) {
	switch rank {
	case deck.Ace, deck.Eight:
		return game.Split, true
	case deck.Nine:
		if up != 7 && up <= 9 {
			return game.Split, true
		}
		return game.Stand, true
	case deck.Seven:
		if up <= 7 {
			return game.Split, true
		}
	case deck.Six:
		if up <= 6 {
			return game.Split, true
		}
	case deck.Four:
		if up == 5 || up == 6 {
			return game.Split, true
		}
	case deck.Three, deck.Two:
		if up <= 7 {
			return game.Split, true
		}
	}
	return game.None, false
}

func softAction(value, up int, canDouble bool) game.Action {
	switch {
	case value >= 19:
		return game.Stand
	case value == 18:
		if up >= 3 && up <= 6 && canDouble {
			return game.DoubleDown
		}
		if up <= 8 {
			return game.Stand
		}
		return game.Hit
	case value == 17:
		if up >= 3 && up <= 6 && canDouble {
			return game.DoubleDown
		}
		return game.Hit
	case value >= 15:
		if up >= 4 && up <= 6 && canDouble {
			return game.DoubleDown
		}
		return game.Hit
	case value >= 13:
		if up >= 5 && up <= 6 && canDouble {
			return game.DoubleDown
		}
		return game.Hit
	default:
		return game.Hit
	}
}

func hardAction(value, up int, canDouble bool) game.Action {
	switch {
	case value >= 17:
		return game.Stand
	case value >= 13:
		if up <= 6 {
			return game.Stand
		}
		return game.Hit
	case value == 12:
		if up >= 4 && up <= 6 {
			return game.Stand
		}
		return game.Hit
	case value == 11:
		if canDouble {
			return game.DoubleDown
		}
		return game.Hit
	case value == 10:
		if up <= 9 && canDouble {
			return game.DoubleDown
		}
		return game.Hit
	case value == 9:
		if up >= 3 && up <= 6 && canDouble {
			return game.DoubleDown
		}
		return game.Hit
	default:
		return game.Hit
	}
}

// isSoftHand reports whether the hand contains an ace still counting 11
func isSoftHand(hand game.Hand) bool {
	hasAce := false
	for _, c := range hand {
		if c.IsAce() {
			hasAce = true
			break
		}
	}
	return hasAce && game.HandValue(hand, true) == game.HandValue(hand, false)
}
