package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
)

// stackedShoe builds a shoe containing exactly the given card codes in
// draw order, so tests control every card dealt.
func stackedShoe(t *testing.T, codes ...string) *deck.Shoe {
	t.Helper()
	shoe := &deck.Shoe{}
	for _, code := range codes {
		card, err := deck.ParseCard(code)
		require.NoError(t, err)
		shoe.Append(card)
	}
	return shoe
}

// scriptAgent replays queued bet and play decisions and records every
// request it sees, including one-way notices. Exhausted queues fall
// back to a flat 10 bet and standing, which keeps rounds terminating.
type scriptAgent struct {
	bets  []Decision
	plays []Decision

	requests []Request
	notices  []Request

	betIdx  int
	playIdx int
}

func (a *scriptAgent) Respond(req Request, seat Seat) Decision {
	a.requests = append(a.requests, req)

	switch req.(type) {
	case BetRequest:
		if a.betIdx < len(a.bets) {
			dec := a.bets[a.betIdx]
			a.betIdx++
			return dec
		}
		return Decision{Action: Bet, Amount: 10}

	case PlayRequest:
		if a.playIdx < len(a.plays) {
			dec := a.plays[a.playIdx]
			a.playIdx++
			return dec
		}
		return Decision{Action: Stand}

	default:
		a.notices = append(a.notices, req)
		return Decision{}
	}
}

// errorNotices filters the recorded notices down to rejections
func (a *scriptAgent) errorNotices() []ErrorNotice {
	var out []ErrorNotice
	for _, n := range a.notices {
		if e, ok := n.(ErrorNotice); ok {
			out = append(out, e)
		}
	}
	return out
}

// mustPlayRound plays a round with a table clear and fails the test on
// any fatal error.
func mustPlayRound(t *testing.T, d *Dealer) *RoundResult {
	t.Helper()
	result, err := d.PlayRound(true)
	require.NoError(t, err)
	return result
}

func bet(amount int) Decision { return Decision{Action: Bet, Amount: amount} }

func play(action Action) Decision { return Decision{Action: action} }
