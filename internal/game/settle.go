package game

// Outcome classifies how a single hand settled.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeWin
	OutcomePush
	OutcomeBlackjack
	OutcomeBust
)

func (o Outcome) String() string {
	return [...]string{"loss", "win", "push", "blackjack", "bust"}[o]
}

// HandOutcome is the settlement of one player hand.
type HandOutcome struct {
	Hand    Hand
	Value   int
	Outcome Outcome
	Payout  int // Amount returned to the bankroll, stake included
}

// PlayerRoundResult summarises one player's round.
type PlayerRoundResult struct {
	Player  *Player
	Wagered int // Initial bet plus every double and split
	Net     int // Bankroll change over the round
	Hands   []HandOutcome
}

// RoundResult summarises a completed round.
type RoundResult struct {
	DealerHand Hand
	DealerBust bool
	Players    []PlayerRoundResult
}

// settle pays out every player hand against the dealer's final hand
// and reports the results. Each hand stakes an equal share of the
// player's total wagered amount (initial bet plus doubles and splits)
// divided by the final hand count.
func (d *Dealer) settle(ledger []int) *RoundResult {
	dealerValue := HandValue(d.hand, true)
	dealerBust := dealerValue > 21
	dealerNatural := IsNatural(d.hand)

	result := &RoundResult{
		DealerHand: append(Hand{}, d.hand...),
		DealerBust: dealerBust,
	}

	for i, p := range d.players {
		pr := PlayerRoundResult{Player: p, Wagered: ledger[i]}
		if len(p.Hands) > 0 {
			share := ledger[i] / len(p.Hands)
			for h, hand := range p.Hands {
				payout, outcome := settleHand(hand, dealerValue, dealerBust, dealerNatural, share, d.rules.BlackjackPayout)
				p.Chips += payout
				pr.Net += payout
				pr.Hands = append(pr.Hands, HandOutcome{
					Hand:    append(Hand{}, hand...),
					Value:   HandValue(hand, true),
					Outcome: outcome,
					Payout:  payout,
				})
				d.logger.Debug("hand settled",
					"player", p.Name,
					"hand", h,
					"value", HandValue(hand, true),
					"dealer", dealerValue,
					"outcome", outcome,
					"stake", share,
					"returned", payout)
			}
		}
		pr.Net -= ledger[i]
		result.Players = append(result.Players, pr)
	}
	return result
}

// settleHand returns the amount paid back to the player for one hand
// and its classification: zero for a forfeit, the stake for a push,
// double the stake for a win, and stake plus the blackjack bonus for
// an unmatched natural.
func settleHand(hand Hand, dealerValue int, dealerBust, dealerNatural bool, stake int, blackjackPayout float64) (int, Outcome) {
	value := HandValue(hand, true)

	switch {
	case value > 21:
		// Bust forfeits regardless of the dealer's outcome
		return 0, OutcomeBust

	case IsNatural(hand):
		// A natural beats any non-natural dealer hand, including a
		// multi-card 21; two naturals push with no bonus.
		if dealerNatural {
			return stake, OutcomePush
		}
		return stake + int(blackjackPayout*float64(stake)), OutcomeBlackjack

	case dealerBust || value > dealerValue:
		// Stake back plus an even-money win. A 21 reached through
		// more than two cards lands here, not in the natural case.
		return 2 * stake, OutcomeWin

	case value == dealerValue:
		return stake, OutcomePush

	default:
		return 0, OutcomeLoss
	}
}
