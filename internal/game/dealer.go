package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/deck"
)

// Dealer owns the shoe, the dealer's hand, the seated players and the
// house rules, and runs rounds end to end. The shoe, the dealer hand
// and every player hand are mutated only by the dealer while a round
// is in progress; there is exactly one logical thread of control per
// round, so no locking is needed.
type Dealer struct {
	shoe    *deck.Shoe
	hand    Hand
	players []*Player
	rules   Rules
	agent   Agent
	logger  *log.Logger
	rng     *rand.Rand

	// auto-reshuffle, disabled unless WithAutoReshuffle is given
	reshuffleDecks     int
	reshuffleThreshold int
}

// Option configures a Dealer.
type Option func(*Dealer)

// WithLogger sets the logger used for round diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dealer) {
		d.logger = logger
	}
}

// WithRNG sets the random source used when the dealer builds a
// replacement shoe.
func WithRNG(rng *rand.Rand) Option {
	return func(d *Dealer) {
		d.rng = rng
	}
}

// WithAutoReshuffle makes the dealer replace the shoe with a freshly
// shuffled one of the given deck count whenever the remaining card
// count at the start of a round is at or below threshold. The agent is
// told via LowCardsNotice before the swap.
func WithAutoReshuffle(decks, threshold int) Option {
	return func(d *Dealer) {
		d.reshuffleDecks = decks
		d.reshuffleThreshold = threshold
	}
}

// NewDealer creates a dealer that draws from shoe, plays by rules and
// obtains every player decision from agent. The dealer takes ownership
// of the shoe for as long as it is in use.
func NewDealer(shoe *deck.Shoe, rules Rules, agent Agent, opts ...Option) *Dealer {
	d := &Dealer{
		shoe:   shoe,
		hand:   Hand{},
		rules:  rules,
		agent:  agent,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddPlayer seats a player. Mutating the player list while a round is
// in progress is caller error.
func (d *Dealer) AddPlayer(p *Player) {
	d.players = append(d.players, p)
}

// RemovePlayer unseats the named player and reports whether a player
// was removed. Same mid-round caveat as AddPlayer.
func (d *Dealer) RemovePlayer(name string) bool {
	for i, p := range d.players {
		if p.Name == name {
			d.players = append(d.players[:i], d.players[i+1:]...)
			return true
		}
	}
	return false
}

// Players returns the seated players in table order.
func (d *Dealer) Players() []*Player {
	return d.players
}

// Hand returns the dealer's current hand.
func (d *Dealer) Hand() Hand {
	return d.hand
}

// Shoe returns the shoe the dealer is drawing from.
func (d *Dealer) Shoe() *deck.Shoe {
	return d.shoe
}

// Rules returns the house rules in effect.
func (d *Dealer) Rules() Rules {
	return d.rules
}

// ClearTable empties the dealer's hand and resets every player to a
// single empty hand. Calling it repeatedly is harmless.
func (d *Dealer) ClearTable() {
	d.hand = Hand{}
	for _, p := range d.players {
		p.Hands = []Hand{{}}
	}
}

// PlayRound runs one complete round: optional table clear, betting,
// dealing, player turns, the dealer's turn and settlement. It returns
// an error only for fatal conditions, i.e. the shoe running out
// mid-round; protocol violations by the agent are reported back to it
// and re-solicited instead.
func (d *Dealer) PlayRound(clearTable bool) (*RoundResult, error) {
	if clearTable {
		d.ClearTable()
	}
	d.maybeReshuffle()

	bets := d.collectBets()

	if err := d.dealInitial(); err != nil {
		return nil, err
	}

	// Per-player wager ledger: initial bet plus every double and
	// split, prorated across the final hand count at settlement.
	ledger := make([]int, len(bets))
	copy(ledger, bets)

	for i, p := range d.players {
		if err := d.playPlayer(p, bets[i], &ledger[i]); err != nil {
			return nil, err
		}
	}

	if err := d.playDealer(); err != nil {
		return nil, err
	}

	result := d.settle(ledger)

	d.notify(DealerHandNotice{Hand: d.hand})
	return result, nil
}

// maybeReshuffle swaps in a fresh shoe when the current one runs low
func (d *Dealer) maybeReshuffle() {
	if d.reshuffleThreshold <= 0 || d.shoe.CardsRemaining() > d.reshuffleThreshold {
		return
	}
	d.logger.Debug("shoe low, reshuffling",
		"remaining", d.shoe.CardsRemaining(),
		"decks", d.reshuffleDecks)
	d.notify(LowCardsNotice{Remaining: d.shoe.CardsRemaining()})

	shoe := deck.NewShoe(d.rng, d.reshuffleDecks)
	shoe.Shuffle()
	d.shoe = shoe
}

// collectBets solicits a bet from every player in table order,
// re-asking until each response is a bet the player can cover.
func (d *Dealer) collectBets() []int {
	bets := make([]int, len(d.players))
	for i, p := range d.players {
		for {
			dec := d.agent.Respond(BetRequest{}, PlayerSeat(p))
			if dec.Action != Bet || dec.Amount < 0 {
				d.reportError(ErrUnexpectedAction, -1, dec, p)
				continue
			}
			if dec.Amount > p.Chips {
				d.reportError(ErrInsufficientFunds, -1, dec, p)
				continue
			}
			p.Chips -= dec.Amount
			bets[i] = dec.Amount
			d.logger.Debug("bet accepted", "player", p.Name, "amount", dec.Amount, "chips", p.Chips)
			break
		}
	}
	return bets
}

// dealInitial deals two cards alternately, dealer first, then shows
// the dealer's up card.
func (d *Dealer) dealInitial() error {
	for pass := 0; pass < 2; pass++ {
		card, err := d.draw()
		if err != nil {
			return err
		}
		d.hand = append(d.hand, card)

		for _, p := range d.players {
			card, err := d.draw()
			if err != nil {
				return err
			}
			p.Hands[0] = append(p.Hands[0], card)
		}
	}

	d.logger.Debug("deal complete", "upcard", d.hand[1], "players", len(d.players))
	d.notify(UpCardNotice{Card: d.hand[1]})
	return nil
}

// playPlayer runs the action loop for one player. The hand list can
// grow mid-loop (a split), so iteration is by index with the length
// re-read every pass.
func (d *Dealer) playPlayer(p *Player, bet int, ledger *int) error {
	// The hand list may already hold more than one hand when the caller
	// skipped the table clear after a split round.
	canDouble := make([]bool, len(p.Hands))
	for h := range canDouble {
		canDouble[h] = d.rules.DoublingEnabled && p.Chips >= bet
	}
	split := false

	for h := 0; h < len(p.Hands); h++ {
		stood := false
		for !stood {
			if IsBust(p.Hands[h]) {
				d.logger.Debug("hand bust", "player", p.Name, "hand", h, "value", HandValue(p.Hands[h], true))
				break
			}

			dec := d.agent.Respond(PlayRequest{HandIndex: h}, PlayerSeat(p))
			d.logger.Debug("play response", "player", p.Name, "hand", h, "action", dec.Action)

			switch dec.Action {
			case Hit:
				card, err := d.draw()
				if err != nil {
					return err
				}
				p.Hands[h] = append(p.Hands[h], card)
				canDouble[h] = false

			case Stand:
				stood = true

			case DoubleDown:
				if !canDouble[h] {
					d.reportError(ErrUnexpectedAction, h, dec, p)
					continue
				}
				if p.Chips < bet {
					d.reportError(ErrInsufficientFunds, h, dec, p)
					continue
				}
				p.Chips -= bet
				*ledger += bet
				card, err := d.draw()
				if err != nil {
					return err
				}
				p.Hands[h] = append(p.Hands[h], card)
				canDouble[h] = false
				stood = true

			case Split:
				// One split per round, original hand only
				if h != 0 || split || !d.rules.SplittingEnabled || !CanSplit(p.Hands[0]) {
					d.reportError(ErrUnexpectedAction, h, dec, p)
					continue
				}
				if p.Chips < bet {
					d.reportError(ErrInsufficientFunds, h, dec, p)
					continue
				}
				p.Chips -= bet
				*ledger += bet

				moved := p.Hands[0][1]
				p.Hands[0] = p.Hands[0][:1]
				p.Hands = append(p.Hands, Hand{moved})

				for _, idx := range []int{0, 1} {
					card, err := d.draw()
					if err != nil {
						return err
					}
					p.Hands[idx] = append(p.Hands[idx], card)
				}

				das := d.rules.DoublingEnabled && d.rules.DoubleAfterSplitEnabled
				canDouble[0] = das
				canDouble = append(canDouble, das)
				split = true
				d.logger.Debug("hand split", "player", p.Name, "chips", p.Chips)

			default:
				d.reportError(ErrUnexpectedAction, h, dec, p)
			}

			if IsBust(p.Hands[h]) {
				stood = true
			}
		}
	}
	return nil
}

// playDealer draws the dealer's hand by fixed rule: draw below 17,
// then a single extra card on a true soft 17 when the house hits soft
// 17. No decisions are solicited.
func (d *Dealer) playDealer() error {
	for HandValue(d.hand, true) < 17 {
		card, err := d.draw()
		if err != nil {
			return err
		}
		d.hand = append(d.hand, card)
		d.notify(DealerDrawNotice{Card: card})
	}

	// A 17 held only because an ace still counts as 11 gets one more
	// card when the house hits soft 17; a hard 17 whose ace was forced
	// down to 1 does not.
	if !d.rules.StandOnSoft17 && HandValue(d.hand, true) == 17 && isSoft(d.hand) {
		card, err := d.draw()
		if err != nil {
			return err
		}
		d.hand = append(d.hand, card)
		d.notify(DealerDrawNotice{Card: card})
	}

	d.logger.Debug("dealer turn complete",
		"hand", d.hand,
		"value", HandValue(d.hand, true),
		"bust", IsBust(d.hand))
	return nil
}

// draw takes the next card from the shoe; exhaustion is fatal to the
// round and propagates up rather than producing a phantom card.
func (d *Dealer) draw() (deck.Card, error) {
	card, err := d.shoe.Draw()
	if err != nil {
		return deck.Card{}, fmt.Errorf("drawing from shoe: %w", err)
	}
	return card, nil
}

// notify sends a one-way notice to the agent, discarding any response
func (d *Dealer) notify(req Request) {
	d.agent.Respond(req, DealerSeat())
}

// reportError tells the agent its last response was rejected. The
// request that provoked it is re-issued by the caller.
func (d *Dealer) reportError(err error, handIndex int, attempted Decision, p *Player) {
	d.logger.Debug("rejected response",
		"player", p.Name,
		"hand", handIndex,
		"action", attempted.Action,
		"reason", err)
	d.agent.Respond(ErrorNotice{Err: err, HandIndex: handIndex, Attempted: attempted}, PlayerSeat(p))
}
