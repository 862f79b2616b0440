package game

import (
	"errors"

	"github.com/lox/twentyone/internal/deck"
)

// Recoverable protocol errors. Both round-trip back to the agent as an
// ErrorNotice and the offending request is re-issued; the engine never
// auto-corrects, caps retries or times out. A misbehaving agent that
// never produces a valid response stalls the round indefinitely —
// liveness is the caller's concern.
var (
	// ErrInsufficientFunds indicates a bet, double or split that
	// exceeds the player's bankroll.
	ErrInsufficientFunds = errors.New("not enough money")

	// ErrUnexpectedAction indicates a response that is not valid for
	// the current request.
	ErrUnexpectedAction = errors.New("unexpected action")
)

// Action is the kind of response an agent can give.
type Action int

const (
	None Action = iota
	Bet
	Hit
	Stand
	DoubleDown
	Split
)

func (a Action) String() string {
	return [...]string{"none", "bet", "hit", "stand", "double", "split"}[a]
}

// Decision is an agent's response to a request. Amount is only
// meaningful for Bet.
type Decision struct {
	Action Action
	Amount int
}

// Request is a message from the dealer to an agent. BetRequest and
// PlayRequest require a response; the notice types are one-way and any
// response to them is discarded.
type Request interface {
	requestTag()
}

// BetRequest asks the seated player for their bet for the round.
type BetRequest struct{}

// PlayRequest asks the seated player to act on the hand at HandIndex.
type PlayRequest struct {
	HandIndex int
}

// UpCardNotice discloses the dealer's up card after the deal.
type UpCardNotice struct {
	Card deck.Card
}

// DealerDrawNotice reports a card the dealer drew during their turn.
type DealerDrawNotice struct {
	Card deck.Card
}

// DealerHandNotice discloses the dealer's complete hand at the end of
// the round.
type DealerHandNotice struct {
	Hand Hand
}

// LowCardsNotice reports that the shoe ran low and is being replaced
// with a freshly shuffled one before the round starts.
type LowCardsNotice struct {
	Remaining int
}

// ErrorNotice reports a rejected response. Err is ErrInsufficientFunds
// or ErrUnexpectedAction, HandIndex identifies the offending hand for
// play errors (-1 for bet errors) and Attempted is the rejected
// decision.
type ErrorNotice struct {
	Err       error
	HandIndex int
	Attempted Decision
}

func (BetRequest) requestTag()       {}
func (PlayRequest) requestTag()      {}
func (UpCardNotice) requestTag()     {}
func (DealerDrawNotice) requestTag() {}
func (DealerHandNotice) requestTag() {}
func (LowCardsNotice) requestTag()   {}
func (ErrorNotice) requestTag()      {}

// Seat identifies whose turn a request concerns: a specific player, or
// the dealer for table-wide notices. Modelling this explicitly keeps
// call sites from juggling nil player pointers.
type Seat struct {
	player *Player
}

// PlayerSeat returns a seat for the given player.
func PlayerSeat(p *Player) Seat {
	return Seat{player: p}
}

// DealerSeat returns the dealer-only seat used for notices that are
// not addressed to any player.
func DealerSeat() Seat {
	return Seat{}
}

// Player returns the seated player, or false for the dealer seat.
func (s Seat) Player() (*Player, bool) {
	return s.player, s.player != nil
}

// Agent makes decisions for players. Respond is synchronous and
// blocking from the engine's point of view; it may do arbitrary
// external work (prompt a terminal, run a strategy) but must return
// within the same call stack. Agents receive every request addressed
// to their table, including one-way notices.
type Agent interface {
	Respond(req Request, seat Seat) Decision
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(req Request, seat Seat) Decision

// Respond implements Agent.
func (f AgentFunc) Respond(req Request, seat Seat) Decision {
	return f(req, seat)
}
