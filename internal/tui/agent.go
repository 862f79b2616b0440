package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/twentyone/internal/game"
)

// sender is the part of tea.Program the bridge needs, split out so
// tests can capture messages without a running terminal.
type sender interface {
	Send(tea.Msg)
}

// logMsg appends a line to the game log pane
type logMsg string

// promptKind selects how the action pane interprets the next input
type promptKind int

const (
	promptNone promptKind = iota
	promptBet
	promptPlay
	promptContinue
)

// promptMsg asks the user for input
type promptMsg struct {
	kind promptKind
	text string
}

// Agent bridges the dealer's decision protocol onto the terminal: each
// request becomes a prompt in the action pane, and Respond blocks until
// the user's reply arrives back over the decisions channel.
type Agent struct {
	sender    sender
	decisions chan game.Decision
	next      chan struct{}
	done      chan struct{}
	bet       int
}

// NewAgent creates a bridge agent with the given default bet. The
// sender is attached later, once the bubbletea program exists.
func NewAgent(bet int) *Agent {
	return &Agent{
		decisions: make(chan game.Decision, 1),
		next:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		bet:       bet,
	}
}

// Respond implements game.Agent. Notices are forwarded to the log;
// bet and play requests block until the user answers or quits.
func (a *Agent) Respond(req game.Request, seat game.Seat) game.Decision {
	switch req := req.(type) {
	case game.BetRequest:
		p, _ := seat.Player()
		a.send(promptMsg{
			kind: promptBet,
			text: fmt.Sprintf("%s: place your bet (enter for %d, chips %d)", p.Name, a.bet, p.Chips),
		})
		return a.wait(game.Decision{Action: game.Bet, Amount: 0})

	case game.PlayRequest:
		p, _ := seat.Player()
		hand := p.Hands[req.HandIndex]
		a.send(promptMsg{
			kind: promptPlay,
			text: fmt.Sprintf("%s hand %d: %s (%d). hit, stand, double or split?",
				p.Name, req.HandIndex+1, hand, game.HandValue(hand, true)),
		})
		return a.wait(game.Decision{Action: game.Stand})

	case game.UpCardNotice:
		a.send(logMsg("Dealer shows " + formatCard(req.Card)))

	case game.DealerDrawNotice:
		a.send(logMsg("Dealer draws " + formatCard(req.Card)))

	case game.DealerHandNotice:
		a.send(logMsg(fmt.Sprintf("Dealer finishes with %s (%d)",
			formatHand(req.Hand), game.HandValue(req.Hand, true))))

	case game.LowCardsNotice:
		a.send(logMsg(WarningStyle.Render(
			fmt.Sprintf("Shoe is low (%d cards left), reshuffling", req.Remaining))))

	case game.ErrorNotice:
		a.send(logMsg(ErrorStyle.Render(
			fmt.Sprintf("%s rejected: %v", req.Attempted.Action, req.Err))))
	}
	return game.Decision{}
}

// wait blocks for the user's decision. A quit mid-prompt falls back to
// a harmless decision so the round can unwind instead of deadlocking.
func (a *Agent) wait(onQuit game.Decision) game.Decision {
	select {
	case dec := <-a.decisions:
		return dec
	case <-a.done:
		return onQuit
	}
}

func (a *Agent) send(msg tea.Msg) {
	if a.sender != nil {
		a.sender.Send(msg)
	}
}

// Done reports whether the user has quit
func (a *Agent) Done() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}
