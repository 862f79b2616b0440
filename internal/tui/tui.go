// Package tui provides the interactive terminal table: a bubbletea
// front end plus a bridge agent that turns dealer requests into
// prompts for the human player.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
)

// TUI runs interactive rounds against the dealer until the user quits
// or every player is broke.
type TUI struct {
	dealer *game.Dealer
	agent  *Agent
	logger *log.Logger
}

// New creates the interactive table. The agent must be the same one
// the dealer was constructed with.
func New(dealer *game.Dealer, agent *Agent, logger *log.Logger) *TUI {
	return &TUI{
		dealer: dealer,
		agent:  agent,
		logger: logger,
	}
}

// Run starts the terminal program and the round loop, blocking until
// the session ends.
func (t *TUI) Run() error {
	model := NewModel(t.agent)
	program := tea.NewProgram(model, tea.WithAltScreen())
	t.agent.sender = program

	go t.playRounds(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal program: %w", err)
	}
	return nil
}

// playRounds drives the dealer until the session ends, pausing for an
// acknowledgement between rounds.
func (t *TUI) playRounds(program *tea.Program) {
	defer program.Quit()

	for round := 1; ; round++ {
		if t.agent.Done() {
			return
		}

		program.Send(logMsg(HeaderStyle.Render(fmt.Sprintf(" Round %d ", round))))

		result, err := t.dealer.PlayRound(true)
		if err != nil {
			t.logger.Error("round aborted", "round", round, "error", err)
			program.Send(logMsg(ErrorStyle.Render(fmt.Sprintf("Round aborted: %v", err))))
			return
		}
		if t.agent.Done() {
			return
		}

		for _, line := range summarize(result) {
			program.Send(logMsg(line))
		}

		// Retire broke players; the session ends with the last one
		for _, name := range retireBroke(t.dealer) {
			program.Send(logMsg(WarningStyle.Render(name + " is out of chips")))
		}
		if len(t.dealer.Players()) == 0 {
			program.Send(logMsg(ErrorStyle.Render("The house always wins. Goodbye.")))
			return
		}

		program.Send(promptMsg{kind: promptContinue, text: "Enter for the next round, quit to leave"})
		select {
		case <-t.agent.next:
		case <-t.agent.done:
			return
		}
	}
}

// retireBroke unseats every player with no chips left and returns
// their names in table order. Names are collected before any removal
// so the player list is not mutated while it is being ranged.
func retireBroke(dealer *game.Dealer) []string {
	var broke []string
	for _, p := range dealer.Players() {
		if p.Chips <= 0 {
			broke = append(broke, p.Name)
		}
	}
	for _, name := range broke {
		dealer.RemovePlayer(name)
	}
	return broke
}

// summarize renders a settled round for the log pane
func summarize(result *game.RoundResult) []string {
	var lines []string
	for _, pr := range result.Players {
		for i, h := range pr.Hands {
			label := pr.Player.Name
			if len(pr.Hands) > 1 {
				label = fmt.Sprintf("%s hand %d", pr.Player.Name, i+1)
			}
			lines = append(lines, fmt.Sprintf("%s: %s (%d) %s",
				label, formatHand(h.Hand), h.Value, outcomeStyle(h.Outcome)))
		}
		net := SuccessStyle.Render(fmt.Sprintf("%+d", pr.Net))
		if pr.Net < 0 {
			net = ErrorStyle.Render(fmt.Sprintf("%+d", pr.Net))
		}
		lines = append(lines, fmt.Sprintf("%s: %s chips this round, %d total",
			pr.Player.Name, net, pr.Player.Chips))
	}
	return lines
}

func outcomeStyle(o game.Outcome) string {
	switch o {
	case game.OutcomeWin, game.OutcomeBlackjack:
		return SuccessStyle.Render(o.String())
	case game.OutcomePush:
		return WarningStyle.Render(o.String())
	default:
		return ErrorStyle.Render(o.String())
	}
}
