package tui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
)

// Model is the bubbletea model for the table: a scrolling game log on
// top and a single prompt-driven input pane below.
type Model struct {
	logViewport viewport.Model
	actionInput textinput.Model

	gameLog  []string
	prompt   promptMsg
	quitting bool

	agent    *Agent
	quitOnce sync.Once

	width  int
	height int
}

// NewModel creates the table model wired to the bridge agent's channels.
func NewModel(agent *Agent) *Model {
	vp := viewport.New(100, 25)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "waiting for the deal"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logViewport: vp,
		actionInput: ti,
		agent:       agent,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case logMsg:
		m.addLog(string(msg))

	case promptMsg:
		m.prompt = msg

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.quit()
		case "enter":
			input := m.actionInput.Value()
			m.actionInput.SetValue("")
			return m.submit(input)
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	return m, cmd
}

// submit interprets the typed line against the pending prompt
func (m *Model) submit(input string) (tea.Model, tea.Cmd) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "quit" || trimmed == "q" || trimmed == "exit" {
		return m.quit()
	}

	switch m.prompt.kind {
	case promptBet:
		dec, err := parseBet(input, m.agent.bet)
		if err != nil {
			m.addLog(ErrorStyle.Render(err.Error()))
			return m, nil
		}
		m.deliver(dec)

	case promptPlay:
		dec, err := parsePlay(input)
		if err != nil {
			m.addLog(ErrorStyle.Render(err.Error()))
			return m, nil
		}
		m.deliver(dec)

	case promptContinue:
		m.prompt = promptMsg{}
		select {
		case m.agent.next <- struct{}{}:
		default:
		}
	}
	return m, nil
}

func (m *Model) deliver(dec game.Decision) {
	select {
	case m.agent.decisions <- dec:
		m.prompt = promptMsg{}
	default:
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.quitOnce.Do(func() { close(m.agent.done) })
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderLogPane(), m.renderActionPane())
}

func (m *Model) renderLogPane() string {
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(1).
		Width(max(m.width-4, 20))
	return style.Render(m.logViewport.View())
}

func (m *Model) renderActionPane() string {
	var content strings.Builder

	if m.prompt.kind != promptNone {
		content.WriteString(HandInfoStyle.Render(m.prompt.text))
	} else {
		content.WriteString(InfoStyle.Render("Waiting for the dealer"))
	}
	content.WriteString("\n")
	content.WriteString(m.actionInput.View())
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Enter to submit, PgUp/PgDn to scroll, Ctrl+C to quit"))

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Padding(1).
		Width(max(m.width-4, 20))
	return style.Render(content.String())
}

// addLog appends an entry and keeps the viewport pinned to the bottom
func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) updateDimensions() {
	if m.height <= 0 || m.width <= 0 {
		return
	}
	actionPaneHeight := 7
	logHeight := m.height - actionPaneHeight - 1
	if logHeight < 3 {
		logHeight = 3
	}
	m.logViewport.Width = m.width - 4
	m.logViewport.Height = logHeight - 4
	m.actionInput.Width = m.width - 8
}

// parseBet turns typed input into a bet, with an empty line taking the
// table's default amount.
func parseBet(input string, fallback int) (game.Decision, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return game.Decision{Action: game.Bet, Amount: fallback}, nil
	}
	amount, err := strconv.Atoi(input)
	if err != nil || amount < 0 {
		return game.Decision{}, fmt.Errorf("bet must be a non-negative number, got %q", input)
	}
	return game.Decision{Action: game.Bet, Amount: amount}, nil
}

// parsePlay turns typed input into a play action. An empty line stands.
func parsePlay(input string) (game.Decision, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "hit", "h":
		return game.Decision{Action: game.Hit}, nil
	case "stand", "s", "":
		return game.Decision{Action: game.Stand}, nil
	case "double", "d":
		return game.Decision{Action: game.DoubleDown}, nil
	case "split", "p":
		return game.Decision{Action: game.Split}, nil
	default:
		return game.Decision{}, fmt.Errorf("unknown action %q, try hit, stand, double or split", input)
	}
}

// formatCard colors a card by suit
func formatCard(card deck.Card) string {
	if card.IsRed() {
		return RedCardStyle.Render(card.String())
	}
	return BlackCardStyle.Render(card.String())
}

// formatHand colors every card in a hand
func formatHand(hand game.Hand) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = formatCard(card)
	}
	return strings.Join(parts, " ")
}
