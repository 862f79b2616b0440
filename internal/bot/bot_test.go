package bot

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
)

func card(t *testing.T, code string) deck.Card {
	t.Helper()
	c, err := deck.ParseCard(code)
	require.NoError(t, err)
	return c
}

func handOf(t *testing.T, codes ...string) game.Hand {
	t.Helper()
	hand := make(game.Hand, 0, len(codes))
	for _, code := range codes {
		hand = append(hand, card(t, code))
	}
	return hand
}

func TestNew(t *testing.T) {
	for _, name := range Strategies {
		agent, err := New(name, 10, zerolog.Nop())
		require.NoError(t, err)
		assert.NotNil(t, agent)
	}

	_, err := New("martingale", 10, zerolog.Nop())
	assert.Error(t, err)
}

func TestFlatBetDegradesToBankroll(t *testing.T) {
	p := game.NewPlayer("Bot", 7)
	dec := flatBet(10, game.PlayerSeat(p))
	assert.Equal(t, game.Bet, dec.Action)
	assert.Equal(t, 7, dec.Amount)

	p.Chips = 100
	assert.Equal(t, 10, flatBet(10, game.PlayerSeat(p)).Amount)
}

func TestThreshold(t *testing.T) {
	agent := NewThreshold(10, 17, zerolog.Nop())
	p := game.NewPlayer("Bot", 100)

	dec := agent.Respond(game.BetRequest{}, game.PlayerSeat(p))
	assert.Equal(t, game.Bet, dec.Action)
	assert.Equal(t, 10, dec.Amount)

	p.Hands = []game.Hand{handOf(t, "ST", "H6")}
	dec = agent.Respond(game.PlayRequest{HandIndex: 0}, game.PlayerSeat(p))
	assert.Equal(t, game.Hit, dec.Action)

	p.Hands = []game.Hand{handOf(t, "ST", "H7")}
	dec = agent.Respond(game.PlayRequest{HandIndex: 0}, game.PlayerSeat(p))
	assert.Equal(t, game.Stand, dec.Action)
}

// basicDecision primes a Basic agent with an up card and asks it to
// play the given hand.
func basicDecision(t *testing.T, hand game.Hand, upCode string) game.Action {
	t.Helper()
	agent := NewBasic(10, zerolog.Nop())
	p := game.NewPlayer("Bot", 1000)
	p.Hands = []game.Hand{hand}

	agent.Respond(game.BetRequest{}, game.PlayerSeat(p))
	agent.Respond(game.UpCardNotice{Card: card(t, upCode)}, game.DealerSeat())
	return agent.Respond(game.PlayRequest{HandIndex: 0}, game.PlayerSeat(p)).Action
}

func TestBasicChart(t *testing.T) {
	tests := []struct {
		name string
		hand []string
		up   string
		want game.Action
	}{
		{"always split aces", []string{"SA", "HA"}, "ST", game.Split},
		{"always split eights", []string{"S8", "H8"}, "ST", game.Split},
		{"never split tens", []string{"ST", "HT"}, "S6", game.Stand},
		{"nines split against six", []string{"S9", "H9"}, "S6", game.Split},
		{"nines stand against seven", []string{"S9", "H9"}, "S7", game.Stand},
		{"fives double like a ten", []string{"S5", "H5"}, "S6", game.DoubleDown},

		{"hard seventeen stands", []string{"ST", "H7"}, "SA", game.Stand},
		{"hard sixteen stands against six", []string{"ST", "H6"}, "S6", game.Stand},
		{"hard sixteen hits against seven", []string{"ST", "H6"}, "S7", game.Hit},
		{"hard twelve hits against two", []string{"ST", "H2"}, "S2", game.Hit},
		{"hard twelve stands against four", []string{"ST", "H2"}, "S4", game.Stand},
		{"eleven doubles", []string{"S6", "H5"}, "ST", game.DoubleDown},
		{"ten doubles against nine", []string{"S6", "H4"}, "S9", game.DoubleDown},
		{"ten hits against ace", []string{"S6", "H4"}, "SA", game.Hit},
		{"eight hits", []string{"S5", "H3"}, "S6", game.Hit},

		{"soft nineteen stands", []string{"SA", "H8"}, "S6", game.Stand},
		{"soft eighteen doubles against six", []string{"SA", "H7"}, "S6", game.DoubleDown},
		{"soft eighteen stands against eight", []string{"SA", "H7"}, "S8", game.Stand},
		{"soft eighteen hits against ten", []string{"SA", "H7"}, "ST", game.Hit},
		{"soft seventeen doubles against four", []string{"SA", "H6"}, "S4", game.DoubleDown},
		{"soft seventeen hits against two", []string{"SA", "H6"}, "S2", game.Hit},
		{"soft thirteen hits against four", []string{"SA", "H2"}, "S4", game.Hit},
		{"soft thirteen doubles against five", []string{"SA", "H2"}, "S5", game.DoubleDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, basicDecision(t, handOf(t, tt.hand...), tt.up))
		})
	}
}

func TestBasicThreeCardHandNeverDoubles(t *testing.T) {
	agent := NewBasic(10, zerolog.Nop())
	p := game.NewPlayer("Bot", 1000)
	p.Hands = []game.Hand{handOf(t, "S2", "H3", "C6")} // hard 11

	agent.Respond(game.UpCardNotice{Card: card(t, "S6")}, game.DealerSeat())
	dec := agent.Respond(game.PlayRequest{HandIndex: 0}, game.PlayerSeat(p))
	assert.Equal(t, game.Hit, dec.Action)
}

func TestBasicDegradesAfterRejection(t *testing.T) {
	agent := NewBasic(10, zerolog.Nop())
	p := game.NewPlayer("Bot", 1000)
	p.Hands = []game.Hand{handOf(t, "S6", "H5")} // hard 11, wants a double

	agent.Respond(game.UpCardNotice{Card: card(t, "ST")}, game.DealerSeat())

	dec := agent.Respond(game.PlayRequest{HandIndex: 0}, game.PlayerSeat(p))
	require.Equal(t, game.DoubleDown, dec.Action)

	// Table rejected the double; the chart line falls back to a hit
	agent.Respond(game.ErrorNotice{Err: game.ErrUnexpectedAction, HandIndex: 0, Attempted: dec}, game.PlayerSeat(p))
	dec = agent.Respond(game.PlayRequest{HandIndex: 0}, game.PlayerSeat(p))
	assert.Equal(t, game.Hit, dec.Action)
}

// Strategy agents must be able to drive complete rounds unattended.
func TestAgentsPlayFullRounds(t *testing.T) {
	for _, name := range Strategies {
		t.Run(name, func(t *testing.T) {
			agent, err := New(name, 10, zerolog.Nop())
			require.NoError(t, err)

			shoe := deck.NewShoe(randutil.New(123), 6)
			shoe.Shuffle()

			d := game.NewDealer(shoe, game.DefaultRules(), agent,
				game.WithRNG(randutil.New(321)),
				game.WithAutoReshuffle(6, 52))
			p := game.NewPlayer("Bot", 10_000)
			d.AddPlayer(p)

			for i := 0; i < 50; i++ {
				_, err := d.PlayRound(true)
				require.NoError(t, err)
			}
			assert.GreaterOrEqual(t, p.Chips, 0)
		})
	}
}
