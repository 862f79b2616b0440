package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
)

func handOf(t *testing.T, codes ...string) Hand {
	t.Helper()
	hand := make(Hand, 0, len(codes))
	for _, code := range codes {
		card, err := deck.ParseCard(code)
		require.NoError(t, err)
		hand = append(hand, card)
	}
	return hand
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		codes    []string
		autoAces bool
		want     int
	}{
		{"simple", []string{"S2", "H3"}, true, 5},
		{"face cards count ten", []string{"SJ", "HQ", "CK"}, true, 30},
		{"ten", []string{"ST", "H9"}, true, 19},
		{"natural", []string{"SA", "HK"}, true, 21},
		{"ace stays eleven under 21", []string{"SA", "H9"}, true, 20},
		{"ace drops to one over 21", []string{"SA", "H9", "C5"}, true, 15},
		{"two aces", []string{"SA", "HA"}, true, 12},
		{"two aces with nine", []string{"SA", "HA", "C9"}, true, 21},
		{"hard twenty-two", []string{"ST", "HT", "C2"}, true, 22},
		{"no auto aces counts eleven", []string{"SA", "H9", "C5"}, false, 25},
		{"no auto two aces", []string{"SA", "HA"}, false, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(handOf(t, tt.codes...), tt.autoAces))
		})
	}
}

// A full suit run 2..A values 95 with every ace counted as 11.
func TestHandValueFullSuit(t *testing.T) {
	d := deck.NewDeck(randutil.New(0))
	hand := make(Hand, 0, 13)
	for i := 0; i < 13; i++ {
		card, err := d.Draw()
		require.NoError(t, err)
		hand = append(hand, card)
	}
	assert.Equal(t, 95, HandValue(hand, false))
}

func TestHandValueAceDowngradeIsTenPerAce(t *testing.T) {
	// Aces resolve greedily in hand order. For A,A,T the first ace
	// locks in 11 (running total 21), so only the second drops to 1:
	// the auto value is 22, exactly 10 below the fixed-11 total per
	// downgraded ace.
	hand := handOf(t, "SA", "HA", "CT")
	hard := HandValue(hand, false)
	auto := HandValue(hand, true)
	assert.Equal(t, 32, hard)
	assert.Equal(t, 22, auto)
	assert.Equal(t, 10, hard-auto)
}

func TestHandValueSingleAceLowHardTotal(t *testing.T) {
	// One ace and a hard total <= 10: the ace still counts 11 either way.
	for _, codes := range [][]string{{"SA", "H9"}, {"SA", "H2", "C3"}, {"SA"}} {
		hand := handOf(t, codes...)
		assert.Equal(t, HandValue(hand, false), HandValue(hand, true), "hand %v", hand)
	}
}

func TestCanSplit(t *testing.T) {
	assert.True(t, CanSplit(handOf(t, "S8", "H8")))
	assert.True(t, CanSplit(handOf(t, "SA", "DA")))
	assert.False(t, CanSplit(handOf(t, "ST", "HJ")), "equal value but different rank")
	assert.False(t, CanSplit(handOf(t, "S8", "H8", "C8")))
	assert.False(t, CanSplit(handOf(t, "S8")))
	assert.False(t, CanSplit(Hand{}))
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural(handOf(t, "SA", "HK")))
	assert.True(t, IsNatural(handOf(t, "DT", "CA")))
	assert.False(t, IsNatural(handOf(t, "S7", "H9", "C5")), "21 via three cards")
	assert.False(t, IsNatural(handOf(t, "ST", "HT")))
}

func TestIsSoft(t *testing.T) {
	assert.True(t, isSoft(handOf(t, "SA", "H6")), "ace-six is a true soft 17")
	assert.False(t, isSoft(handOf(t, "ST", "H6", "CA")), "ace already forced to 1")
	assert.False(t, isSoft(handOf(t, "ST", "H7")), "no ace at all")
}

func TestHandString(t *testing.T) {
	assert.Equal(t, "♠A ♥T", handOf(t, "SA", "HT").String())
	assert.Equal(t, "", Hand{}.String())
}
