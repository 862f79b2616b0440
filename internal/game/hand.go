package game

import (
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// Hand is an ordered collection of cards. It grows by appending (hits,
// post-split replacement draws); the only time a card leaves a hand is
// the second card moved out during a split.
type Hand []deck.Card

// String returns the display representation of a hand (e.g., "♠A ♥T")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// blackjack point value of a single non-ace rank
func rankValue(r deck.Rank) int {
	if r >= deck.Ten {
		return 10
	}
	return int(r)
}

// HandValue returns the blackjack value of a hand.
//
// Non-ace ranks contribute face value (10 for T/J/Q/K). Aces are
// resolved in a second pass, in hand order. With autoAces, each ace
// counts 11 unless that would push the running total past 21, in which
// case it counts 1; once one ace drops to 1, later aces are evaluated
// against the already-reduced total, so the greedy order is sufficient.
// Without autoAces every ace counts 11 unconditionally, which is how
// the engine distinguishes a true soft 17 from a hard 17 whose ace has
// already been forced down to 1.
//
// Values over 21 (bust) are returned as-is.
func HandValue(hand Hand, autoAces bool) int {
	value := 0
	aces := 0
	for _, c := range hand {
		if c.IsAce() {
			aces++
			continue
		}
		value += rankValue(c.Rank)
	}

	if !autoAces {
		return value + 11*aces
	}
	for i := 0; i < aces; i++ {
		if value+11 > 21 {
			value++
		} else {
			value += 11
		}
	}
	return value
}

// CanSplit reports whether a hand is splittable: exactly two cards of
// equal rank, suits ignored.
func CanSplit(hand Hand) bool {
	if len(hand) != 2 {
		return false
	}
	return hand[0].Rank == hand[1].Rank
}

// IsNatural reports whether a hand is a natural (two-card 21).
func IsNatural(hand Hand) bool {
	return len(hand) == 2 && HandValue(hand, true) == 21
}

// IsBust reports whether a hand's value exceeds 21.
func IsBust(hand Hand) bool {
	return HandValue(hand, true) > 21
}

// containsAce reports whether any card in the hand is an ace
func containsAce(hand Hand) bool {
	for _, c := range hand {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// isSoft reports whether a hand's value currently depends on an ace
// counted as 11: the ace is still "optional" rather than forced to 1.
func isSoft(hand Hand) bool {
	return containsAce(hand) && HandValue(hand, true) == HandValue(hand, false)
}
