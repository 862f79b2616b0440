package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned when drawing from a shoe with no cards left.
// Callers must treat it as fatal for the round in progress: there is no
// sentinel "no card" value that downstream hand logic could process.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is an ordered container of cards with FIFO draw semantics.
// A single-deck shoe doubles as a plain deck.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a single 52-card shoe in canonical order.
// The RNG is retained for Shuffle; it may be nil if the caller never shuffles.
func NewDeck(rng *rand.Rand) *Shoe {
	return NewShoe(rng, 1)
}

// NewShoe creates a shoe containing the given number of 52-card decks
// in canonical order.
func NewShoe(rng *rand.Rand, decks int) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, decks*52),
		rng:   rng,
	}
	for d := 0; d < decks; d++ {
		for suit := Spades; suit <= Diamonds; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	return s
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the front card of the shoe
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Append adds cards to the back of the shoe
func (s *Shoe) Append(cards ...Card) {
	s.cards = append(s.cards, cards...)
}

// Peek returns the front card without removing it
func (s *Shoe) Peek() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[0], true
}

// CardsRemaining returns the number of cards left in the shoe
func (s *Shoe) CardsRemaining() int {
	return len(s.cards)
}

// IsEmpty returns true if the shoe has no cards left
func (s *Shoe) IsEmpty() bool {
	return len(s.cards) == 0
}
