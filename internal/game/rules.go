package game

// Rules is the immutable house-rule configuration for a round.
type Rules struct {
	// StandOnSoft17 controls whether the dealer stands on a soft 17
	// (an ace still counted as 11). When false the dealer draws one
	// extra card on a true soft 17.
	StandOnSoft17 bool

	// BlackjackPayout is the bonus multiplier for a natural, e.g. 1.5
	// for a 3:2 table.
	BlackjackPayout float64

	// SplittingEnabled allows players to split a two-card pair.
	SplittingEnabled bool

	// DoublingEnabled allows players to double down.
	DoublingEnabled bool

	// DoubleAfterSplitEnabled allows doubling on the two hands
	// produced by a split. Ignored unless both splitting and doubling
	// are enabled.
	DoubleAfterSplitEnabled bool
}

// DefaultRules returns the conventional house configuration: dealer
// stands on soft 17, naturals pay 3:2, splitting and doubling (including
// after splits) are allowed.
func DefaultRules() Rules {
	return Rules{
		StandOnSoft17:           true,
		BlackjackPayout:         1.5,
		SplittingEnabled:        true,
		DoublingEnabled:         true,
		DoubleAfterSplitEnabled: true,
	}
}
