package bot

// Weights holds the pattern scores used by the evaluator. Injectable so
// tests and config can pin or tune them without recompilation.
type Weights struct {
	Five         int
	OpenFour     int
	BlockedFour  int
	OpenThree    int
	BlockedThree int
	OpenTwo      int
	BlockedTwo   int

	// OpponentDamping discounts opponent patterns inside the line
	// evaluator; EasyDefenseDamping discounts the defensive term of
	// the easy tier. The two differ on purpose: changing either one
	// changes observable move choices.
	OpponentDamping    float64
	EasyDefenseDamping float64
}

// DefaultWeights returns the tuned scores. OpenThree and BlockedFour
// share the value 1000; the difficulty tiers rank moves assuming that
// collision, so it must not be "fixed".
func DefaultWeights() Weights {
	return Weights{
		Five:               100000,
		OpenFour:           10000,
		BlockedFour:        1000,
		OpenThree:          1000,
		BlockedThree:       100,
		OpenTwo:            100,
		BlockedTwo:         10,
		OpponentDamping:    0.9,
		EasyDefenseDamping: 0.8,
	}
}

// patternScore maps a (stone count, empty count) pair within a 5-cell
// window to its score. Pairs outside the table score 0.
func (w Weights) patternScore(stones, empties int) int {
	switch {
	case stones == 5:
		return w.Five
	case stones == 4 && empties == 1:
		return w.OpenFour
	case stones == 4 && empties == 0:
		return w.BlockedFour
	case stones == 3 && empties == 2:
		return w.OpenThree
	case stones == 3 && empties == 1:
		return w.BlockedThree
	case stones == 2 && empties == 3:
		return w.OpenTwo
	case stones == 2 && empties == 2:
		return w.BlockedTwo
	default:
		return 0
	}
}
