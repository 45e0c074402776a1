package adaptive

// Config holds the adaptive policy knobs. The defaults reproduce the
// curriculum's observed behavior; they are configuration, not derived
// from any deeper model.
type Config struct {
	// PromoteEvery promotes one tier on every Nth cumulative correct answer.
	PromoteEvery int

	// DemoteBelow is the running-accuracy threshold under which an
	// incorrect answer demotes one tier.
	DemoteBelow float64

	// DemoteMinAnswered is the minimum total answers before demotion
	// is considered.
	DemoteMinAnswered int

	// BasePoints is the award for a correct answer at the basic tier.
	BasePoints int

	// TierBonus is the extra award per tier index above basic.
	TierBonus int

	// CompletionBonus is the one-time award for exhausting the advanced
	// tier pool.
	CompletionBonus int
}

// DefaultConfig returns the standard adaptive policy.
func DefaultConfig() Config {
	return Config{
		PromoteEvery:      3,
		DemoteBelow:       0.5,
		DemoteMinAnswered: 3,
		BasePoints:        10,
		TierBonus:         5,
		CompletionBonus:   100,
	}
}
