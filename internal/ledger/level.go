package ledger

// Level is the learner's mastery level, derived from points.
type Level int

const (
	LevelBeginner Level = iota
	LevelApprentice
	LevelCompetent
	LevelAdvanced
	LevelExpert
)

// Level breakpoints. A learner is at the highest level whose threshold
// their points reach.
const (
	apprenticeAt = 100
	competentAt  = 300
	advancedAt   = 600
	expertAt     = 1000
)

// LevelForPoints derives the level from a point total.
func LevelForPoints(points int) Level {
	switch {
	case points >= expertAt:
		return LevelExpert
	case points >= advancedAt:
		return LevelAdvanced
	case points >= competentAt:
		return LevelCompetent
	case points >= apprenticeAt:
		return LevelApprentice
	default:
		return LevelBeginner
	}
}

// DisplayName returns the label shown in the UI.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Principiante"
	case LevelApprentice:
		return "Aprendiz"
	case LevelCompetent:
		return "Competente"
	case LevelAdvanced:
		return "Avanzado"
	case LevelExpert:
		return "Experto"
	default:
		return "?"
	}
}

// ProgressToNext returns how far the given point total is through the
// current level band, in [0,1], and whether a next level exists.
// Experts are always at 1.0.
func ProgressToNext(points int) (float64, bool) {
	bounds := []int{0, apprenticeAt, competentAt, advancedAt, expertAt}
	for i := 1; i < len(bounds); i++ {
		if points < bounds[i] {
			lo, hi := bounds[i-1], bounds[i]
			return float64(points-lo) / float64(hi-lo), true
		}
	}
	return 1.0, false
}
