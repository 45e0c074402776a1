// Package diagnostic scores the one-shot placement quiz and maps the result
// to a recommended starting tier for the adaptive quiz.
package diagnostic

import (
	"errors"
	"fmt"

	"github.com/mktlab/estratega/internal/catalog"
)

// ErrInvalidInput reports malformed scorer arguments.
var ErrInvalidInput = errors.New("diagnostic: invalid input")

// PointsPerCorrect is the fixed award per correct diagnostic answer.
const PointsPerCorrect = 10

// Tier recommendation thresholds, evaluated high to low on the percentage.
const (
	advancedThreshold     = 80.0
	intermediateThreshold = 60.0
)

// Result is the outcome of scoring a diagnostic attempt.
type Result struct {
	CorrectCount int
	Percentage   float64
	Tier         catalog.Tier

	// PerAnswer records correctness per position, for the breakdown view.
	PerAnswer []bool
}

// Points returns the ledger award for this result.
func (r *Result) Points() int {
	return r.CorrectCount * PointsPerCorrect
}

// Score evaluates the selected option indexes against the answer key.
// answers and key must have the same length.
func Score(answers []int, key []catalog.DiagnosticItem) (*Result, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty answer key", ErrInvalidInput)
	}
	if len(answers) != len(key) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidInput, len(answers), len(key))
	}

	r := &Result{PerAnswer: make([]bool, len(key))}
	for i, item := range key {
		correct := answers[i] == item.Correct
		r.PerAnswer[i] = correct
		if correct {
			r.CorrectCount++
		}
	}
	r.Percentage = float64(r.CorrectCount) / float64(len(key)) * 100
	r.Tier = recommendTier(r.Percentage)

	return r, nil
}

func recommendTier(percentage float64) catalog.Tier {
	switch {
	case percentage >= advancedThreshold:
		return catalog.TierAdvanced
	case percentage >= intermediateThreshold:
		return catalog.TierIntermediate
	default:
		return catalog.TierBasic
	}
}
