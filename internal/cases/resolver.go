// Package cases grades decisions on stored mini-cases: each option carries
// a consequence narrative and a lesson, and strategically sound choices earn
// a higher award than the participation floor.
package cases

import (
	"errors"
	"fmt"

	"github.com/mktlab/estratega/internal/catalog"
)

// ErrInvalidInput reports an out-of-range option index.
var ErrInvalidInput = errors.New("cases: invalid input")

const (
	// SoundPoints is the award for choosing a strategically sound option.
	SoundPoints = 30

	// AttemptPoints is the award for resolving a case with an unsound
	// option. Working through the consequences still has value.
	AttemptPoints = 10
)

// Config controls award policy for case resolutions.
type Config struct {
	// RepeatAwards grants points on every resolution of the same case,
	// not only the first. Revisiting a case with a different decision is
	// part of the exercise.
	RepeatAwards bool
}

// DefaultConfig returns the standard award policy.
func DefaultConfig() Config {
	return Config{RepeatAwards: true}
}

// Resolution is the graded outcome of a case decision.
type Resolution struct {
	CaseID      string
	Chosen      int
	Sound       bool
	Consequence string
	Lesson      string
	FinalLesson string
	Points      int
}

// Resolve grades the chosen option of a case. The award depends only on the
// soundness of the choice; first-time bookkeeping is the caller's concern.
func Resolve(c *catalog.Case, chosen int) (*Resolution, error) {
	if chosen < 0 || chosen >= len(c.Options) {
		return nil, fmt.Errorf("%w: option %d out of range for case %q", ErrInvalidInput, chosen, c.ID)
	}

	opt := c.Options[chosen]
	points := AttemptPoints
	if opt.Sound {
		points = SoundPoints
	}

	return &Resolution{
		CaseID:      c.ID,
		Chosen:      chosen,
		Sound:       opt.Sound,
		Consequence: opt.Consequence,
		Lesson:      opt.Lesson,
		FinalLesson: c.FinalLesson,
		Points:      points,
	}, nil
}
