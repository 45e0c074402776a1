// Package ledger is the single mutable progress accumulator for a learner
// session: a point total plus the sets of seen concepts, completed quiz
// attempts and resolved cases. The sets only grow; Reset is the sole
// operation allowed to shrink them.
package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed ledger operation argument.
var ErrInvalidInput = errors.New("ledger: invalid input")

// Ledger tracks a learner's cumulative progress in memory.
// It is owned by the session and must only be mutated through its methods.
type Ledger struct {
	points           int
	seenConcepts     map[string]bool
	completedQuizzes map[string]bool
	resolvedCases    map[string]bool
}

// New creates an empty ledger.
func New() *Ledger {
	l := &Ledger{}
	l.zero()
	return l
}

func (l *Ledger) zero() {
	l.points = 0
	l.seenConcepts = make(map[string]bool)
	l.completedQuizzes = make(map[string]bool)
	l.resolvedCases = make(map[string]bool)
}

// Award adds points to the running total. Negative awards are rejected.
func (l *Ledger) Award(points int) error {
	if points < 0 {
		return fmt.Errorf("%w: negative award %d", ErrInvalidInput, points)
	}
	l.points += points
	return nil
}

// Points returns the running point total.
func (l *Ledger) Points() int {
	return l.points
}

// Level derives the learner's level from the point total.
func (l *Ledger) Level() Level {
	return LevelForPoints(l.points)
}

// MarkConceptSeen records a concept as seen. Idempotent.
func (l *Ledger) MarkConceptSeen(id string) {
	l.seenConcepts[id] = true
}

// MarkQuizCompleted records a quiz attempt as completed. Idempotent.
func (l *Ledger) MarkQuizCompleted(id string) {
	l.completedQuizzes[id] = true
}

// MarkCaseResolved records a decision case as resolved. Idempotent.
func (l *Ledger) MarkCaseResolved(id string) {
	l.resolvedCases[id] = true
}

// HasSeenConcept reports whether the concept was marked seen.
func (l *Ledger) HasSeenConcept(id string) bool {
	return l.seenConcepts[id]
}

// HasResolvedCase reports whether the case was marked resolved.
func (l *Ledger) HasResolvedCase(id string) bool {
	return l.resolvedCases[id]
}

// ConceptsSeen returns the number of distinct concepts seen.
func (l *Ledger) ConceptsSeen() int {
	return len(l.seenConcepts)
}

// QuizzesCompleted returns the number of distinct completed quiz attempts.
func (l *Ledger) QuizzesCompleted() int {
	return len(l.completedQuizzes)
}

// CasesResolved returns the number of distinct resolved cases.
func (l *Ledger) CasesResolved() int {
	return len(l.resolvedCases)
}

// CompletionPercentage returns overall completion against the given number
// of trackable items, clamped to [0,100]. A non-positive total yields 0.
func (l *Ledger) CompletionPercentage(totalTrackableItems int) float64 {
	if totalTrackableItems <= 0 {
		return 0
	}
	done := len(l.seenConcepts) + len(l.resolvedCases) + len(l.completedQuizzes)
	pct := float64(done) / float64(totalTrackableItems) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Reset clears all progress. The only operation that shrinks the sets.
func (l *Ledger) Reset() {
	l.zero()
}
