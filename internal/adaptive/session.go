// Package adaptive serves the tier-adjusting quiz: it selects unseen
// questions at the active tier, raises or lowers the tier from rolling
// performance, and signals pool exhaustion.
package adaptive

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mktlab/estratega/internal/catalog"
)

var (
	// ErrInvalidInput reports a malformed argument, such as an
	// out-of-range option index.
	ErrInvalidInput = errors.New("adaptive: invalid input")

	// ErrInvalidState reports an operation invoked out of order, such as
	// submitting an answer with no pending question.
	ErrInvalidState = errors.New("adaptive: invalid state")
)

// Exhaustion signals that every question in the tier's pool has been asked.
type Exhaustion struct {
	Tier catalog.Tier
}

// TierChange records a promotion or demotion for feedback display.
type TierChange struct {
	From     catalog.Tier
	To       catalog.Tier
	Promoted bool
}

// AnswerResult is the outcome of submitting an answer.
type AnswerResult struct {
	Correct      bool
	CorrectIndex int
	Explanation  string

	// Points is the award for this answer, reflecting the tier after any
	// promotion triggered by this same answer. Zero when incorrect.
	Points int

	// TierChange is set when this answer moved the tier, nil otherwise.
	TierChange *TierChange
}

// Session owns the adaptive quiz state for one run. Not safe for concurrent
// use; the app drives it from a single interaction loop.
type Session struct {
	cfg  Config
	cat  *catalog.Catalog
	rng  *rand.Rand
	tier catalog.Tier

	askedIDs []string
	asked    map[string]bool

	correctCount  int
	totalAnswered int

	pending *catalog.Question

	bonusClaimed bool
}

// NewSession starts an adaptive quiz at the given tier. rng is the random
// source for question selection; pass a seeded source in tests for
// reproducible runs. A nil rng gets a time-seeded one.
func NewSession(cat *catalog.Catalog, start catalog.Tier, rng *rand.Rand, cfg Config) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		cfg:   cfg,
		cat:   cat,
		rng:   rng,
		tier:  start,
		asked: make(map[string]bool),
	}
}

// Tier returns the active difficulty tier.
func (s *Session) Tier() catalog.Tier {
	return s.tier
}

// CorrectCount returns the cumulative correct answers this run.
func (s *Session) CorrectCount() int {
	return s.correctCount
}

// TotalAnswered returns the cumulative answers this run.
func (s *Session) TotalAnswered() int {
	return s.totalAnswered
}

// Accuracy returns correct/total, or 0 before any answer.
func (s *Session) Accuracy() float64 {
	if s.totalAnswered == 0 {
		return 0
	}
	return float64(s.correctCount) / float64(s.totalAnswered)
}

// AskedIDs returns the asked question identifiers in ask order.
func (s *Session) AskedIDs() []string {
	out := make([]string, len(s.askedIDs))
	copy(out, s.askedIDs)
	return out
}

// Pending returns the question awaiting an answer, or nil.
func (s *Session) Pending() *catalog.Question {
	return s.pending
}

// NextQuestion selects an unasked question from the active tier's pool,
// uniformly at random, and makes it pending. If a question is already
// pending it is returned again. An empty candidate pool returns an
// Exhaustion signal instead.
func (s *Session) NextQuestion() (*catalog.Question, *Exhaustion) {
	if s.pending != nil {
		return s.pending, nil
	}

	var candidates []*catalog.Question
	pool := s.cat.Questions(s.tier)
	for i := range pool {
		if !s.asked[pool[i].ID] {
			candidates = append(candidates, &pool[i])
		}
	}

	if len(candidates) == 0 {
		return nil, &Exhaustion{Tier: s.tier}
	}

	s.pending = candidates[s.rng.Intn(len(candidates))]
	return s.pending, nil
}

// SubmitAnswer grades the pending question against the chosen option index,
// updates counters and the tier, and clears the pending question. Promotion
// fires on every PromoteEvery-th cumulative correct answer. Demotion fires
// on an incorrect answer when the record including it has enough answers
// and a running accuracy below the threshold. At most one of the two fires
// per call.
func (s *Session) SubmitAnswer(chosen int) (*AnswerResult, error) {
	if s.pending == nil {
		return nil, fmt.Errorf("%w: no pending question", ErrInvalidState)
	}
	q := s.pending
	if chosen < 0 || chosen >= len(q.Options) {
		return nil, fmt.Errorf("%w: option %d out of range for %q", ErrInvalidInput, chosen, q.ID)
	}

	s.askedIDs = append(s.askedIDs, q.ID)
	s.asked[q.ID] = true
	s.totalAnswered++

	res := &AnswerResult{
		Correct:      chosen == q.Correct,
		CorrectIndex: q.Correct,
		Explanation:  q.Explanation,
	}

	if res.Correct {
		s.correctCount++
		if s.correctCount%s.cfg.PromoteEvery == 0 {
			if next, ok := s.tier.Next(); ok {
				res.TierChange = &TierChange{From: s.tier, To: next, Promoted: true}
				s.tier = next
			}
		}
		// Award reflects the tier after a same-answer promotion.
		res.Points = s.cfg.BasePoints + s.cfg.TierBonus*s.tier.Index()
	} else if s.totalAnswered >= s.cfg.DemoteMinAnswered && s.Accuracy() < s.cfg.DemoteBelow {
		if prev, ok := s.tier.Prev(); ok {
			res.TierChange = &TierChange{From: s.tier, To: prev, Promoted: false}
			s.tier = prev
		}
	}

	s.pending = nil
	return res, nil
}

// AdvanceTier moves the session to the next tier after exhausting the
// current pool. Invalid at the advanced tier, which completes the session
// instead.
func (s *Session) AdvanceTier() error {
	next, ok := s.tier.Next()
	if !ok {
		return fmt.Errorf("%w: advanced pool exhausted, session complete", ErrInvalidState)
	}
	s.tier = next
	return nil
}

// ClaimCompletionBonus returns the completion bonus the first time it is
// called for this run, and 0 afterwards.
func (s *Session) ClaimCompletionBonus() int {
	if s.bonusClaimed {
		return 0
	}
	s.bonusClaimed = true
	return s.cfg.CompletionBonus
}

// Reset restores the session to its initial state at the given tier,
// clearing asked questions, counters and the pending question.
func (s *Session) Reset(start catalog.Tier) {
	s.tier = start
	s.askedIDs = nil
	s.asked = make(map[string]bool)
	s.correctCount = 0
	s.totalAnswered = 0
	s.pending = nil
	s.bonusClaimed = false
}
