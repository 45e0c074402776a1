package adaptive

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mktlab/estratega/internal/catalog"
)

func newTestSession(t *testing.T, start catalog.Tier) *Session {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewSession(cat, start, rand.New(rand.NewSource(1)), DefaultConfig())
}

// answer submits a correct or incorrect answer to the next question.
func answer(t *testing.T, s *Session, correct bool) *AnswerResult {
	t.Helper()
	q, exh := s.NextQuestion()
	if exh != nil {
		t.Fatalf("unexpected exhaustion at tier %s", exh.Tier)
	}
	chosen := q.Correct
	if !correct {
		chosen = (q.Correct + 1) % len(q.Options)
	}
	res, err := s.SubmitAnswer(chosen)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	return res
}

func TestPromotionOnThirdCorrect(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	if res := answer(t, s, true); res.TierChange != nil {
		t.Fatalf("tier changed after 1 correct: %+v", res.TierChange)
	}
	if res := answer(t, s, true); res.TierChange != nil {
		t.Fatalf("tier changed after 2 correct: %+v", res.TierChange)
	}
	res := answer(t, s, true)
	if res.TierChange == nil || !res.TierChange.Promoted {
		t.Fatalf("expected promotion on 3rd correct, got %+v", res.TierChange)
	}
	if s.Tier() != catalog.TierIntermediate {
		t.Fatalf("tier = %s, want %s", s.Tier(), catalog.TierIntermediate)
	}
}

func TestPointsReflectPostPromotionTier(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	first := answer(t, s, true)
	if first.Points != 10 {
		t.Fatalf("basic answer points = %d, want 10", first.Points)
	}
	answer(t, s, true)
	// Third correct promotes to intermediate before the award.
	third := answer(t, s, true)
	if third.Points != 15 {
		t.Fatalf("promoting answer points = %d, want 15", third.Points)
	}
}

func TestNoPromotionPastAdvanced(t *testing.T) {
	s := newTestSession(t, catalog.TierAdvanced)

	for i := 0; i < 3; i++ {
		res := answer(t, s, true)
		if res.TierChange != nil {
			t.Fatalf("answer %d changed tier: %+v", i+1, res.TierChange)
		}
		if res.Correct && res.Points != 20 {
			t.Fatalf("advanced answer points = %d, want 20", res.Points)
		}
	}
	if s.Tier() != catalog.TierAdvanced {
		t.Fatalf("tier = %s, want advanced", s.Tier())
	}
}

func TestDemotionOnLowAccuracy(t *testing.T) {
	s := newTestSession(t, catalog.TierAdvanced)

	answer(t, s, true)
	if res := answer(t, s, false); res.TierChange != nil {
		t.Fatalf("demoted before min answered reached: %+v", res.TierChange)
	}
	// The 3rd answer brings the record to 1 of 3, below 50%.
	res := answer(t, s, false)
	if res.TierChange == nil || res.TierChange.Promoted {
		t.Fatalf("expected demotion, got %+v", res.TierChange)
	}
	if s.Tier() != catalog.TierIntermediate {
		t.Fatalf("tier = %s, want %s", s.Tier(), catalog.TierIntermediate)
	}
}

func TestDemotionAfterLateCorrect(t *testing.T) {
	s := newTestSession(t, catalog.TierAdvanced)

	answer(t, s, false)
	answer(t, s, false)
	// A correct 3rd answer keeps the tier: demotion only fires on a miss.
	if res := answer(t, s, true); res.TierChange != nil {
		t.Fatalf("correct answer moved the tier: %+v", res.TierChange)
	}
	res := answer(t, s, false)
	if res.TierChange == nil || res.TierChange.Promoted {
		t.Fatalf("expected demotion on 4th answer, got %+v", res.TierChange)
	}
	if s.Tier() != catalog.TierIntermediate {
		t.Fatalf("tier = %s, want %s", s.Tier(), catalog.TierIntermediate)
	}
}

func TestNoDemotionBeforeMinAnswered(t *testing.T) {
	s := newTestSession(t, catalog.TierIntermediate)

	if res := answer(t, s, false); res.TierChange != nil {
		t.Fatalf("demoted after 1 answer: %+v", res.TierChange)
	}
	if res := answer(t, s, false); res.TierChange != nil {
		t.Fatalf("demoted after 2 answers: %+v", res.TierChange)
	}
	if s.Tier() != catalog.TierIntermediate {
		t.Fatalf("tier = %s, want intermediate", s.Tier())
	}
}

func TestNoDemotionBelowBasic(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	for i := 0; i < 4; i++ {
		if res := answer(t, s, false); res.TierChange != nil {
			t.Fatalf("basic tier demoted: %+v", res.TierChange)
		}
	}
	if s.Tier() != catalog.TierBasic {
		t.Fatalf("tier = %s, want basic", s.Tier())
	}
}

func TestExhaustionWithoutRepeats(t *testing.T) {
	s := newTestSession(t, catalog.TierAdvanced)

	seen := make(map[string]bool)
	pool := len(s.cat.Questions(catalog.TierAdvanced))
	for i := 0; i < pool; i++ {
		q, exh := s.NextQuestion()
		if exh != nil {
			t.Fatalf("exhausted after %d of %d questions", i, pool)
		}
		if seen[q.ID] {
			t.Fatalf("question %q asked twice", q.ID)
		}
		seen[q.ID] = true
		// Correct answers at the top tier cannot move the tier either way.
		if _, err := s.SubmitAnswer(q.Correct); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	_, exh := s.NextQuestion()
	if exh == nil {
		t.Fatal("expected exhaustion after draining the pool")
	}
	if exh.Tier != catalog.TierAdvanced {
		t.Fatalf("exhaustion tier = %s, want advanced", exh.Tier)
	}
}

func TestNextQuestionIdempotentWhilePending(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	q1, _ := s.NextQuestion()
	q2, _ := s.NextQuestion()
	if q1.ID != q2.ID {
		t.Fatalf("pending question changed: %q then %q", q1.ID, q2.ID)
	}
}

func TestSubmitWithoutPending(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	if _, err := s.SubmitAnswer(0); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
}

func TestSubmitOutOfRangeKeepsPending(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	q, _ := s.NextQuestion()
	if _, err := s.SubmitAnswer(len(q.Options)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if s.Pending() == nil || s.Pending().ID != q.ID {
		t.Fatal("pending question lost after rejected input")
	}
}

func TestAdvanceTier(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	if err := s.AdvanceTier(); err != nil {
		t.Fatalf("AdvanceTier: %v", err)
	}
	if s.Tier() != catalog.TierIntermediate {
		t.Fatalf("tier = %s, want intermediate", s.Tier())
	}
	s.tier = catalog.TierAdvanced
	if err := s.AdvanceTier(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
}

func TestCompletionBonusOneShot(t *testing.T) {
	s := newTestSession(t, catalog.TierAdvanced)

	if got := s.ClaimCompletionBonus(); got != 100 {
		t.Fatalf("first claim = %d, want 100", got)
	}
	if got := s.ClaimCompletionBonus(); got != 0 {
		t.Fatalf("second claim = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(t, catalog.TierBasic)

	answer(t, s, true)
	answer(t, s, true)
	s.ClaimCompletionBonus()
	s.Reset(catalog.TierIntermediate)

	if s.Tier() != catalog.TierIntermediate {
		t.Fatalf("tier = %s, want intermediate", s.Tier())
	}
	if s.TotalAnswered() != 0 || s.CorrectCount() != 0 || len(s.AskedIDs()) != 0 {
		t.Fatal("counters not cleared after Reset")
	}
	if got := s.ClaimCompletionBonus(); got != 100 {
		t.Fatalf("bonus not reclaimable after Reset, got %d", got)
	}
}
