// Package engine coordinates the learning flow: it owns the progress ledger
// and the adaptive quiz session, and is the single place where activity
// outcomes turn into points and completion marks. Screens read state and
// call operations here; they never mutate the ledger directly.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mktlab/estratega/internal/adaptive"
	"github.com/mktlab/estratega/internal/cases"
	"github.com/mktlab/estratega/internal/catalog"
	"github.com/mktlab/estratega/internal/diagnostic"
	"github.com/mktlab/estratega/internal/ledger"
)

var (
	// ErrInvalidInput reports a malformed argument, such as an
	// out-of-range option index.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrInvalidState reports an operation invoked before its
	// prerequisites, such as submitting a quiz answer with no active
	// question.
	ErrInvalidState = errors.New("engine: invalid state")
)

// Activity keys tracked for completion alongside per-concept and per-case
// marks.
const (
	diagnosticActivity = "diagnostico"
	quizActivity       = "quiz-adaptativo"
)

// conceptCheckPoints is the award for answering a concept's check question
// correctly.
const conceptCheckPoints = 10

// Certificate gate and award: issuing requires this much overall
// completion, and the first issue earns the bonus.
const (
	certificateThreshold = 70.0
	certificatePoints    = 100
)

// DiagnosticAttempt is one scored placement run.
type DiagnosticAttempt struct {
	ID     string
	At     time.Time
	Result *diagnostic.Result
}

// QuizOutcome wraps an adaptive answer result with the ledger totals after
// the award was applied.
type QuizOutcome struct {
	*adaptive.AnswerResult
	TotalPoints int
	Level       ledger.Level
}

// QuizCompletion reports the end of an adaptive run: the top tier's pool is
// exhausted and the completion bonus, if still unclaimed, was awarded.
type QuizCompletion struct {
	Bonus       int
	TotalPoints int
}

// Certificate is an issued mastery certificate snapshot.
type Certificate struct {
	Level    ledger.Level
	Points   int
	IssuedAt time.Time
}

// Engine is the mutation hub for one learner. Not safe for concurrent use.
type Engine struct {
	cat     *catalog.Catalog
	ledger  *ledger.Ledger
	session *adaptive.Session
	rng     *rand.Rand

	quizCfg adaptive.Config
	caseCfg cases.Config

	attempts    []DiagnosticAttempt
	recommended catalog.Tier
	placed      bool

	certificateIssued bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for question selection. Tests pass a
// seeded source for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithQuizConfig overrides the adaptive quiz thresholds.
func WithQuizConfig(cfg adaptive.Config) Option {
	return func(e *Engine) { e.quizCfg = cfg }
}

// WithCaseConfig overrides the case award policy.
func WithCaseConfig(cfg cases.Config) Option {
	return func(e *Engine) { e.caseCfg = cfg }
}

// New creates an Engine over the given catalog with a fresh ledger.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:     cat,
		ledger:  ledger.New(),
		quizCfg: adaptive.DefaultConfig(),
		caseCfg: cases.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Catalog exposes the loaded content for read-only display.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Ledger exposes progress state for read-only display.
func (e *Engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// ScoreDiagnostic grades a placement run, awards its points, records the
// attempt, and stores the recommended starting tier for the adaptive quiz.
func (e *Engine) ScoreDiagnostic(answers []int) (*diagnostic.Result, error) {
	res, err := diagnostic.Score(answers, e.cat.Diagnostic())
	if err != nil {
		return nil, err
	}

	if err := e.ledger.Award(res.Points()); err != nil {
		return nil, err
	}
	e.ledger.MarkQuizCompleted(diagnosticActivity)

	e.attempts = append(e.attempts, DiagnosticAttempt{
		ID:     uuid.NewString(),
		At:     time.Now(),
		Result: res,
	})
	e.recommended = res.Tier
	e.placed = true
	return res, nil
}

// RecommendedTier returns the starting tier from the latest diagnostic, or
// the basic tier when no diagnostic was taken.
func (e *Engine) RecommendedTier() catalog.Tier {
	if !e.placed {
		return catalog.TierBasic
	}
	return e.recommended
}

// Attempts returns the recorded diagnostic attempts, oldest first.
func (e *Engine) Attempts() []DiagnosticAttempt {
	out := make([]DiagnosticAttempt, len(e.attempts))
	copy(out, e.attempts)
	return out
}

// StartQuiz begins an adaptive run at the recommended tier, replacing any
// run in progress.
func (e *Engine) StartQuiz() {
	e.session = adaptive.NewSession(e.cat, e.RecommendedTier(), e.rng, e.quizCfg)
}

// Session returns the adaptive run in progress, or nil.
func (e *Engine) Session() *adaptive.Session {
	return e.session
}

// NextQuestion advances the adaptive run. On pool exhaustion below the top
// tier it moves the run up a tier and retries; exhausting the top tier ends
// the run with a QuizCompletion. Exactly one of the three returns is set.
func (e *Engine) NextQuestion() (*catalog.Question, *QuizCompletion, error) {
	if e.session == nil {
		return nil, nil, fmt.Errorf("%w: no quiz in progress", ErrInvalidState)
	}

	for {
		q, exh := e.session.NextQuestion()
		if exh == nil {
			return q, nil, nil
		}
		if err := e.session.AdvanceTier(); err == nil {
			continue
		}

		bonus := e.session.ClaimCompletionBonus()
		if bonus > 0 {
			if err := e.ledger.Award(bonus); err != nil {
				return nil, nil, err
			}
		}
		e.ledger.MarkQuizCompleted(quizActivity)
		return nil, &QuizCompletion{Bonus: bonus, TotalPoints: e.ledger.Points()}, nil
	}
}

// SubmitAnswer grades the pending adaptive question and applies the award.
func (e *Engine) SubmitAnswer(chosen int) (*QuizOutcome, error) {
	if e.session == nil {
		return nil, fmt.Errorf("%w: no quiz in progress", ErrInvalidState)
	}

	res, err := e.session.SubmitAnswer(chosen)
	if err != nil {
		return nil, err
	}
	if res.Points > 0 {
		if err := e.ledger.Award(res.Points); err != nil {
			return nil, err
		}
	}
	return &QuizOutcome{
		AnswerResult: res,
		TotalPoints:  e.ledger.Points(),
		Level:        e.ledger.Level(),
	}, nil
}

// ResolveCase grades a decision on the identified case and applies the
// award. With RepeatAwards disabled, a case already resolved earns nothing
// on later resolutions.
func (e *Engine) ResolveCase(id string, chosen int) (*cases.Resolution, error) {
	c, err := e.cat.Case(id)
	if err != nil {
		return nil, err
	}

	res, err := cases.Resolve(c, chosen)
	if err != nil {
		return nil, err
	}

	if !e.caseCfg.RepeatAwards && e.ledger.HasResolvedCase(id) {
		res.Points = 0
	} else if err := e.ledger.Award(res.Points); err != nil {
		return nil, err
	}
	e.ledger.MarkCaseResolved(id)
	return res, nil
}

// RevealConcept marks a concept as studied.
func (e *Engine) RevealConcept(id string) error {
	if _, err := e.cat.Concept(id); err != nil {
		return err
	}
	e.ledger.MarkConceptSeen(id)
	return nil
}

// CheckConcept grades the concept's comprehension question and awards
// points on a correct answer. The concept is marked as studied either way.
func (e *Engine) CheckConcept(id string, chosen int) (bool, error) {
	c, err := e.cat.Concept(id)
	if err != nil {
		return false, err
	}
	if chosen < 0 || chosen >= len(c.Check.Options) {
		return false, fmt.Errorf("%w: option %d out of range for concept %q", ErrInvalidInput, chosen, id)
	}

	e.ledger.MarkConceptSeen(id)
	if chosen != c.Check.Correct {
		return false, nil
	}
	if err := e.ledger.Award(conceptCheckPoints); err != nil {
		return false, err
	}
	return true, nil
}

// TotalTrackable is the number of completion units: every concept, every
// case, the diagnostic, and the adaptive quiz.
func (e *Engine) TotalTrackable() int {
	return len(e.cat.Concepts()) + len(e.cat.Cases()) + 2
}

// CompletionPercentage reports overall completion across all tracked units.
func (e *Engine) CompletionPercentage() float64 {
	return e.ledger.CompletionPercentage(e.TotalTrackable())
}

// CertificateEligible reports whether overall completion has reached the
// certificate threshold.
func (e *Engine) CertificateEligible() bool {
	return e.CompletionPercentage() >= certificateThreshold
}

// GenerateCertificate issues a mastery certificate, awarding the
// certificate bonus the first time. Later calls return a fresh snapshot
// without re-awarding. Below the completion threshold it fails with
// ErrInvalidState.
func (e *Engine) GenerateCertificate() (*Certificate, error) {
	if !e.CertificateEligible() {
		return nil, fmt.Errorf("%w: completion %.1f%% below certificate threshold", ErrInvalidState, e.CompletionPercentage())
	}

	if !e.certificateIssued {
		if err := e.ledger.Award(certificatePoints); err != nil {
			return nil, err
		}
		e.certificateIssued = true
	}
	return &Certificate{
		Level:    e.ledger.Level(),
		Points:   e.ledger.Points(),
		IssuedAt: time.Now(),
	}, nil
}

// ResetProgress returns the learner to a clean slate: points, completion
// marks, diagnostic history, any issued certificate and any quiz in
// progress are all discarded.
func (e *Engine) ResetProgress() {
	e.ledger.Reset()
	e.session = nil
	e.attempts = nil
	e.recommended = catalog.TierBasic
	e.placed = false
	e.certificateIssued = false
}
