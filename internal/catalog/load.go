package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/catalog.json
var catalogJSON []byte

//go:embed data/catalog.schema.json
var catalogSchemaJSON []byte

// ErrUnknownID is returned when a content lookup references an identifier
// that does not exist in the catalog.
var ErrUnknownID = errors.New("unknown content identifier")

// Catalog holds the full static content set: diagnostic key, tiered question
// bank, concept cards, decision cases and glossary. Loaded once, never mutated.
type Catalog struct {
	diagnostic []DiagnosticItem
	questions  map[Tier][]Question
	concepts   []Concept
	cases      []Case
	glossary   []GlossaryEntry

	conceptByID map[string]*Concept
	caseByID    map[string]*Case
}

type rawCatalog struct {
	Diagnostic []DiagnosticItem      `json:"diagnostic"`
	Questions  map[string][]Question `json:"questions"`
	Concepts   []Concept             `json:"concepts"`
	Cases      []Case                `json:"cases"`
	Glossary   []GlossaryEntry       `json:"glossary"`
}

// Load parses and validates the embedded content catalog.
// Any schema violation or internal inconsistency (duplicate or dangling
// identifiers, out-of-range correct indexes) fails the load.
func Load() (*Catalog, error) {
	if err := validateSchema(catalogJSON); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var raw rawCatalog
	if err := json.Unmarshal(catalogJSON, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		diagnostic:  raw.Diagnostic,
		questions:   make(map[Tier][]Question, len(raw.Questions)),
		concepts:    raw.Concepts,
		cases:       raw.Cases,
		glossary:    raw.Glossary,
		conceptByID: make(map[string]*Concept, len(raw.Concepts)),
		caseByID:    make(map[string]*Case, len(raw.Cases)),
	}

	for name, qs := range raw.Questions {
		tier, ok := TierFromString(name)
		if !ok {
			return nil, fmt.Errorf("question bank: unknown tier %q", name)
		}
		c.questions[tier] = qs
	}

	if err := c.check(); err != nil {
		return nil, fmt.Errorf("catalog consistency: %w", err)
	}

	for i := range c.concepts {
		c.conceptByID[c.concepts[i].ID] = &c.concepts[i]
	}
	for i := range c.cases {
		c.caseByID[c.cases[i].ID] = &c.cases[i]
	}

	return c, nil
}

// validateSchema checks the raw document against the embedded JSON Schema.
func validateSchema(doc []byte) error {
	var parsedDoc any
	if err := json.Unmarshal(doc, &parsedDoc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	var parsedSchema any
	if err := json.Unmarshal(catalogSchemaJSON, &parsedSchema); err != nil {
		return fmt.Errorf("invalid schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	const url = "schema://catalog.schema.json"
	if err := compiler.AddResource(url, parsedSchema); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(parsedDoc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// check enforces the invariants the schema cannot express.
func (c *Catalog) check() error {
	for i, item := range c.diagnostic {
		if item.Correct < 0 || item.Correct >= len(item.Options) {
			return fmt.Errorf("diagnostic item %d: correct index %d out of range", i, item.Correct)
		}
	}

	seen := make(map[string]bool)
	for _, tier := range AllTiers() {
		if len(c.questions[tier]) == 0 {
			return fmt.Errorf("tier %s: empty question pool", tier)
		}
		for _, q := range c.questions[tier] {
			if seen[q.ID] {
				return fmt.Errorf("question %q: duplicate identifier", q.ID)
			}
			seen[q.ID] = true
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("question %q: correct index %d out of range", q.ID, q.Correct)
			}
		}
	}

	conceptIDs := make(map[string]bool)
	for _, con := range c.concepts {
		if conceptIDs[con.ID] {
			return fmt.Errorf("concept %q: duplicate identifier", con.ID)
		}
		conceptIDs[con.ID] = true
		if con.Check.Correct < 0 || con.Check.Correct >= len(con.Check.Options) {
			return fmt.Errorf("concept %q: check correct index out of range", con.ID)
		}
	}

	caseIDs := make(map[string]bool)
	for _, cs := range c.cases {
		if caseIDs[cs.ID] {
			return fmt.Errorf("case %q: duplicate identifier", cs.ID)
		}
		caseIDs[cs.ID] = true
		if lo.CountBy(cs.Options, func(o CaseOption) bool { return o.Sound }) == 0 {
			return fmt.Errorf("case %q: no sound option", cs.ID)
		}
	}

	if len(lo.UniqBy(c.glossary, func(e GlossaryEntry) string { return e.Term })) != len(c.glossary) {
		return fmt.Errorf("glossary: duplicate term")
	}

	return nil
}

// Diagnostic returns the placement quiz answer key in order.
func (c *Catalog) Diagnostic() []DiagnosticItem {
	return c.diagnostic
}

// Questions returns the question pool for a tier in authored order.
func (c *Catalog) Questions(t Tier) []Question {
	return c.questions[t]
}

// Concepts returns all concept cards in authored order.
func (c *Catalog) Concepts() []Concept {
	return c.concepts
}

// Concept looks up a concept card by identifier.
func (c *Catalog) Concept(id string) (*Concept, error) {
	con, ok := c.conceptByID[id]
	if !ok {
		return nil, fmt.Errorf("concept %q: %w", id, ErrUnknownID)
	}
	return con, nil
}

// Cases returns all decision cases in authored order.
func (c *Catalog) Cases() []Case {
	return c.cases
}

// Case looks up a decision case by identifier.
func (c *Catalog) Case(id string) (*Case, error) {
	cs, ok := c.caseByID[id]
	if !ok {
		return nil, fmt.Errorf("case %q: %w", id, ErrUnknownID)
	}
	return cs, nil
}

// Glossary returns all glossary entries in authored order.
func (c *Catalog) Glossary() []GlossaryEntry {
	return c.glossary
}
