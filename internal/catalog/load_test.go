package catalog

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := len(c.Diagnostic()); got != 5 {
		t.Errorf("len(Diagnostic()) = %d, want 5", got)
	}

	for _, tier := range AllTiers() {
		if len(c.Questions(tier)) == 0 {
			t.Errorf("Questions(%s) is empty", tier)
		}
	}

	if got := len(c.Cases()); got != 3 {
		t.Errorf("len(Cases()) = %d, want 3", got)
	}

	if len(c.Concepts()) == 0 {
		t.Error("Concepts() is empty")
	}

	if len(c.Glossary()) == 0 {
		t.Error("Glossary() is empty")
	}
}

func TestLoad_QuestionIDsUnique(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	seen := make(map[string]bool)
	for _, tier := range AllTiers() {
		for _, q := range c.Questions(tier) {
			if seen[q.ID] {
				t.Errorf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestCatalog_CaseLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cs, err := c.Case("caso-frisby")
	if err != nil {
		t.Fatalf("Case(caso-frisby) error: %v", err)
	}
	if len(cs.Options) < 2 {
		t.Errorf("case has %d options, want >= 2", len(cs.Options))
	}

	if _, err := c.Case("caso-inexistente"); !errors.Is(err, ErrUnknownID) {
		t.Errorf("Case(caso-inexistente) error = %v, want ErrUnknownID", err)
	}
}

func TestCatalog_ConceptLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	con, err := c.Concept("marketing6")
	if err != nil {
		t.Fatalf("Concept(marketing6) error: %v", err)
	}
	if con.Name == "" || con.Definition == "" {
		t.Error("concept missing name or definition")
	}

	if _, err := c.Concept("nope"); !errors.Is(err, ErrUnknownID) {
		t.Errorf("Concept(nope) error = %v, want ErrUnknownID", err)
	}
}

func TestTier_Order(t *testing.T) {
	tests := []struct {
		tier  Tier
		index int
		str   string
	}{
		{TierBasic, 0, "basico"},
		{TierIntermediate, 1, "intermedio"},
		{TierAdvanced, 2, "avanzado"},
	}

	for _, tt := range tests {
		if got := tt.tier.Index(); got != tt.index {
			t.Errorf("%s.Index() = %d, want %d", tt.str, got, tt.index)
		}
		if got := tt.tier.String(); got != tt.str {
			t.Errorf("Tier(%d).String() = %q, want %q", tt.tier, got, tt.str)
		}
		parsed, ok := TierFromString(tt.str)
		if !ok || parsed != tt.tier {
			t.Errorf("TierFromString(%q) = %v, %v", tt.str, parsed, ok)
		}
	}
}

func TestTier_NextPrev(t *testing.T) {
	if next, ok := TierBasic.Next(); !ok || next != TierIntermediate {
		t.Errorf("TierBasic.Next() = %v, %v", next, ok)
	}
	if next, ok := TierIntermediate.Next(); !ok || next != TierAdvanced {
		t.Errorf("TierIntermediate.Next() = %v, %v", next, ok)
	}
	if _, ok := TierAdvanced.Next(); ok {
		t.Error("TierAdvanced.Next() should not advance")
	}

	if prev, ok := TierAdvanced.Prev(); !ok || prev != TierIntermediate {
		t.Errorf("TierAdvanced.Prev() = %v, %v", prev, ok)
	}
	if _, ok := TierBasic.Prev(); ok {
		t.Error("TierBasic.Prev() should not demote")
	}
}
