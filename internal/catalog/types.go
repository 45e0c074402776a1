package catalog

// Tier represents an adaptive difficulty tier, ordered from easiest to hardest.
type Tier int

const (
	TierBasic Tier = iota
	TierIntermediate
	TierAdvanced
)

// AllTiers returns the tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierBasic, TierIntermediate, TierAdvanced}
}

// Index returns the ordinal position of the tier (basic=0).
func (t Tier) Index() int {
	return int(t)
}

// Next returns the next harder tier and true, or the same tier and false
// when already at advanced.
func (t Tier) Next() (Tier, bool) {
	if t >= TierAdvanced {
		return t, false
	}
	return t + 1, true
}

// Prev returns the next easier tier and true, or the same tier and false
// when already at basic.
func (t Tier) Prev() (Tier, bool) {
	if t <= TierBasic {
		return t, false
	}
	return t - 1, true
}

// String returns the stable identifier used in content files.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basico"
	case TierIntermediate:
		return "intermedio"
	case TierAdvanced:
		return "avanzado"
	default:
		return "desconocido"
	}
}

// DisplayName returns the label shown in the UI.
func (t Tier) DisplayName() string {
	switch t {
	case TierBasic:
		return "Básico"
	case TierIntermediate:
		return "Intermedio"
	case TierAdvanced:
		return "Avanzado"
	default:
		return "?"
	}
}

// TierFromString parses a tier identifier from content files.
func TierFromString(s string) (Tier, bool) {
	switch s {
	case "basico":
		return TierBasic, true
	case "intermedio":
		return TierIntermediate, true
	case "avanzado":
		return TierAdvanced, true
	}
	return TierBasic, false
}

// Question is a single multiple-choice question from the tiered bank.
// Immutable once loaded.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Topic       string   `json:"topic"`
}

// DiagnosticItem is one entry of the fixed placement quiz answer key.
type DiagnosticItem struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Concept is a concept card with its flash check question.
type Concept struct {
	ID         string   `json:"id"`
	Chapter    string   `json:"chapter"`
	Name       string   `json:"name"`
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Check      Question `json:"check"`
}

// CaseOption is one choice inside a decision case, with its authored outcome.
type CaseOption struct {
	Text        string `json:"text"`
	Consequence string `json:"consequence"`
	Lesson      string `json:"lesson"`
	Sound       bool   `json:"sound"`
}

// Case is a branching decision scenario with predetermined consequences.
type Case struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Context     string       `json:"context"`
	Options     []CaseOption `json:"options"`
	FinalLesson string       `json:"final_lesson"`
}

// GlossaryEntry is a term/definition pair.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}
