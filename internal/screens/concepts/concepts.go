package concepts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/catalog"
	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/screen"
	"github.com/mktlab/estratega/internal/ui/components"
	"github.com/mktlab/estratega/internal/ui/layout"
	"github.com/mktlab/estratega/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeDetail
	modeCheck
	modeFeedback
)

// ConceptsScreen browses the concept library. Each concept shows its
// definition and example, followed by a comprehension question.
type ConceptsScreen struct {
	eng      *engine.Engine
	mode     mode
	selected int
	current  *catalog.Concept
	choice   components.MultiChoice
	passed   bool
	err      error
}

var _ screen.Screen = (*ConceptsScreen)(nil)

// New creates the concepts screen at the list view.
func New(eng *engine.Engine) *ConceptsScreen {
	return &ConceptsScreen{eng: eng}
}

func (s *ConceptsScreen) Init() tea.Cmd {
	return nil
}

func (s *ConceptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	switch s.mode {
	case modeList:
		list := s.eng.Catalog().Concepts()
		switch key {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(list)-1 {
				s.selected++
			}
		case "enter":
			c := list[s.selected]
			s.current = &c
			s.err = s.eng.RevealConcept(c.ID)
			s.mode = modeDetail
		}

	case modeDetail:
		if key == "enter" {
			s.choice = components.NewMultiChoice(
				s.current.Check.Prompt, s.current.Check.Options, s.current.Check.Correct)
			s.mode = modeCheck
		}

	case modeCheck:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.passed, s.err = s.eng.CheckConcept(s.current.ID, s.choice.ChosenIndex)
			s.mode = modeFeedback
		}
		return s, cmd

	case modeFeedback:
		if key == "enter" {
			s.current = nil
			s.mode = modeList
		}
	}

	return s, nil
}

func (s *ConceptsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	switch s.mode {
	case modeDetail:
		return s.viewDetail(cw)
	case modeCheck, modeFeedback:
		return s.viewCheck(cw)
	default:
		return s.viewList(cw)
	}
}

func (s *ConceptsScreen) viewList(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Conceptos clave") + "\n\n")

	for i, c := range s.eng.Catalog().Concepts() {
		marker := "  "
		if s.eng.Ledger().HasSeenConcept(c.ID) {
			marker = "✓ "
		}
		line := fmt.Sprintf("%s%s — %s", marker, c.Chapter, c.Name)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *ConceptsScreen) viewDetail(cw int) string {
	c := s.current

	var b strings.Builder
	b.WriteString(theme.Title.Render(c.Name) + "\n")
	b.WriteString(theme.Subtitle.Render(c.Chapter) + "\n\n")
	b.WriteString(theme.Body.Render(c.Definition) + "\n\n")
	b.WriteString(theme.Hint.Render("Ejemplo: "+c.Example) + "\n\n")
	b.WriteString(theme.Hint.Render("Enter para comprobar lo aprendido"))

	return components.PanelCard(b.String(), cw)
}

func (s *ConceptsScreen) viewCheck(cw int) string {
	body := s.choice.View()

	if s.mode == modeFeedback {
		if s.err != nil {
			body += "\n" + theme.Incorrect.Render(s.err.Error())
		} else if s.passed {
			body += "\n" + theme.Correct.Render("¡Correcto! +10 puntos")
		} else {
			body += "\n" + theme.Incorrect.Render("Repasa la definición e inténtalo de nuevo más adelante.")
		}
		body += "\n\n" + theme.Hint.Render("Enter para volver a la lista")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (s *ConceptsScreen) Title() string {
	return "Conceptos"
}

// KeyHints customizes the footer per view.
func (s *ConceptsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeDetail, modeFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Esc", Description: "Volver"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Esc", Description: "Volver"},
		}
	}
}
