package cases

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/cases"
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
	modeDecide
	modeOutcome
)

// CasesScreen walks practical mini-cases: a scenario, a decision, and the
// consequences of that decision.
type CasesScreen struct {
	eng        *engine.Engine
	mode       mode
	selected   int
	option     int
	current    *catalog.Case
	resolution *cases.Resolution
	err        error
}

var _ screen.Screen = (*CasesScreen)(nil)

// New creates the cases screen at the list view.
func New(eng *engine.Engine) *CasesScreen {
	return &CasesScreen{eng: eng}
}

func (s *CasesScreen) Init() tea.Cmd {
	return nil
}

func (s *CasesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	switch s.mode {
	case modeList:
		list := s.eng.Catalog().Cases()
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
			s.option = 0
			s.mode = modeDecide
		}

	case modeDecide:
		switch key {
		case "up", "k":
			if s.option > 0 {
				s.option--
			}
		case "down", "j":
			if s.option < len(s.current.Options)-1 {
				s.option++
			}
		case "enter":
			s.resolution, s.err = s.eng.ResolveCase(s.current.ID, s.option)
			s.mode = modeOutcome
		}

	case modeOutcome:
		if key == "enter" {
			s.current = nil
			s.resolution = nil
			s.err = nil
			s.mode = modeList
		}
	}

	return s, nil
}

func (s *CasesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	switch s.mode {
	case modeDecide:
		return s.viewDecide(cw)
	case modeOutcome:
		return s.viewOutcome(cw)
	default:
		return s.viewList(cw)
	}
}

func (s *CasesScreen) viewList(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Casos prácticos") + "\n\n")

	for i, c := range s.eng.Catalog().Cases() {
		marker := "  "
		if s.eng.Ledger().HasResolvedCase(c.ID) {
			marker = "✓ "
		}
		line := marker + c.Title
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *CasesScreen) viewDecide(cw int) string {
	c := s.current

	var b strings.Builder
	b.WriteString(theme.Title.Render(c.Title) + "\n\n")
	b.WriteString(theme.Body.Render(c.Context) + "\n\n")
	b.WriteString(theme.Hint.Render("¿Qué decides?") + "\n\n")

	for i, opt := range c.Options {
		if i == s.option {
			b.WriteString(theme.Selected.Render("▸ "+opt.Text) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+opt.Text) + "\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *CasesScreen) viewOutcome(cw int) string {
	if s.err != nil {
		return components.PanelCard(theme.Incorrect.Render(s.err.Error()), cw)
	}
	r := s.resolution

	var b strings.Builder
	if r.Sound {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Decisión acertada  +%d puntos", r.Points)) + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Decisión arriesgada  +%d puntos por el intento", r.Points)) + "\n\n")
	}
	b.WriteString(theme.Body.Render(r.Consequence) + "\n\n")
	b.WriteString(theme.Body.Render("Lección: "+r.Lesson) + "\n\n")
	b.WriteString(theme.Hint.Render(r.FinalLesson) + "\n\n")
	b.WriteString(theme.Hint.Render("Enter para volver a la lista"))

	return components.PanelCard(b.String(), cw)
}

func (s *CasesScreen) Title() string {
	return "Casos"
}

// KeyHints customizes the footer per view.
func (s *CasesScreen) KeyHints() []layout.KeyHint {
	if s.mode == modeOutcome {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Volver"},
	}
}
