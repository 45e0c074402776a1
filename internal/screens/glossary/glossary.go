package glossary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/screen"
	"github.com/mktlab/estratega/internal/ui/components"
	"github.com/mktlab/estratega/internal/ui/layout"
	"github.com/mktlab/estratega/internal/ui/theme"
)

// maxResults caps the visible result list so definitions stay on screen.
const maxResults = 8

// GlossaryScreen searches the term glossary as the learner types.
type GlossaryScreen struct {
	eng   *engine.Engine
	input components.TextInput
}

var _ screen.Screen = (*GlossaryScreen)(nil)

// New creates the glossary screen with an empty query.
func New(eng *engine.Engine) *GlossaryScreen {
	return &GlossaryScreen{
		eng:   eng,
		input: components.NewTextInput("Busca un término...", 40),
	}
}

func (s *GlossaryScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GlossaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GlossaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.input.View() + "\n\n")

	entries := s.eng.Catalog().SearchGlossary(s.input.Value())
	if len(entries) == 0 {
		b.WriteString(theme.Hint.Render("Sin coincidencias."))
	}
	for i, e := range entries {
		if i >= maxResults {
			b.WriteString(theme.Hint.Render("...") + "\n")
			break
		}
		b.WriteString(theme.Selected.Render(e.Term) + "\n")
		b.WriteString(theme.Body.Render(e.Definition) + "\n\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *GlossaryScreen) Title() string {
	return "Glosario"
}

// KeyHints customizes the footer for the search view.
func (s *GlossaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Escribe", Description: "Buscar"},
		{Key: "Esc", Description: "Volver"},
	}
}
