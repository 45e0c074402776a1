package diagnostic

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	diag "github.com/mktlab/estratega/internal/diagnostic"
	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/router"
	"github.com/mktlab/estratega/internal/screen"
	"github.com/mktlab/estratega/internal/ui/components"
	"github.com/mktlab/estratega/internal/ui/layout"
	"github.com/mktlab/estratega/internal/ui/theme"
)

// DiagnosticScreen runs the placement questionnaire and shows the
// recommended starting tier.
type DiagnosticScreen struct {
	eng     *engine.Engine
	index   int
	choice  components.MultiChoice
	answers []int
	result  *diag.Result
	err     error
}

var _ screen.Screen = (*DiagnosticScreen)(nil)

// New creates the diagnostic screen starting at the first question.
func New(eng *engine.Engine) *DiagnosticScreen {
	s := &DiagnosticScreen{eng: eng}
	s.loadQuestion()
	return s
}

func (s *DiagnosticScreen) loadQuestion() {
	items := s.eng.Catalog().Diagnostic()
	if s.index < len(items) {
		item := items[s.index]
		s.choice = components.NewMultiChoice(item.Prompt, item.Options, item.Correct)
	}
}

func (s *DiagnosticScreen) Init() tea.Cmd {
	return nil
}

func (s *DiagnosticScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.result != nil || s.err != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Submitted {
		s.answers = append(s.answers, s.choice.ChosenIndex)
		s.index++
		if s.index < len(s.eng.Catalog().Diagnostic()) {
			s.loadQuestion()
		} else {
			s.result, s.err = s.eng.ScoreDiagnostic(s.answers)
		}
	}

	return s, cmd
}

func (s *DiagnosticScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.err != nil {
		return components.PanelCard(theme.Incorrect.Render(s.err.Error()), cw)
	}
	if s.result != nil {
		return s.viewResult(cw)
	}

	total := len(s.eng.Catalog().Diagnostic())
	bar := components.NewProgressBar(
		fmt.Sprintf("Pregunta %d de %d", s.index+1, total),
		float64(s.index)/float64(total),
		false,
		cw,
	)

	body := bar.View() + "\n\n" + s.choice.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (s *DiagnosticScreen) viewResult(cw int) string {
	r := s.result

	var b strings.Builder
	b.WriteString(theme.Title.Render("Resultado del diagnóstico") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Respuestas correctas: %d de %d (%.0f%%)",
		r.CorrectCount, len(r.PerAnswer), r.Percentage)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Puntos obtenidos: %d", r.Points())) + "\n\n")
	b.WriteString(theme.Correct.Render("Nivel recomendado: "+r.Tier.DisplayName()) + "\n\n")
	b.WriteString(theme.Hint.Render("El quiz adaptativo comenzará en este nivel.") + "\n\n")
	b.WriteString(components.NewButton("Volver al inicio", true, nil).View())

	return components.PanelCard(b.String(), cw)
}

func (s *DiagnosticScreen) Title() string {
	return "Diagnóstico"
}

// KeyHints customizes the footer while the questionnaire is active.
func (s *DiagnosticScreen) KeyHints() []layout.KeyHint {
	if s.result != nil || s.err != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Volver al inicio"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Volver"},
	}
}
