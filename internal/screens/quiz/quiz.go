package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/router"
	"github.com/mktlab/estratega/internal/screen"
	"github.com/mktlab/estratega/internal/ui/components"
	"github.com/mktlab/estratega/internal/ui/layout"
	"github.com/mktlab/estratega/internal/ui/theme"
)

// QuizScreen runs the adaptive quiz: questions at the learner's tier,
// feedback after each answer, tier changes announced as they happen.
type QuizScreen struct {
	eng        *engine.Engine
	choice     components.MultiChoice
	outcome    *engine.QuizOutcome
	completion *engine.QuizCompletion
	err        error
}

var _ screen.Screen = (*QuizScreen)(nil)

// New starts a fresh adaptive run at the recommended tier.
func New(eng *engine.Engine) *QuizScreen {
	s := &QuizScreen{eng: eng}
	eng.StartQuiz()
	s.advance()
	return s
}

// advance pulls the next question or records run completion.
func (s *QuizScreen) advance() {
	q, done, err := s.eng.NextQuestion()
	if err != nil {
		s.err = err
		return
	}
	if done != nil {
		s.completion = done
		return
	}
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.err != nil || s.completion != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Feedback phase: wait for enter to continue.
	if s.outcome != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.outcome = nil
			s.advance()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Submitted {
		s.outcome, s.err = s.eng.SubmitAnswer(s.choice.ChosenIndex)
	}

	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.err != nil {
		return components.PanelCard(theme.Incorrect.Render(s.err.Error()), cw)
	}
	if s.completion != nil {
		return s.viewCompletion(cw)
	}

	sess := s.eng.Session()
	head := theme.Hint.Render(fmt.Sprintf(
		"Nivel %s   Respondidas: %d   Aciertos: %d",
		sess.Tier().DisplayName(), sess.TotalAnswered(), sess.CorrectCount(),
	))

	body := head + "\n\n" + s.choice.View()
	if s.outcome != nil {
		body += "\n" + s.viewFeedback()
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (s *QuizScreen) viewFeedback() string {
	o := s.outcome

	var b strings.Builder
	if o.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("¡Correcto!  +%d puntos", o.Points)) + "\n")
	} else {
		b.WriteString(theme.Incorrect.Render("Incorrecto.") + "\n")
	}
	if o.Explanation != "" {
		b.WriteString(theme.Body.Render(o.Explanation) + "\n")
	}
	if tc := o.TierChange; tc != nil {
		if tc.Promoted {
			b.WriteString(theme.Correct.Render("Subes al nivel "+tc.To.DisplayName()) + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("Bajas al nivel "+tc.To.DisplayName()) + "\n")
		}
	}
	b.WriteString("\n" + theme.Hint.Render("Enter para continuar"))
	return b.String()
}

func (s *QuizScreen) viewCompletion(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("¡Quiz completado!") + "\n\n")
	if s.completion.Bonus > 0 {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Agotaste todas las preguntas: +%d puntos extra", s.completion.Bonus)) + "\n")
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("Puntos totales: %d", s.completion.TotalPoints)) + "\n\n")
	b.WriteString(components.NewButton("Volver al inicio", true, nil).View())
	return components.PanelCard(b.String(), cw)
}

func (s *QuizScreen) Title() string {
	return "Quiz adaptativo"
}

// KeyHints customizes the footer per quiz phase.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.err != nil || s.completion != nil || s.outcome != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Volver"},
	}
}
