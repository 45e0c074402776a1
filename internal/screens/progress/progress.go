package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/ledger"
	"github.com/mktlab/estratega/internal/screen"
	"github.com/mktlab/estratega/internal/ui/components"
	"github.com/mktlab/estratega/internal/ui/layout"
	"github.com/mktlab/estratega/internal/ui/theme"
)

// ProgressScreen summarizes points, level, and completion, issues the
// mastery certificate, and offers a guarded progress reset.
type ProgressScreen struct {
	eng        *engine.Engine
	confirming bool
	cert       *engine.Certificate
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(eng *engine.Engine) *ProgressScreen {
	return &ProgressScreen{eng: eng}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		s.confirming = true
	case "c":
		s.confirming = false
		if cert, err := s.eng.GenerateCertificate(); err == nil {
			s.cert = cert
		}
	case "enter":
		if s.confirming {
			s.eng.ResetProgress()
			s.confirming = false
			s.cert = nil
		}
	default:
		s.confirming = false
	}

	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	led := s.eng.Ledger()
	cat := s.eng.Catalog()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Mi progreso") + "\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Puntos: %d", led.Points())) + "\n")
	b.WriteString(theme.Body.Render("Nivel: "+led.Level().DisplayName()) + "\n\n")

	if toNext, ok := ledger.ProgressToNext(led.Points()); ok {
		bar := components.NewProgressBar("Hacia el siguiente nivel", toNext, true, cw-8)
		b.WriteString(bar.View() + "\n\n")
	} else {
		b.WriteString(theme.Correct.Render("Has alcanzado el nivel máximo.") + "\n\n")
	}

	overall := components.NewProgressBar("Avance del curso", s.eng.CompletionPercentage()/100, true, cw-8)
	b.WriteString(overall.View() + "\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Conceptos estudiados: %d de %d", led.ConceptsSeen(), len(cat.Concepts()))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Casos resueltos: %d de %d", led.CasesResolved(), len(cat.Cases()))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Actividades completadas: %d", led.QuizzesCompleted())) + "\n\n")

	if attempts := s.eng.Attempts(); len(attempts) > 0 {
		last := attempts[len(attempts)-1]
		b.WriteString(theme.Hint.Render(fmt.Sprintf(
			"Último diagnóstico: %.0f%% — nivel %s",
			last.Result.Percentage, last.Result.Tier.DisplayName())) + "\n\n")
	}

	b.WriteString(s.viewCertificate(cw))

	if s.confirming {
		b.WriteString(theme.Incorrect.Render("¿Reiniciar todo el progreso? Enter para confirmar, cualquier otra tecla para cancelar."))
	} else {
		b.WriteString(theme.Hint.Render("Pulsa r para reiniciar tu progreso."))
	}

	return components.PanelCard(b.String(), cw)
}

// viewCertificate renders the issued certificate, the generation prompt when
// eligible, or the requirement hint.
func (s *ProgressScreen) viewCertificate(cw int) string {
	if s.cert != nil {
		var c strings.Builder
		c.WriteString(theme.Title.Render("Certificado de Dominio") + "\n\n")
		c.WriteString(theme.Body.Render("Estrategia de Producto y Marca") + "\n\n")
		c.WriteString(theme.Body.Render("Nivel alcanzado: "+s.cert.Level.DisplayName()) + "\n")
		c.WriteString(theme.Body.Render(fmt.Sprintf("Puntos totales: %d", s.cert.Points)) + "\n")
		c.WriteString(theme.Hint.Render("Fecha: " + s.cert.IssuedAt.Format("02/01/2006")))
		return components.PanelCard(c.String(), cw-4) + "\n\n"
	}
	if s.eng.CertificateEligible() {
		return theme.Correct.Render("Has alcanzado el avance mínimo. Pulsa c para generar tu certificado.") + "\n\n"
	}
	return theme.Hint.Render("Certificado disponible al completar el 70% de las actividades.") + "\n\n"
}

func (s *ProgressScreen) Title() string {
	return "Progreso"
}

// KeyHints customizes the footer for the summary view.
func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirmar reinicio"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "r", Description: "Reiniciar"},
		{Key: "Esc", Description: "Volver"},
	}
	if s.eng.CertificateEligible() && s.cert == nil {
		hints = append([]layout.KeyHint{{Key: "c", Description: "Certificado"}}, hints...)
	}
	return hints
}
