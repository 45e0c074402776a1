package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/router"
	"github.com/mktlab/estratega/internal/screen"
	casescreen "github.com/mktlab/estratega/internal/screens/cases"
	"github.com/mktlab/estratega/internal/screens/concepts"
	"github.com/mktlab/estratega/internal/screens/diagnostic"
	"github.com/mktlab/estratega/internal/screens/glossary"
	"github.com/mktlab/estratega/internal/screens/progress"
	"github.com/mktlab/estratega/internal/screens/quiz"
	"github.com/mktlab/estratega/internal/ui/components"
	"github.com/mktlab/estratega/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	eng        *engine.Engine
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the shared engine.
func New(eng *engine.Engine) *HomeScreen {
	menuLabels := []string{
		"DIAGNÓSTICO INICIAL",
		"CONCEPTOS CLAVE",
		"QUIZ ADAPTATIVO",
		"CASOS PRÁCTICOS",
		"GLOSARIO",
		"MI PROGRESO",
		"SALIR",
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: diagnostic.New(eng)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: concepts.New(eng)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(eng)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: casescreen.New(eng)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: glossary.New(eng)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(eng)}
			}
		}},
		{Label: menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		eng:        eng,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := theme.Title.Width(cw).Render("ESTRATEGA") + "\n" +
		theme.Subtitle.Width(cw).Render("Producto, marca y decisiones de mercado")
	sections = append(sections, title)

	led := h.eng.Ledger()
	stats := fmt.Sprintf(
		"Puntos: %d    Nivel: %s    Avance: %d%%",
		led.Points(),
		led.Level().DisplayName(),
		int(h.eng.CompletionPercentage()),
	)
	sections = append(sections, components.PanelCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats), cw))

	var buttons []string
	for i, label := range h.menuLabels {
		buttons = append(buttons, components.PanelButton(label, i == h.menu.Selected, cw-4))
	}
	sections = append(sections, strings.Join(buttons, "\n"))

	content := strings.Join(sections, "\n\n")
	return components.BoardFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
