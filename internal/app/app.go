package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/catalog"
	"github.com/mktlab/estratega/internal/engine"
	"github.com/mktlab/estratega/internal/router"
	"github.com/mktlab/estratega/internal/screen"
	"github.com/mktlab/estratega/internal/screens/home"
	"github.com/mktlab/estratega/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *engine.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(eng *engine.Engine) AppModel {
	return AppModel{
		engine: eng,
		router: router.New(home.New(eng)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	led := m.engine.Ledger()
	header := layout.RenderHeader(title, led.Points(), led.Level().DisplayName(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run loads the catalog, builds the engine, and starts the Bubble Tea
// program.
func Run() error {
	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error cargando contenido:", err)
		return err
	}

	p := tea.NewProgram(newAppModel(engine.New(cat)))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error ejecutando el programa:", err)
		return err
	}
	return nil
}
