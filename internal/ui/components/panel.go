package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mktlab/estratega/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// BoardFrame wraps content in a double-border frame, centering vertically
// and horizontally within the given dimensions.
func BoardFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// PanelCard wraps content in a rounded-border card at the given content width.
func PanelCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// PanelButton renders a wide centered button for stacked menus.
func PanelButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
