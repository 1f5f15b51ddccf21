package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay draws the key reference centred on an otherwise blank screen.
func renderHelpOverlay(width, height int, km keyMap, h help.Model) string {
	h.ShowAll = true
	h.Width = 0

	title := lipgloss.NewStyle().Bold(true).Underline(true).Render("Keybindings")
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		h.FullHelpView(km.FullHelp()),
		"",
		styleMuted().Render("Press ? or Esc to close"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
