package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/gannonh/kata-tui/internal/model"
)

func newHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorLabel)
	h.Styles.ShortDesc = styleMuted()
	h.Styles.ShortSeparator = styleMuted()
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(colorLabel)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(colorSurfaceFg)
	h.Styles.FullSeparator = styleMuted()
	return h
}

// paneBadge names the pane or mode that currently receives keys.
func paneBadge(s *appState) string {
	switch s.mode {
	case modeSearch:
		return "SEARCH"
	case modeHelp:
		return "HELP"
	}
	if s.focus == paneDetail {
		return "DETAIL"
	}
	return "TREE"
}

func planningPosition(ps model.PlanningState) string {
	if ps.CurrentPhase <= 0 {
		return "No project loaded"
	}
	out := fmt.Sprintf("Phase %d", ps.CurrentPhase)
	if ps.CurrentPhaseName != "" {
		out += " | " + ps.CurrentPhaseName
	}
	if ps.Status != "" {
		out += " | " + ps.Status
	}
	return out
}

// searchSummary is "/query [i/n]", "/query [no matches]" or "/" for an empty query.
func searchSummary(s *appState) string {
	out := "/" + s.query
	switch {
	case len(s.matches) > 0:
		out += fmt.Sprintf(" [%d/%d]", s.currentMatch+1, len(s.matches))
	case s.query != "":
		out += " [no matches]"
	}
	return out
}

func renderStatusBar(width int, s *appState, ps model.PlanningState, km keyMap, h help.Model) string {
	bar := lipgloss.NewStyle().Background(colorStatusBarBg)
	badge := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true).
		Render(" " + paneBadge(s) + " ")

	var left string
	if s.mode == modeSearch {
		style := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		if s.query != "" && len(s.matches) == 0 {
			style = styleError()
		}
		left = badge + " " + style.Render(searchSummary(s))
		h.Width = width - xansi.StringWidth(left) - 3
		left += "   " + h.ShortHelpView(km.searchHelp())
	} else {
		left = badge + " " + lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(planningPosition(ps))
		if s.query != "" {
			left += " " + styleMuted().Render(searchSummary(s))
		}
		h.Width = width - xansi.StringWidth(left) - 3
		left += " | " + h.ShortHelpView(km.ShortHelp())
	}
	return bar.Render(normalizePane(left, width, statusBarHeight))
}
