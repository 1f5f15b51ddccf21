package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/gannonh/kata-tui/internal/statusutil"
)

// treeDelegate renders one tree row per line. It reads the expansion state
// for twisties and never changes it.
type treeDelegate struct {
	expanded     map[int]bool
	withChildren map[int]bool
	focused      bool

	normal   lipgloss.Style
	selected lipgloss.Style
}

func newTreeDelegate(expanded, withChildren map[int]bool, focused bool) treeDelegate {
	sel := lipgloss.NewStyle().
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)
	if focused {
		sel = sel.Foreground(colorAccentFg).Background(colorAccent)
	}
	return treeDelegate{
		expanded:     expanded,
		withChildren: withChildren,
		focused:      focused,
		normal:       lipgloss.NewStyle().Foreground(colorSurfaceFg),
		selected:     sel,
	}
}

func (d treeDelegate) Height() int  { return 1 }
func (d treeDelegate) Spacing() int { return 0 }
func (d treeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d treeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}
	it, ok := item.(treeItem)
	if !ok {
		return
	}

	if index == m.Index() {
		// Plain text keeps the full-row highlight unbroken by inner resets.
		fmt.Fprint(w, d.renderRow(contentW, d.selected, d.rowText(it)))
		return
	}
	fmt.Fprint(w, d.renderStyledRow(contentW, it))
}

func (d treeDelegate) twisty(phase int) string {
	if !d.withChildren[phase] {
		return " "
	}
	if d.expanded[phase] {
		return glyphTwistyExpanded()
	}
	return glyphTwistyCollapsed()
}

func (d treeDelegate) rowText(it treeItem) string {
	switch it.kind {
	case treeItemProject:
		return "  " + it.projectName
	case treeItemPhase:
		return d.twisty(it.phase.Number) + " " + statusutil.Icon(it.phase.Status) + " " + searchableText(it)
	case treeItemRequirement:
		return "    " + statusutil.Icon(it.requirement.Status) + " " + searchableText(it)
	}
	return ""
}

func (d treeDelegate) renderStyledRow(width int, it treeItem) string {
	var line string
	switch it.kind {
	case treeItemProject:
		line = "  " + lipgloss.NewStyle().Bold(true).Render(it.projectName)
	case treeItemPhase:
		line = d.twisty(it.phase.Number) + " " +
			statusStyle(it.phase.Status).Render(statusutil.Icon(it.phase.Status)) + " " +
			lipgloss.NewStyle().Bold(true).Render(searchableText(it))
	case treeItemRequirement:
		desc := it.requirement.Description
		if statusutil.IsEndState(it.requirement.Status) {
			desc = styleMuted().Render(desc)
		}
		line = "    " +
			statusStyle(it.requirement.Status).Render(statusutil.Icon(it.requirement.Status)) + " " +
			lipgloss.NewStyle().Foreground(colorReqID).Render(it.requirement.ID) + ": " +
			desc
	}
	return d.renderRow(width, d.normal, line)
}

func (d treeDelegate) renderRow(width int, style lipgloss.Style, line string) string {
	plainW := xansi.StringWidth(line)
	if plainW < width {
		line += strings.Repeat(" ", width-plainW)
	} else if plainW > width {
		line = xansi.Truncate(line, width, glyphEllipsis())
	}
	return style.Render(line)
}
