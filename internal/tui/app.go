package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) Init() tea.Cmd { return tickCmd(m.cfg.TickInterval) }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncWidgets()
		return m, nil

	case tickMsg:
		m.handle(message{kind: msgTick})
		return m, tickCmd(m.cfg.TickInterval)

	case inputClosedMsg:
		if m.state.quit {
			return m, nil
		}
		m.inputErr = msg.err
		m.state.quit = true
		m.logger.Warn("terminal input closed", "err", msg.err)
		return m, tea.Quit

	case tea.KeyMsg:
		for _, k := range splitKeys(msg) {
			sem, ok := translateKey(m.keys, k, m.state.mode)
			if !ok {
				continue
			}
			m.handle(sem)
			if m.state.quit {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m appModel) View() string {
	// The final frame after Quit is left blank so the alt screen exits cleanly.
	if m.state.quit || m.width <= 0 || m.height <= 0 {
		return ""
	}
	if terminalTooSmall(m.width, m.height) {
		return normalizePane(styleError().Render(sizeWarning), m.width, m.height)
	}
	if m.state.mode == modeHelp {
		return renderHelpOverlay(m.width, m.height, m.keys, m.help)
	}

	lay := computeLayout(m.width, m.height)
	tree := renderPane("Planning", m.tree.View(), lay.treeWidth, lay.bodyHeight, m.state.focus == paneTree)
	detail := renderPane("Details", m.detail.View(), lay.detailWidth, lay.bodyHeight, m.state.focus == paneDetail)
	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, detail)
	status := renderStatusBar(m.width, &m.state, m.data.State, m.keys, m.help)
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// paneInner is the content area of a bordered pane of the given outer size.
func paneInner(width, height int) (int, int) {
	return max(width-2, 0), max(height-2, 0)
}

func renderPane(title, content string, width, height int, focused bool) string {
	innerW, innerH := paneInner(width, height)
	titleStyle := styleMuted().Bold(true)
	border := colorBorder
	if focused {
		titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		border = colorAccent
	}
	inner := normalizePane(titleStyle.Render(title)+"\n"+content, innerW, innerH)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(inner)
}
