package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/gannonh/kata-tui/internal/model"
	"github.com/gannonh/kata-tui/internal/store"
)

type appModel struct {
	data   *model.PlanningData
	cfg    *store.Config
	logger *slog.Logger
	keys   keyMap

	state appState

	// Derived from data and state.expanded; rebuilt by reconcile.
	items        []treeItem
	withChildren map[int]bool
	matcher      *fuzzyMatcher

	width  int
	height int

	// Widgets mirror state for rendering and are never read back.
	tree    list.Model
	detail  viewport.Model
	help    help.Model
	mdStyle string

	// inputErr records why the input stream ended, if it did.
	inputErr error
}

func newAppModel(data *model.PlanningData, cfg *store.Config, logger *slog.Logger) appModel {
	if data == nil {
		data = &model.PlanningData{}
	}
	if cfg == nil {
		cfg = store.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := appModel{
		data:         data,
		cfg:          cfg,
		logger:       logger,
		keys:         defaultKeyMap(),
		state:        newAppState(),
		withChildren: phasesWithChildren(data),
		matcher:      newFuzzyMatcher(),
		tree:         newTreeList(),
		detail:       viewport.New(0, 0),
		help:         newHelpModel(),
		mdStyle:      markdownStyle(cfg.Theme),
	}
	m.reconcile()
	m.syncWidgets()
	return m
}

func newTreeList() list.Model {
	l := list.New(nil, newTreeDelegate(nil, nil, true), 0, 0)
	// Keys never reach the list; it only draws the tree and its paging.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// handle runs one message through disambiguation, update and reconciliation.
func (m *appModel) handle(msg message) {
	msg = m.disambiguateExpand(msg)
	if !update(&m.state, msg, len(m.items)) {
		return
	}
	m.logger.Debug("state changed", "msg", msg.kind.String(), "mode", m.state.mode.String())
	m.reconcile()
	m.syncWidgets()
}

// disambiguateExpand turns Select/Right/Left on an expandable phase row into
// ToggleExpand. Everything else passes through unchanged.
func (m *appModel) disambiguateExpand(msg message) message {
	if m.state.focus != paneTree {
		return msg
	}
	i, ok := m.state.selected()
	if !ok || i < 0 || i >= len(m.items) {
		return msg
	}
	n, ok := m.items[i].phaseOf()
	if !ok || !m.withChildren[n] {
		return msg
	}
	toggle := message{kind: msgToggleExpand, phase: n}
	switch msg.kind {
	case msgSelect:
		return toggle
	case msgNavigateRight:
		if !m.state.isExpanded(n) {
			return toggle
		}
	case msgNavigateLeft:
		if m.state.isExpanded(n) {
			return toggle
		}
	}
	return msg
}

// reconcile rebuilds the tree from the expansion set, bounds the cursor and,
// while searching, recomputes the matches against the rebuilt tree.
func (m *appModel) reconcile() {
	m.items = buildTree(m.data, m.state.expanded)
	m.state.clampSelection(len(m.items))
	if m.state.mode == modeSearch {
		m.refreshMatches()
	}
}

func (m *appModel) refreshMatches() {
	s := &m.state
	if s.query == "" {
		s.matches = nil
		s.currentMatch = 0
		return
	}
	s.matches = m.matcher.matchIndices(s.query, m.items)
	if len(s.matches) == 0 {
		s.currentMatch = 0
		return
	}
	if s.currentMatch < 0 || s.currentMatch >= len(s.matches) {
		s.currentMatch = 0
	}
	s.selectIndex(s.matches[s.currentMatch])
}

func (m *appModel) selectedItem() *treeItem {
	i, ok := m.state.selected()
	if !ok || i < 0 || i >= len(m.items) {
		return nil
	}
	return &m.items[i]
}

// syncWidgets copies the authoritative state into the list and viewport.
func (m *appModel) syncWidgets() {
	lay := computeLayout(m.width, m.height)

	treeW, treeH := paneInner(lay.treeWidth, lay.bodyHeight)
	m.tree.SetDelegate(newTreeDelegate(m.state.expanded, m.withChildren, m.state.focus == paneTree))
	m.tree.SetSize(treeW, max(treeH-1, 0))
	items := make([]list.Item, len(m.items))
	for i, it := range m.items {
		items[i] = it
	}
	m.tree.SetItems(items)
	if i, ok := m.state.selected(); ok {
		m.tree.Select(i)
	} else {
		m.tree.ResetSelected()
	}

	detailW, detailH := paneInner(lay.detailWidth, lay.bodyHeight)
	m.detail.Width = detailW
	m.detail.Height = max(detailH-1, 0)
	m.detail.SetContent(renderDetail(m.data, m.selectedItem(), detailW, detailOptions{
		markdown: m.cfg.MarkdownEnabled(),
		mdStyle:  m.mdStyle,
	}))
	// Scrolling stops at the last page of the current content.
	if maxScroll := max(m.detail.TotalLineCount()-m.detail.Height, 0); m.state.detailScroll > maxScroll {
		m.state.detailScroll = maxScroll
	}
	m.detail.SetYOffset(m.state.detailScroll)
}
