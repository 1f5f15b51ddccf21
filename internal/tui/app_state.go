package tui

// appState is the single mutable source of truth for the dashboard. Only
// update mutates it; the app loop reconciles the derived fields afterwards.
type appState struct {
	quit  bool
	focus pane
	mode  inputMode

	// cursor indexes the current tree sequence and is only meaningful when
	// hasCursor is set.
	cursor    int
	hasCursor bool

	detailScroll int

	// expanded holds the phase numbers whose requirements are visible.
	expanded map[int]bool

	query        string
	matches      []int
	currentMatch int
}

func newAppState() appState {
	return appState{
		focus:     paneTree,
		mode:      modeNormal,
		hasCursor: true,
		expanded:  map[int]bool{},
	}
}

// selected returns the cursor, or false when nothing is selected.
func (s *appState) selected() (int, bool) {
	return s.cursor, s.hasCursor
}

// cursorOrZero treats "no selection" as index 0 for relative navigation.
func (s *appState) cursorOrZero() int {
	if !s.hasCursor {
		return 0
	}
	return s.cursor
}

func (s *appState) selectIndex(i int) {
	s.cursor = i
	s.hasCursor = true
}

func (s *appState) clearSelection() {
	s.cursor = 0
	s.hasCursor = false
}

func (s *appState) isExpanded(phase int) bool {
	return s.expanded[phase]
}

func (s *appState) toggleExpansion(phase int) {
	if s.expanded == nil {
		s.expanded = map[int]bool{}
	}
	if s.expanded[phase] {
		delete(s.expanded, phase)
		return
	}
	s.expanded[phase] = true
}

// clampSelection keeps the cursor inside [0, n-1], or clears it when n is 0.
// A tree that gains rows while nothing is selected selects its first row.
func (s *appState) clampSelection(n int) {
	if n <= 0 {
		s.clearSelection()
		return
	}
	if !s.hasCursor {
		s.selectIndex(0)
		return
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
