package tui

import "time"

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeHelp
)

func (m inputMode) String() string {
	switch m {
	case modeSearch:
		return "search"
	case modeHelp:
		return "help"
	default:
		return "normal"
	}
}

type pane int

const (
	paneTree pane = iota
	paneDetail
)

type msgKind int

const (
	msgQuit msgKind = iota
	msgNavigateUp
	msgNavigateDown
	msgNavigateLeft
	msgNavigateRight
	msgSelect
	msgSwitchPane
	msgScrollUp
	msgScrollDown
	msgToggleExpand
	msgShowHelp
	msgHideHelp
	msgEnterSearch
	msgExitSearch
	msgSearchInput
	msgSearchBackspace
	msgConfirmSearch
	msgNextMatch
	msgPrevMatch
	msgTick
)

var msgKindNames = [...]string{
	msgQuit:            "Quit",
	msgNavigateUp:      "NavigateUp",
	msgNavigateDown:    "NavigateDown",
	msgNavigateLeft:    "NavigateLeft",
	msgNavigateRight:   "NavigateRight",
	msgSelect:          "Select",
	msgSwitchPane:      "SwitchPane",
	msgScrollUp:        "ScrollUp",
	msgScrollDown:      "ScrollDown",
	msgToggleExpand:    "ToggleExpand",
	msgShowHelp:        "ShowHelp",
	msgHideHelp:        "HideHelp",
	msgEnterSearch:     "EnterSearchMode",
	msgExitSearch:      "ExitSearchMode",
	msgSearchInput:     "SearchInput",
	msgSearchBackspace: "SearchBackspace",
	msgConfirmSearch:   "ConfirmSearch",
	msgNextMatch:       "NextMatch",
	msgPrevMatch:       "PrevMatch",
	msgTick:            "Tick",
}

func (k msgKind) String() string {
	if k >= 0 && int(k) < len(msgKindNames) {
		return msgKindNames[k]
	}
	return "Unknown"
}

// message is a semantic action produced by the key translator (or the tick)
// and consumed by update.
type message struct {
	kind msgKind
	// phase is the phase number for msgToggleExpand.
	phase int
	// text is the typed text for msgSearchInput; a single key press carries one rune.
	text string
}

// tickMsg is the periodic Bubble Tea message driving msgTick.
type tickMsg time.Time

// inputClosedMsg reports that the terminal input stream ended.
type inputClosedMsg struct {
	err error
}
