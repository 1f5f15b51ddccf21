package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	// Every mode.
	Interrupt key.Binding

	// Normal mode.
	Quit       key.Binding
	Help       key.Binding
	Search     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	SwitchPane key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	// Help mode.
	CloseHelp key.Binding

	// Search mode.
	SearchCancel    key.Binding
	SearchConfirm   key.Binding
	SearchBackspace key.Binding
	NextMatch       key.Binding
	PrevMatch       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Left:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "collapse / tree")),
		Right:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "expand / detail")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle / select")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll detail up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll detail down")),

		CloseHelp: key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc/?/q", "close help")),

		SearchCancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel search")),
		SearchConfirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump to match")),
		SearchBackspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		NextMatch:       key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next match")),
		PrevMatch:       key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "prev match")),
	}
}

// ShortHelp feeds the status bar hints.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Down, k.SwitchPane, k.Search, k.Help}
}

// FullHelp feeds the help overlay, one column per group.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.SwitchPane},
		{k.PageUp, k.PageDown},
		{k.Search, k.SearchConfirm, k.NextMatch, k.PrevMatch, k.SearchCancel},
		{k.Help, k.Quit},
	}
}

// searchHelp feeds the hint line shown while typing a query.
func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.SearchConfirm, k.NextMatch, k.PrevMatch, k.SearchCancel}
}

// translateKey maps a key press to a message for the given mode. Keys with
// no meaning in that mode yield false.
func translateKey(km keyMap, msg tea.KeyMsg, mode inputMode) (message, bool) {
	if key.Matches(msg, km.Interrupt) {
		return message{kind: msgQuit}, true
	}

	switch mode {
	case modeHelp:
		if key.Matches(msg, km.CloseHelp) {
			return message{kind: msgHideHelp}, true
		}
		return message{}, false

	case modeSearch:
		switch {
		case key.Matches(msg, km.SearchCancel):
			return message{kind: msgExitSearch}, true
		case key.Matches(msg, km.SearchConfirm):
			return message{kind: msgConfirmSearch}, true
		case key.Matches(msg, km.SearchBackspace):
			return message{kind: msgSearchBackspace}, true
		case key.Matches(msg, km.NextMatch):
			return message{kind: msgNextMatch}, true
		case key.Matches(msg, km.PrevMatch):
			return message{kind: msgPrevMatch}, true
		}
		if text, ok := printableText(msg); ok {
			return message{kind: msgSearchInput, text: text}, true
		}
		return message{}, false
	}

	switch {
	case key.Matches(msg, km.Quit):
		return message{kind: msgQuit}, true
	case key.Matches(msg, km.Help):
		return message{kind: msgShowHelp}, true
	case key.Matches(msg, km.Search):
		return message{kind: msgEnterSearch}, true
	case key.Matches(msg, km.Down):
		return message{kind: msgNavigateDown}, true
	case key.Matches(msg, km.Up):
		return message{kind: msgNavigateUp}, true
	case key.Matches(msg, km.Left):
		return message{kind: msgNavigateLeft}, true
	case key.Matches(msg, km.Right):
		return message{kind: msgNavigateRight}, true
	case key.Matches(msg, km.Select):
		return message{kind: msgSelect}, true
	case key.Matches(msg, km.SwitchPane):
		return message{kind: msgSwitchPane}, true
	case key.Matches(msg, km.PageUp):
		return message{kind: msgScrollUp}, true
	case key.Matches(msg, km.PageDown):
		return message{kind: msgScrollDown}, true
	}
	return message{}, false
}

// printableText returns the text a key press types, if any. Pasted text
// arrives as a single multi-rune key.
func printableText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return "", false
		}
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				return "", false
			}
		}
		return string(msg.Runes), true
	}
	return "", false
}

// splitKeys breaks a burst of typed runes into one key press per rune, so a
// fast "jq" still reads as j then q. Pastes stay whole.
func splitKeys(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) <= 1 {
		return []tea.KeyMsg{msg}
	}
	out := make([]tea.KeyMsg, len(msg.Runes))
	for i, r := range msg.Runes {
		out[i] = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
	}
	return out
}
