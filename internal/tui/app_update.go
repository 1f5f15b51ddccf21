package tui

import (
	"math"
	"unicode/utf8"
)

const scrollPage = 3

// update applies msg to s and reports whether any observable field changed.
// treeLen is the length of the current tree sequence.
func update(s *appState, msg message, treeLen int) bool {
	switch msg.kind {
	case msgQuit:
		s.quit = true
		return true

	case msgNavigateUp:
		switch s.focus {
		case paneTree:
			if i := s.cursorOrZero(); i > 0 {
				s.selectIndex(i - 1)
				return true
			}
		case paneDetail:
			if s.detailScroll > 0 {
				s.detailScroll--
				return true
			}
		}
		return false

	case msgNavigateDown:
		switch s.focus {
		case paneTree:
			if i := s.cursorOrZero(); treeLen > 0 && i < treeLen-1 {
				s.selectIndex(i + 1)
				return true
			}
			return false
		case paneDetail:
			if s.detailScroll < math.MaxInt {
				s.detailScroll++
			}
			return true
		}
		return false

	case msgNavigateLeft:
		if s.focus == paneDetail {
			s.focus = paneTree
			return true
		}
		return false

	case msgNavigateRight, msgSelect:
		if s.focus == paneTree {
			s.focus = paneDetail
			return true
		}
		return false

	case msgSwitchPane:
		if s.focus == paneTree {
			s.focus = paneDetail
		} else {
			s.focus = paneTree
		}
		return true

	case msgScrollUp:
		s.detailScroll -= scrollPage
		if s.detailScroll < 0 {
			s.detailScroll = 0
		}
		return true

	case msgScrollDown:
		if s.detailScroll > math.MaxInt-scrollPage {
			s.detailScroll = math.MaxInt
		} else {
			s.detailScroll += scrollPage
		}
		return true

	case msgToggleExpand:
		s.toggleExpansion(msg.phase)
		return true

	case msgShowHelp:
		s.mode = modeHelp
		return true

	case msgHideHelp:
		s.mode = modeNormal
		return true

	case msgEnterSearch:
		s.mode = modeSearch
		s.query = ""
		s.matches = nil
		s.currentMatch = 0
		return true

	case msgExitSearch:
		// The query stays for the status line.
		s.mode = modeNormal
		return true

	case msgSearchInput:
		if s.mode != modeSearch {
			return false
		}
		s.query += msg.text
		return true

	case msgSearchBackspace:
		if s.mode != modeSearch {
			return false
		}
		if _, size := utf8.DecodeLastRuneInString(s.query); size > 0 {
			s.query = s.query[:len(s.query)-size]
		}
		return true

	case msgConfirmSearch:
		if s.mode != modeSearch {
			return false
		}
		if s.currentMatch >= 0 && s.currentMatch < len(s.matches) {
			s.selectIndex(s.matches[s.currentMatch])
		}
		s.mode = modeNormal
		return true

	case msgNextMatch, msgPrevMatch:
		n := len(s.matches)
		if n == 0 {
			return false
		}
		if msg.kind == msgNextMatch {
			s.currentMatch = (s.currentMatch + 1) % n
		} else {
			s.currentMatch = (s.currentMatch + n - 1) % n
		}
		s.selectIndex(s.matches[s.currentMatch])
		return true

	case msgTick:
		return false
	}
	return false
}
