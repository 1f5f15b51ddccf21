package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const (
	minWidth  = 60
	minHeight = 16

	narrowWidth = 80

	statusBarHeight = 1

	sizeWarning = "Terminal too small. Please resize to at least 60x16."
)

// layout holds the outer sizes of the split panes, borders included.
type layout struct {
	treeWidth   int
	detailWidth int
	bodyHeight  int
}

// terminalTooSmall reports whether the frame cannot hold the split layout.
func terminalTooSmall(width, height int) bool {
	return width < minWidth || height < minHeight
}

// computeLayout gives the tree 30% of the width (25% on narrow terminals)
// and the detail pane the rest, above a one-line status bar.
func computeLayout(width, height int) layout {
	pct := 30
	if width < narrowWidth {
		pct = 25
	}
	tree := width * pct / 100
	body := height - statusBarHeight
	if body < 0 {
		body = 0
	}
	return layout{
		treeWidth:   tree,
		detailWidth: width - tree,
		bodyHeight:  body,
	}
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall. This keeps split-pane rendering stable with lipgloss.JoinHorizontal.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		// Huge lines are cut early so the width computations below stay bounded.
		if width > 0 && len(ln) > 8192 {
			ln = xansi.Cut(ln, 0, width)
		}

		w := xansi.StringWidth(ln)
		if w > width {
			if width <= 1 {
				ln = xansi.Cut(ln, 0, width)
			} else {
				ln = xansi.Truncate(ln, width, glyphEllipsis())
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}
