package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gannonh/kata-tui/internal/model"
)

// Theme/palette helpers.
//
// The dashboard must stay readable on light and dark terminal backgrounds, so
// colors are adaptive and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted       = ac("240", "243")
	colorSurfaceFg   = ac("235", "252")
	colorControlBg   = ac("252", "235")
	colorSelectedBg  = ac("#e9e9e9", "#262626")
	colorSelectedFg  = ac("235", "255")
	colorAccent      = ac("27", "62")
	colorAccentFg    = ac("255", "235")
	colorBorder      = ac("250", "243")
	colorStatusBarBg = ac("254", "236")

	colorComplete   = ac("28", "42")
	colorInProgress = ac("136", "220")
	colorPending    = ac("244", "245")
	colorReqID      = ac("31", "80")
	colorLabel      = ac("130", "179")
	colorError      = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError).Bold(true)
}

func statusColor(s model.Status) lipgloss.AdaptiveColor {
	switch s {
	case model.StatusComplete:
		return colorComplete
	case model.StatusInProgress:
		return colorInProgress
	default:
		return colorPending
	}
}

func statusStyle(s model.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColor(s))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the dashboard.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can disable
// colors in a full-screen program. Only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector found.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) theme from the config file: light|dark|auto
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// COLORFGBG is often "fg;bg" (sometimes more segments). Use the last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// Common xterm palette: 0-6 dark colors, 7-15 light colors.
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
