package statusutil

import (
	"fmt"
	"strings"

	"github.com/gannonh/kata-tui/internal/model"
)

// NormalizeStatus maps the free-form status words used in planning files
// onto a model.Status.
func NormalizeStatus(s string) (model.Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", " ", "_", " ").Replace(v)
	v = strings.Join(strings.Fields(v), " ")
	switch v {
	case "pending", "todo", "not started", "planned", "planning":
		return model.StatusPending, nil
	case "in progress", "doing", "active", "started", "wip":
		return model.StatusInProgress, nil
	case "complete", "completed", "done", "finished":
		return model.StatusComplete, nil
	case "":
		return model.StatusPending, fmt.Errorf("invalid status: empty")
	default:
		return model.StatusPending, fmt.Errorf("invalid status: %q", s)
	}
}

// ParseCheckbox reads a leading markdown task marker ("[x]", "[~]", "[ ]")
// from s. It returns the status, the remainder of s, and whether a marker was found.
func ParseCheckbox(s string) (model.Status, string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || s[0] != '[' || s[2] != ']' {
		return model.StatusPending, s, false
	}
	rest := strings.TrimSpace(s[3:])
	switch s[1] {
	case 'x', 'X':
		return model.StatusComplete, rest, true
	case '~', '-', '/':
		return model.StatusInProgress, rest, true
	case ' ':
		return model.StatusPending, rest, true
	default:
		return model.StatusPending, s, false
	}
}

// DerivePhaseStatus summarizes a phase from its requirements.
func DerivePhaseStatus(reqs []model.Requirement) model.Status {
	if len(reqs) == 0 {
		return model.StatusPending
	}
	complete := 0
	started := false
	for _, r := range reqs {
		switch r.Status {
		case model.StatusComplete:
			complete++
			started = true
		case model.StatusInProgress:
			started = true
		}
	}
	if complete == len(reqs) {
		return model.StatusComplete
	}
	if started {
		return model.StatusInProgress
	}
	return model.StatusPending
}

func Label(s model.Status) string {
	switch s {
	case model.StatusComplete:
		return "Complete"
	case model.StatusInProgress:
		return "In Progress"
	default:
		return "Pending"
	}
}

// Icon is the checkbox glyph shown next to tree rows.
func Icon(s model.Status) string {
	switch s {
	case model.StatusComplete:
		return "[x]"
	case model.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func IsEndState(s model.Status) bool {
	return s == model.StatusComplete
}
