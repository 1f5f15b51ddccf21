package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gannonh/kata-tui/internal/model"
	"github.com/gannonh/kata-tui/internal/statusutil"
)

const progressBarWidth = 20

type detailOptions struct {
	markdown bool
	mdStyle  string
}

// renderDetail builds the unscrolled detail content for the selected row.
// The viewport applies the scroll offset.
func renderDetail(data *model.PlanningData, it *treeItem, width int, opts detailOptions) string {
	if it == nil || data == nil {
		return styleMuted().Render("No item selected")
	}
	if width < 10 {
		width = 10
	}
	d := detailBuilder{width: width, opts: opts}
	switch it.kind {
	case treeItemProject:
		d.project(data)
	case treeItemPhase:
		d.phase(it.phase)
	case treeItemRequirement:
		d.requirement(data, it.phaseNumber, it.requirement)
	}
	return strings.TrimRight(strings.Join(d.lines, "\n"), "\n")
}

type detailBuilder struct {
	width int
	opts  detailOptions
	lines []string
}

func (d *detailBuilder) add(s ...string) {
	d.lines = append(d.lines, s...)
}

func (d *detailBuilder) blank() {
	d.lines = append(d.lines, "")
}

func (d *detailBuilder) title(s string, st lipgloss.Style) {
	d.add(st.Bold(true).Render(s))
	d.blank()
}

// field renders "Label: value" on one line.
func (d *detailBuilder) field(label, value string) {
	d.add(styleLabel().Render(label+":") + " " + value)
}

// section renders a label followed by wrapped prose.
func (d *detailBuilder) section(label, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	d.add(styleLabel().Render(label + ":"))
	d.add(d.prose(body))
	d.blank()
}

func (d *detailBuilder) prose(s string) string {
	if d.opts.markdown {
		if out := renderMarkdown(s, d.width, d.opts.mdStyle); strings.TrimSpace(out) != "" {
			return out
		}
	}
	return lipgloss.NewStyle().Width(d.width).Render(s)
}

func (d *detailBuilder) project(data *model.PlanningData) {
	p := data.Project
	d.title(p.Name, lipgloss.NewStyle())
	d.section("Core Value", p.Description)
	d.section("Problem", p.Problem)
	d.section("Solution", p.Solution)
	d.section("Overview", data.Roadmap.Overview)

	st := data.State
	if st.CurrentPhase <= 0 && st.TotalPhases == 0 && st.TotalRequirements == 0 {
		return
	}
	d.add(styleMuted().Render(strings.Repeat(glyphHRule(), d.width)))
	d.add(styleLabel().Render("Planning State:"))
	if st.CurrentPhase > 0 {
		pos := strconv.Itoa(st.CurrentPhase)
		if st.CurrentPhaseName != "" {
			pos += " - " + st.CurrentPhaseName
		}
		d.add("  Current phase: " + pos)
	}
	plan := "Not yet created"
	if st.CurrentPlan != nil {
		plan = *st.CurrentPlan
	}
	d.add("  Plan: " + plan)
	if st.Status != "" {
		d.add("  Status: " + st.Status)
	}
	if st.LastActivity != "" {
		d.add("  Last activity: " + st.LastActivity)
	}
	if st.TotalPhases > 0 {
		d.add(fmt.Sprintf("  Phases: %d/%d complete", st.PhasesComplete, st.TotalPhases))
	}
	if st.TotalRequirements > 0 {
		d.add(fmt.Sprintf("  Requirements: %d/%d complete", st.RequirementsComplete, st.TotalRequirements))
	}
}

func (d *detailBuilder) phase(ph model.Phase) {
	d.title(fmt.Sprintf("Phase %d: %s", ph.Number, ph.Name), lipgloss.NewStyle())

	pct := ph.CompletionPercentage()
	barStyle := statusStyle(model.StatusPending)
	switch {
	case pct >= 100:
		barStyle = statusStyle(model.StatusComplete)
	case pct > 0:
		barStyle = statusStyle(model.StatusInProgress)
	}
	d.field("Status", statusStyle(ph.Status).Render(statusutil.Label(ph.Status)))
	d.field("Progress", barStyle.Render(progressBar(pct, progressBarWidth))+" "+barStyle.Render(fmt.Sprintf("%.0f%%", pct)))
	if len(ph.Dependencies) > 0 {
		deps := make([]string, 0, len(ph.Dependencies))
		for _, n := range ph.Dependencies {
			deps = append(deps, "Phase "+strconv.Itoa(n))
		}
		d.field("Depends on", strings.Join(deps, ", "))
	}
	d.blank()

	d.section("Goal", ph.Goal)

	if len(ph.Requirements) > 0 {
		d.add(styleLabel().Render("Requirements:"))
		idStyle := lipgloss.NewStyle().Foreground(colorReqID)
		for _, r := range ph.Requirements {
			line := "  " + statusStyle(r.Status).Render(statusutil.Icon(r.Status)) + " " + idStyle.Render(r.ID)
			if r.Description != "" {
				line += ": " + r.Description
			}
			d.add(line)
		}
		d.blank()
	}
	d.field("Summary", fmt.Sprintf("%d/%d requirements complete", ph.CompletedRequirements(), len(ph.Requirements)))
}

func (d *detailBuilder) requirement(data *model.PlanningData, phaseNumber int, r model.Requirement) {
	d.title(r.ID, lipgloss.NewStyle().Foreground(colorReqID))
	d.field("Status", statusStyle(r.Status).Render(statusutil.Label(r.Status)))
	phase := strconv.Itoa(phaseNumber)
	if ph, ok := data.Roadmap.PhaseByNumber(phaseNumber); ok && ph.Name != "" {
		phase += " - " + ph.Name
	}
	d.field("Phase", phase)
	d.blank()
	d.section("Description", r.Description)
}

// progressBar renders pct (0-100) as a bar of width cells.
func progressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(math.Round(pct / 100 * float64(width)))
	return strings.Repeat(glyphBarFilled(), filled) + strings.Repeat(glyphBarEmpty(), width-filled)
}
