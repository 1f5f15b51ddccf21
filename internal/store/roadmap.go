package store

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gannonh/kata-tui/internal/model"
	"github.com/gannonh/kata-tui/internal/statusutil"
)

var phaseNumberRe = regexp.MustCompile(`\d+`)

type roadmapParser struct {
	roadmap model.Roadmap
	seen    map[int]bool

	cur            *model.Phase
	explicitStatus bool

	inOverview     bool
	overview       []string
	inGoal         bool
	goal           []string
	inRequirements bool
}

// ParseRoadmap reads ROADMAP.md line by line. A phase starts at a
// "### Phase N: Name" heading and ends at "---" or the next phase heading.
func ParseRoadmap(src []byte) (model.Roadmap, error) {
	if !utf8.Valid(src) {
		return model.Roadmap{}, errNotText
	}
	p := &roadmapParser{seen: map[int]bool{}}
	for _, line := range strings.Split(string(src), "\n") {
		p.line(strings.TrimSpace(line))
	}
	p.finishPhase()
	p.roadmap.Overview = strings.Join(p.overview, " ")
	return p.roadmap, nil
}

func (p *roadmapParser) line(l string) {
	if strings.HasPrefix(l, "#") {
		p.heading(l)
		return
	}

	if p.inOverview {
		if l != "" && l != "---" {
			p.overview = append(p.overview, l)
		}
		return
	}
	if p.cur == nil {
		return
	}

	if l == "---" {
		p.finishPhase()
		return
	}

	if strings.HasPrefix(l, "**") || strings.HasPrefix(l, "Goal:") {
		p.field(l)
		return
	}

	switch {
	case p.inRequirements && strings.HasPrefix(l, "- "):
		if r, ok := parseRequirement(strings.TrimPrefix(l, "- ")); ok {
			p.cur.Requirements = append(p.cur.Requirements, r)
		}
	case p.inGoal:
		if l == "" {
			if len(p.goal) > 0 {
				p.inGoal = false
			}
			return
		}
		p.goal = append(p.goal, l)
	}
}

func (p *roadmapParser) heading(l string) {
	title := strings.TrimSpace(strings.TrimLeft(l, "#"))
	level := len(l) - len(strings.TrimLeft(l, "#"))

	if rest, ok := cutPrefixFold(title, "Phase"); ok && level >= 2 {
		p.finishPhase()
		p.inOverview = false
		n, tail, ok := leadingInt(rest)
		if !ok || n < 1 || p.seen[n] {
			// Unnumbered or duplicate phases are skipped with their body.
			return
		}
		p.seen[n] = true
		name := strings.TrimSpace(strings.TrimLeft(tail, ":-–— "))
		p.cur = &model.Phase{Number: n, Name: name}
		return
	}

	p.inOverview = level == 2 && strings.EqualFold(title, "Overview")
	if level <= 2 {
		p.finishPhase()
	}
}

func (p *roadmapParser) field(l string) {
	p.inGoal = false
	p.inRequirements = false

	if v, ok := fieldValue(l, "Goal"); ok {
		p.goal = nil
		if v == "" {
			p.inGoal = true
			return
		}
		p.goal = append(p.goal, v)
		return
	}
	if v, ok := fieldValue(l, "Requirements"); ok {
		p.inRequirements = true
		// Inline form: "**Requirements:** DISP-01, DISP-02".
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				p.cur.Requirements = append(p.cur.Requirements, model.Requirement{ID: id})
			}
		}
		return
	}
	if v, ok := fieldValue(l, "Depends on"); ok {
		for _, m := range phaseNumberRe.FindAllString(v, -1) {
			if n, _, ok := leadingInt(m); ok && n >= 1 {
				p.cur.Dependencies = append(p.cur.Dependencies, n)
			}
		}
		return
	}
	if v, ok := fieldValue(l, "Status"); ok {
		if st, err := statusutil.NormalizeStatus(v); err == nil {
			p.cur.Status = st
			p.explicitStatus = true
		}
	}
}

func (p *roadmapParser) finishPhase() {
	if p.cur == nil {
		return
	}
	if len(p.goal) > 0 {
		p.cur.Goal = strings.Join(p.goal, " ")
	}
	if !p.explicitStatus {
		p.cur.Status = statusutil.DerivePhaseStatus(p.cur.Requirements)
	}
	p.roadmap.Phases = append(p.roadmap.Phases, *p.cur)

	p.cur = nil
	p.explicitStatus = false
	p.inGoal = false
	p.goal = nil
	p.inRequirements = false
}

// parseRequirement reads "ID: description", optionally prefixed by a task marker.
func parseRequirement(s string) (model.Requirement, bool) {
	status, rest, _ := statusutil.ParseCheckbox(s)
	rest = strings.ReplaceAll(rest, "**", "")
	id, desc, found := strings.Cut(rest, ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Requirement{}, false
	}
	if !found && strings.ContainsAny(id, " \t") {
		return model.Requirement{}, false
	}
	return model.Requirement{
		ID:          id,
		Description: strings.TrimSpace(desc),
		Status:      status,
	}, true
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
