package store

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/gannonh/kata-tui/internal/model"
)

// ParseState reads STATE.md: position fields line by line and the metrics
// table through the markdown AST.
func ParseState(src []byte) (model.PlanningState, error) {
	doc, err := parseMarkdown(src)
	if err != nil {
		return model.PlanningState{}, err
	}

	var st model.PlanningState
	for _, line := range strings.Split(string(src), "\n") {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "|") {
			continue
		}
		if v, ok := fieldValue(l, "Phase"); ok {
			st.CurrentPhase, st.CurrentPhaseName = parsePhasePosition(v)
			continue
		}
		if v, ok := fieldValue(l, "Plan"); ok {
			if v != "" && !strings.EqualFold(v, "Not yet created") {
				plan := v
				st.CurrentPlan = &plan
			}
			continue
		}
		if v, ok := fieldValue(l, "Status"); ok {
			st.Status = v
			continue
		}
		if v, ok := fieldValue(l, "Last activity"); ok {
			st.LastActivity = v
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		row, ok := n.(*extast.TableRow)
		if !ok {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := row.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, nodeText(c, src))
		}
		if len(cells) >= 2 {
			applyMetric(&st, cells[0], cells[1])
		}
		return ast.WalkSkipChildren, nil
	})

	return st, nil
}

func applyMetric(st *model.PlanningState, key, value string) {
	n, _, ok := leadingInt(value)
	if !ok {
		return
	}
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "total phases":
		st.TotalPhases = n
	case "phases complete":
		st.PhasesComplete = n
	case "v1 requirements", "total requirements":
		st.TotalRequirements = n
	case "requirements complete":
		st.RequirementsComplete = n
	}
}

// parsePhasePosition accepts "2 - Name", "2: Name" and "2 of 5 (Name)".
func parsePhasePosition(v string) (int, string) {
	n, rest, ok := leadingInt(v)
	if !ok {
		return 0, ""
	}
	if tail, ok := cutPrefixFold(rest, "of"); ok {
		_, rest, _ = leadingInt(tail)
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, "(") {
			if end := strings.Index(rest, ")"); end > 0 {
				return n, strings.TrimSpace(rest[1:end])
			}
		}
	}
	return n, strings.TrimSpace(strings.TrimLeft(rest, ":-–— "))
}
