package tui

import (
	"fmt"

	"github.com/gannonh/kata-tui/internal/model"
)

type treeItemKind int

const (
	treeItemProject treeItemKind = iota
	treeItemPhase
	treeItemRequirement
)

// treeItemKinds lists every kind; rendering and search switch over all of them.
var treeItemKinds = []treeItemKind{treeItemProject, treeItemPhase, treeItemRequirement}

// treeItem is one row of the flattened tree. Which payload is set depends on kind.
type treeItem struct {
	kind treeItemKind

	projectName string
	phase       model.Phase
	// phaseNumber is the owning phase for requirement rows.
	phaseNumber int
	requirement model.Requirement
}

// FilterValue implements list.Item.
func (it treeItem) FilterValue() string { return searchableText(it) }

// phaseOf returns the phase number of a phase row.
func (it treeItem) phaseOf() (int, bool) {
	if it.kind != treeItemPhase {
		return 0, false
	}
	return it.phase.Number, true
}

// buildTree flattens data into display order: the project (when named), then
// each phase followed by its requirements when the phase is expanded.
func buildTree(data *model.PlanningData, expanded map[int]bool) []treeItem {
	if data == nil {
		return nil
	}
	n := len(data.Roadmap.Phases)
	if data.Project.Name != "" {
		n++
	}
	items := make([]treeItem, 0, n)
	if data.Project.Name != "" {
		items = append(items, treeItem{kind: treeItemProject, projectName: data.Project.Name})
	}
	for _, ph := range data.Roadmap.Phases {
		items = append(items, treeItem{kind: treeItemPhase, phase: ph})
		if !expanded[ph.Number] {
			continue
		}
		for _, r := range ph.Requirements {
			items = append(items, treeItem{
				kind:        treeItemRequirement,
				phaseNumber: ph.Number,
				requirement: r,
			})
		}
	}
	return items
}

// phasesWithChildren returns the phase numbers that have at least one requirement.
func phasesWithChildren(data *model.PlanningData) map[int]bool {
	out := map[int]bool{}
	if data == nil {
		return out
	}
	for _, ph := range data.Roadmap.Phases {
		if len(ph.Requirements) > 0 {
			out[ph.Number] = true
		}
	}
	return out
}

func searchableText(it treeItem) string {
	switch it.kind {
	case treeItemProject:
		return it.projectName
	case treeItemPhase:
		return fmt.Sprintf("Phase %d: %s", it.phase.Number, it.phase.Name)
	case treeItemRequirement:
		return fmt.Sprintf("%s: %s", it.requirement.ID, it.requirement.Description)
	default:
		panic(fmt.Sprintf("tui: unhandled tree item kind %d", it.kind))
	}
}
