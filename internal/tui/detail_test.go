package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/gannonh/kata-tui/internal/model"
)

func plainDetail(data *model.PlanningData, it *treeItem) string {
	return xansi.Strip(renderDetail(data, it, 60, detailOptions{}))
}

func TestRenderDetail_NoSelection(t *testing.T) {
	if got := plainDetail(samplePlanningData(), nil); !strings.Contains(got, "No item selected") {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestRenderDetail_Project(t *testing.T) {
	data := samplePlanningData()
	items := buildTree(data, nil)
	got := plainDetail(data, &items[0])
	for _, want := range []string{
		"Kata TUI",
		"Core Value:",
		"See planning progress at a glance.",
		"Problem:",
		"Overview:",
		"Current phase: 1 - Foundation",
		"Plan: 01-02",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in project detail, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Solution:") {
		t.Fatalf("expected empty sections to be omitted, got:\n%s", got)
	}
}

func TestRenderDetail_Phase(t *testing.T) {
	data := samplePlanningData()
	items := buildTree(data, nil)
	got := plainDetail(data, &items[1])
	for _, want := range []string{
		"Phase 1: Foundation",
		"Status: In Progress",
		"33%",
		"Goal:",
		"Parse planning files.",
		"[x] AUTH-01: User can sign up",
		"[~] AUTH-02: User can log in",
		"[ ] DATA-01: Store profiles",
		"Summary: 1/3 requirements complete",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in phase detail, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Depends on") {
		t.Fatalf("expected no dependencies for phase 1")
	}
}

func TestRenderDetail_Requirement(t *testing.T) {
	data := samplePlanningData()
	items := buildTree(data, map[int]bool{2: true})
	got := plainDetail(data, &items[3])
	for _, want := range []string{"UI-01", "Status: Pending", "Phase: 2 - Interface", "Dashboard shows phases"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in requirement detail, got:\n%s", want, got)
		}
	}
}

func TestRenderDetail_MarkdownSections(t *testing.T) {
	data := samplePlanningData()
	data.Project.Problem = "Files are **long**."
	items := buildTree(data, nil)
	got := xansi.Strip(renderDetail(data, &items[0], 60, detailOptions{markdown: true, mdStyle: "dark"}))
	if !strings.Contains(got, "long") || strings.Contains(got, "**long**") {
		t.Fatalf("expected rendered markdown, got:\n%s", got)
	}
}

func TestProgressBar(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	cases := []struct {
		pct  float64
		want string
	}{
		{0, ".........."},
		{50, "#####....."},
		{100, "##########"},
		{-5, ".........."},
		{250, "##########"},
	}
	for _, tc := range cases {
		if got := progressBar(tc.pct, 10); got != tc.want {
			t.Fatalf("progressBar(%v): expected %q, got %q", tc.pct, tc.want, got)
		}
	}
	if got := progressBar(50, 0); got != "" {
		t.Fatalf("expected empty bar for zero width, got %q", got)
	}
}
