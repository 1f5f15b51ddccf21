package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gannonh/kata-tui/internal/model"
)

func writePlanningFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestParseProject_Basic(t *testing.T) {
	p, err := ParseProject([]byte("# Test Project\n\n## Core Value\n\nA test project.\n"))
	if err != nil {
		t.Fatalf("ParseProject: %v", err)
	}
	if p.Name != "Test Project" {
		t.Fatalf("expected name %q, got %q", "Test Project", p.Name)
	}
	if p.Description != "A test project." {
		t.Fatalf("expected description %q, got %q", "A test project.", p.Description)
	}
}

func TestParseProject_Sections(t *testing.T) {
	src := `# Kata *Dashboard*

Intro text that belongs to no section.

## What This Is

A terminal viewer.

## The Problem

Planning files are hard to scan.

- too long
- too flat

---

## Solution

A tree.
`
	p, err := ParseProject([]byte(src))
	if err != nil {
		t.Fatalf("ParseProject: %v", err)
	}
	if p.Name != "Kata Dashboard" {
		t.Fatalf("expected markup stripped from name, got %q", p.Name)
	}
	if p.Description != "A terminal viewer." {
		t.Fatalf("expected fallback description, got %q", p.Description)
	}
	wantProblem := "Planning files are hard to scan.\n\n- too long\n- too flat"
	if p.Problem != wantProblem {
		t.Fatalf("expected problem %q, got %q", wantProblem, p.Problem)
	}
	if p.Solution != "A tree." {
		t.Fatalf("expected solution %q, got %q", "A tree.", p.Solution)
	}
}

func TestParseProject_InvalidUTF8(t *testing.T) {
	if _, err := ParseProject([]byte{0xff, 0xfe, '#'}); err == nil {
		t.Fatalf("expected error for binary content")
	}
}

const roadmapFixture = `# Roadmap

## Overview

Test roadmap.

### Phase 1: Foundation

**Goal:** Build the foundation.

**Requirements:**
- DISP-01: Display stuff
- NAV-01: Navigate stuff

---

### Phase 2: Features

**Goal:** Add features.

**Requirements:**
- FEAT-01: Add feature

---
`

func TestParseRoadmap_Phases(t *testing.T) {
	r, err := ParseRoadmap([]byte(roadmapFixture))
	if err != nil {
		t.Fatalf("ParseRoadmap: %v", err)
	}
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Number != 1 || r.Phases[0].Name != "Foundation" {
		t.Fatalf("expected phase 1 Foundation, got %d %q", r.Phases[0].Number, r.Phases[0].Name)
	}
	if len(r.Phases[0].Requirements) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(r.Phases[0].Requirements))
	}
	if r.Phases[0].Requirements[0].ID != "DISP-01" {
		t.Fatalf("expected DISP-01, got %q", r.Phases[0].Requirements[0].ID)
	}
	if r.Phases[0].Requirements[1].Description != "Navigate stuff" {
		t.Fatalf("expected description, got %q", r.Phases[0].Requirements[1].Description)
	}
	if r.Phases[0].Goal != "Build the foundation." {
		t.Fatalf("expected goal, got %q", r.Phases[0].Goal)
	}
	if r.Overview != "Test roadmap." {
		t.Fatalf("expected overview, got %q", r.Overview)
	}
}

func TestParseRoadmap_StatusesDependenciesAndGoalBlock(t *testing.T) {
	src := `## Phase 1 - Setup
**Goal:**
Get the
repo ready.

**Depends on:** Nothing (first phase)
**Requirements:**
- [x] SET-01: Init module
- [x] SET-02: CI

### Phase 2: Views
**Depends on:** Phase 1
**Requirements:**
- [x] VIEW-01: Tree
- [~] VIEW-02: Detail
- [ ] VIEW-03: Help

### Phase 2: Duplicate
**Requirements:**
- DUP-01: Dropped

### Phase 3: Polish
**Status:** In Progress
**Depends on:** Phase 1, Phase 2
**Requirements:** POL-01, POL-02
`
	r, err := ParseRoadmap([]byte(src))
	if err != nil {
		t.Fatalf("ParseRoadmap: %v", err)
	}
	if len(r.Phases) != 3 {
		t.Fatalf("expected duplicate phase dropped (3 phases), got %d", len(r.Phases))
	}

	p1 := r.Phases[0]
	if p1.Name != "Setup" || p1.Goal != "Get the repo ready." {
		t.Fatalf("unexpected phase 1: %q / %q", p1.Name, p1.Goal)
	}
	if len(p1.Dependencies) != 0 {
		t.Fatalf("expected no dependencies, got %v", p1.Dependencies)
	}
	if p1.Status != model.StatusComplete {
		t.Fatalf("expected derived complete, got %v", p1.Status)
	}

	p2 := r.Phases[1]
	if p2.Name != "Views" || p2.Status != model.StatusInProgress {
		t.Fatalf("unexpected phase 2: %q %v", p2.Name, p2.Status)
	}
	if got := p2.Requirements[1].Status; got != model.StatusInProgress {
		t.Fatalf("expected VIEW-02 in progress, got %v", got)
	}
	if got := p2.Requirements[2].Status; got != model.StatusPending {
		t.Fatalf("expected VIEW-03 pending, got %v", got)
	}
	if len(p2.Dependencies) != 1 || p2.Dependencies[0] != 1 {
		t.Fatalf("expected dependency [1], got %v", p2.Dependencies)
	}

	p3 := r.Phases[2]
	if p3.Number != 3 || p3.Status != model.StatusInProgress {
		t.Fatalf("expected explicit status on phase 3, got %d %v", p3.Number, p3.Status)
	}
	if len(p3.Requirements) != 2 || p3.Requirements[1].ID != "POL-02" {
		t.Fatalf("expected inline requirements, got %+v", p3.Requirements)
	}
	if len(p3.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %v", p3.Dependencies)
	}
}

func TestParseState_Metrics(t *testing.T) {
	src := `# Project State

**Phase:** 1 - Foundation
**Status:** Planning

| Metric | Value |
|--------|-------|
| Total Phases | 5 |
| Phases Complete | 1 |
`
	st, err := ParseState([]byte(src))
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if st.CurrentPhase != 1 || st.CurrentPhaseName != "Foundation" {
		t.Fatalf("expected phase 1 Foundation, got %d %q", st.CurrentPhase, st.CurrentPhaseName)
	}
	if st.Status != "Planning" {
		t.Fatalf("expected status Planning, got %q", st.Status)
	}
	if st.TotalPhases != 5 || st.PhasesComplete != 1 {
		t.Fatalf("expected 5/1 phases, got %d/%d", st.TotalPhases, st.PhasesComplete)
	}
	if st.CurrentPlan != nil {
		t.Fatalf("expected no plan, got %q", *st.CurrentPlan)
	}
}

func TestParseState_AlternateForms(t *testing.T) {
	src := `Phase: 2 of 4 (Interaction Core)
Plan: Not yet created
Status: In progress
Last activity: 2026-01-10 - finished tree

| Metric | Value |
|---|---|
| v1 Requirements | 12 |
| Requirements Complete | 4 |
`
	st, err := ParseState([]byte(src))
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if st.CurrentPhase != 2 || st.CurrentPhaseName != "Interaction Core" {
		t.Fatalf("expected phase 2 Interaction Core, got %d %q", st.CurrentPhase, st.CurrentPhaseName)
	}
	if st.CurrentPlan != nil {
		t.Fatalf("expected no plan")
	}
	if st.LastActivity != "2026-01-10 - finished tree" {
		t.Fatalf("unexpected last activity %q", st.LastActivity)
	}
	if st.TotalRequirements != 12 || st.RequirementsComplete != 4 {
		t.Fatalf("expected 12/4 requirements, got %d/%d", st.TotalRequirements, st.RequirementsComplete)
	}
}

func TestLoad_MissingFilesReturnDefaults(t *testing.T) {
	data := Store{Dir: t.TempDir()}.Load(context.Background())
	if data == nil {
		t.Fatalf("expected data")
	}
	if data.Project.Name != "" || len(data.Roadmap.Phases) != 0 {
		t.Fatalf("expected empty defaults, got %+v", data)
	}
}

func TestLoad_DegradesPerFile(t *testing.T) {
	dir := t.TempDir()
	writePlanningFile(t, dir, projectFileName, "# Kata\n")
	writePlanningFile(t, dir, roadmapFileName, string([]byte{0xff, 0xfe}))
	writePlanningFile(t, dir, stateFileName, "**Phase:** 3 - Ship\n")

	data := Store{Dir: dir}.Load(context.Background())
	if data.Project.Name != "Kata" {
		t.Fatalf("expected project loaded, got %q", data.Project.Name)
	}
	if len(data.Roadmap.Phases) != 0 {
		t.Fatalf("expected malformed roadmap to degrade to empty")
	}
	if data.State.CurrentPhase != 3 {
		t.Fatalf("expected state loaded, got %d", data.State.CurrentPhase)
	}
}

func TestLoad_CanceledContextDegrades(t *testing.T) {
	dir := t.TempDir()
	writePlanningFile(t, dir, projectFileName, "# Kata\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := Store{Dir: dir}.Load(ctx)
	if data.Project.Name != "" {
		t.Fatalf("expected canceled load to skip files, got %q", data.Project.Name)
	}
}
