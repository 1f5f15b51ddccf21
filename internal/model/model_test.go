package model

import (
	"encoding/json"
	"testing"
)

func TestStatus_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(Requirement{ID: "A-1", Status: StatusInProgress})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"id":"A-1","description":"","status":"in_progress"}` {
		t.Fatalf("unexpected json %s", b)
	}
	var r Requirement
	if err := json.Unmarshal(b, &r); err != nil || r.Status != StatusInProgress {
		t.Fatalf("expected in_progress back, got %v (%v)", r.Status, err)
	}
	if err := json.Unmarshal([]byte(`{"status":"later"}`), &r); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
	if _, err := Status(9).MarshalText(); err == nil {
		t.Fatalf("expected out-of-range status to fail")
	}
}

func TestPhase_CompletionPercentage(t *testing.T) {
	p := Phase{Requirements: []Requirement{
		{Status: StatusComplete},
		{Status: StatusInProgress},
		{Status: StatusComplete},
		{Status: StatusPending},
	}}
	if got := p.CompletedRequirements(); got != 2 {
		t.Fatalf("expected 2 complete, got %d", got)
	}
	if got := p.CompletionPercentage(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}

	empty := Phase{Status: StatusComplete}
	if got := empty.CompletionPercentage(); got != 100 {
		t.Fatalf("expected 100 for a complete phase without requirements, got %v", got)
	}
	empty.Status = StatusInProgress
	if got := empty.CompletionPercentage(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestRoadmap_PhaseByNumber(t *testing.T) {
	r := Roadmap{Phases: []Phase{{Number: 1, Name: "A"}, {Number: 3, Name: "C"}}}
	if p, ok := r.PhaseByNumber(3); !ok || p.Name != "C" {
		t.Fatalf("expected phase 3, got %+v %v", p, ok)
	}
	if _, ok := r.PhaseByNumber(2); ok {
		t.Fatalf("expected phase 2 to be missing")
	}
}
