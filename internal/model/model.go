package model

import "fmt"

// Status is the progress vocabulary shared by phases and requirements.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusComplete
)

var statusNames = [...]string{
	StatusPending:    "pending",
	StatusInProgress: "in_progress",
	StatusComplete:   "complete",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if string(b) == name {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Problem     string `json:"problem,omitempty"`
	Solution    string `json:"solution,omitempty"`
}

type Requirement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

type Phase struct {
	// Number is unique within a roadmap and starts at 1.
	Number       int           `json:"number"`
	Name         string        `json:"name"`
	Goal         string        `json:"goal,omitempty"`
	Requirements []Requirement `json:"requirements,omitempty"`
	Status       Status        `json:"status"`
	Dependencies []int         `json:"dependencies,omitempty"`
}

// CompletedRequirements counts requirements in the Complete state.
func (p Phase) CompletedRequirements() int {
	n := 0
	for _, r := range p.Requirements {
		if r.Status == StatusComplete {
			n++
		}
	}
	return n
}

// CompletionPercentage is the share of complete requirements in [0, 100].
// A phase without requirements reports 100 when marked complete, else 0.
func (p Phase) CompletionPercentage() float64 {
	if len(p.Requirements) == 0 {
		if p.Status == StatusComplete {
			return 100
		}
		return 0
	}
	return float64(p.CompletedRequirements()) / float64(len(p.Requirements)) * 100
}

type Roadmap struct {
	Overview string  `json:"overview,omitempty"`
	Phases   []Phase `json:"phases"`
}

// PhaseByNumber returns the phase with the given number.
func (r Roadmap) PhaseByNumber(n int) (Phase, bool) {
	for _, p := range r.Phases {
		if p.Number == n {
			return p, true
		}
	}
	return Phase{}, false
}

// PlanningState is the "where are we" summary kept in STATE.md.
type PlanningState struct {
	CurrentPhase         int     `json:"currentPhase"`
	CurrentPhaseName     string  `json:"currentPhaseName,omitempty"`
	CurrentPlan          *string `json:"currentPlan,omitempty"`
	Status               string  `json:"status,omitempty"`
	LastActivity         string  `json:"lastActivity,omitempty"`
	TotalPhases          int     `json:"totalPhases"`
	PhasesComplete       int     `json:"phasesComplete"`
	TotalRequirements    int     `json:"totalRequirements"`
	RequirementsComplete int     `json:"requirementsComplete"`
}

// PlanningData is everything loaded from a planning directory. It is read-only
// for the lifetime of the dashboard.
type PlanningData struct {
	Project Project       `json:"project"`
	Roadmap Roadmap       `json:"roadmap"`
	State   PlanningState `json:"state"`
}
