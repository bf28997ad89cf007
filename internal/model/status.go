package model

// RequestPhase represents the lifecycle phase of a link submission
type RequestPhase string

const (
	// PhaseIdle means no submission has been made yet
	PhaseIdle RequestPhase = "Idle"

	// PhasePending means a processing request is in flight
	PhasePending RequestPhase = "Pending"

	// PhaseSucceeded means the latest submission settled with a result
	PhaseSucceeded RequestPhase = "Succeeded"

	// PhaseFailed means the latest submission settled with an error
	PhaseFailed RequestPhase = "Failed"
)

// String returns the string representation of RequestPhase
func (p RequestPhase) String() string {
	return string(p)
}

// IsPending returns true if a request is currently in flight
func (p RequestPhase) IsPending() bool {
	return p == PhasePending
}

// IsSettled returns true if the latest submission has resolved to a result or an error
func (p RequestPhase) IsSettled() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}
