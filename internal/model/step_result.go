package model

import (
	"time"
)

const (
	// StatusPending indicates a step has not started yet.
	StatusPending = "pending"
	// StatusRunning indicates a step is actively executing.
	StatusRunning = "running"
	// StatusSuccess marks a successful step.
	StatusSuccess = "success"
	// StatusSkipped marks a step that did not apply to this configuration.
	StatusSkipped = "skipped"
	// StatusWarning marks a step that finished with a non-fatal problem.
	StatusWarning = "warning"
	// StatusFailed marks the step that aborted generation.
	StatusFailed = "failed"
)

// Generation steps in execution order.
const (
	StepValidate   = "validate"
	StepPrepare    = "prepare"
	StepTemplate   = "template"
	StepRelocate   = "relocate"
	StepSubstitute = "substitute"
	StepAssets     = "assets"
	StepIcon       = "icon"
	StepGit        = "git"
)

// Steps lists every generation step in the order it runs.
var Steps = []string{
	StepValidate,
	StepPrepare,
	StepTemplate,
	StepRelocate,
	StepSubstitute,
	StepAssets,
	StepIcon,
	StepGit,
}

// StepResult captures the outcome of a single generation step.
type StepResult struct {
	StepID    string
	Status    string
	Message   string
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}

// Done reports whether the step has reached a terminal status.
func (r StepResult) Done() bool {
	switch r.Status {
	case StatusSuccess, StatusSkipped, StatusWarning, StatusFailed:
		return true
	default:
		return false
	}
}

// ProgressFunc receives step results as generation advances.
type ProgressFunc func(StepResult)
