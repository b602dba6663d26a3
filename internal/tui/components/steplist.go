package components

import (
	"github.com/alexisbeaulieu97/aabuilder/internal/model"
)

var stepLabels = map[string]string{
	model.StepValidate:   "Validate configuration",
	model.StepPrepare:    "Create project directory",
	model.StepTemplate:   "Copy base template",
	model.StepRelocate:   "Move main activity",
	model.StepSubstitute: "Customise template files",
	model.StepAssets:     "Bundle web assets",
	model.StepIcon:       "Install launcher icon",
	model.StepGit:        "Initialise git repository",
}

// StepLabel returns the display name of a step, or its id when unknown.
func StepLabel(id string) string {
	if label, ok := stepLabels[id]; ok {
		return label
	}
	return id
}

// StepEntry represents a single step for rendering.
type StepEntry struct {
	ID     string
	Label  string
	Result model.StepResult
}

// StepList holds steps in display order with their current status.
type StepList struct {
	entries []StepEntry
}

// NewStepList builds a list following order; ids missing from steps render as pending.
func NewStepList(order []string, steps map[string]model.StepResult) StepList {
	entries := make([]StepEntry, 0, len(order))
	for _, id := range order {
		result, ok := steps[id]
		if !ok {
			result = model.StepResult{StepID: id, Status: model.StatusPending}
		}
		entries = append(entries, StepEntry{ID: id, Label: StepLabel(id), Result: result})
	}
	return StepList{entries: entries}
}

// Entries returns a copy of the ordered entries.
func (s StepList) Entries() []StepEntry {
	clone := make([]StepEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}

// Count returns how many entries currently have status.
func (s StepList) Count(status string) int {
	n := 0
	for _, entry := range s.entries {
		if entry.Result.Status == status {
			n++
		}
	}
	return n
}
