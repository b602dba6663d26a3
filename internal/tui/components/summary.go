package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts and the final outcome for rendering summaries.
type SummaryData struct {
	Total      int
	Completed  int
	Warnings   int
	Finished   bool
	Cancelled  bool
	OutputPath string
	Error      string
}

// Summary renders a textual generation summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string

	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Steps: %d/%d completed", s.data.Completed, s.data.Total))
	}
	if s.data.Warnings > 0 {
		lines = append(lines, fmt.Sprintf("Warnings: %d", s.data.Warnings))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Generation cancelled")
	case s.data.Error != "":
		lines = append(lines, "Generation failed: "+s.data.Error)
	case s.data.Finished && s.data.OutputPath != "":
		lines = append(lines, "Project generated at "+s.data.OutputPath)
	case s.data.Finished && s.data.Total > 0:
		if s.data.Completed == s.data.Total {
			lines = append(lines, "Generation finished successfully")
		} else {
			lines = append(lines, "Generation finished with pending steps")
		}
	}

	return strings.Join(lines, "\n")
}
