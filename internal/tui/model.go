package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/aabuilder/internal/model"
	"github.com/alexisbeaulieu97/aabuilder/internal/tui/components"
)

// StepStartMsg indicates a generation step has started.
type StepStartMsg struct {
	ID   string
	Time time.Time
}

// StepCompleteMsg reports that a step has reached a terminal status.
type StepCompleteMsg struct {
	Result model.StepResult
}

// OutcomeMsg carries the result of the whole generation.
type OutcomeMsg struct {
	OutputPath string
	Err        error
}

type tickMsg struct{}

// Model contains the Bubbletea state for the generation progress view.
type Model struct {
	appName        string
	steps          map[string]model.StepResult
	order          []string
	total          int
	completed      int
	warnings       int
	outputPath     string
	err            error
	finished       bool
	cancelled      bool
	nonInteractive bool
	themeFrom      string
	themeTo        string
}

// NewModel constructs a progress model for appName tracking the given steps.
func NewModel(appName string, stepIDs []string, nonInteractive bool) Model {
	m := Model{
		appName:        appName,
		steps:          make(map[string]model.StepResult),
		order:          make([]string, 0, len(stepIDs)),
		nonInteractive: nonInteractive,
	}

	for _, id := range stepIDs {
		m.ensureStep(id)
	}

	return m
}

// WithTheme returns a copy of m whose progress bar blends from one hex color
// to another.
func (m Model) WithTheme(from, to string) Model {
	m.themeFrom, m.themeTo = from, to
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalSteps returns the total number of steps tracked by the model.
func (m Model) TotalSteps() int {
	return m.total
}

// CompletedSteps returns the number of completed steps.
func (m Model) CompletedSteps() int {
	return m.completed
}

// IsFinished reports whether generation has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the view.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m *Model) ensureStep(id string) {
	if id == "" {
		return
	}
	if _, exists := m.steps[id]; !exists {
		m.steps[id] = model.StepResult{StepID: id, Status: model.StatusPending}
		m.order = append(m.order, id)
		m.total++
	}
}

func (m *Model) markFinishedIfComplete() {
	if m.total > 0 && m.completed >= m.total {
		m.finished = true
	}
}

func (m Model) summaryData() components.SummaryData {
	data := components.SummaryData{
		Total:      m.total,
		Completed:  m.completed,
		Warnings:   m.warnings,
		Finished:   m.finished,
		Cancelled:  m.cancelled,
		OutputPath: m.outputPath,
	}
	if m.err != nil {
		data.Error = m.err.Error()
	}
	return data
}
