package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/aabuilder/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case StepStartMsg:
		m.ensureStep(msg.ID)
		step := m.steps[msg.ID]
		step.StepID = msg.ID
		step.Status = model.StatusRunning
		step.Timestamp = msg.Time
		m.steps[msg.ID] = step
		return m, nil
	case StepCompleteMsg:
		id := msg.Result.StepID
		if id == "" {
			return m, nil
		}

		m.ensureStep(id)
		previouslyCompleted := m.steps[id].Done()
		m.steps[id] = msg.Result

		if !previouslyCompleted {
			m.completed++
			if msg.Result.Status == model.StatusWarning {
				m.warnings++
			}
			m.markFinishedIfComplete()
		}

		if msg.Result.Status == model.StatusFailed {
			m.finished = true
			if m.err == nil {
				m.err = msg.Result.Error
			}
		}
		return m, nil
	case OutcomeMsg:
		m.outputPath = msg.OutputPath
		if msg.Err != nil {
			m.err = msg.Err
		}
		m.finished = true
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
