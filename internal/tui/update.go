package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/tui/tuimsg"
)

// Update routes messages: global keys and lifecycle first, then the
// scene owning the current step.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus: stop any held stepper and snapshot
		// synchronously, the same way the page saves on hide.
		m.details.ReleaseAll()
		m.saver.Flush()
		return m, nil

	case tea.QuitMsg:
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleGlobalKey(msg); handled {
			return model, cmd
		}

	case NavigateMsg:
		if m.controller.NavigateToStep(msg.Step) {
			return m.enteredStep()
		}
		return m, nil

	case ContinueMsg:
		if m.controller.Continue() {
			return m.enteredStep()
		}
		return m, nil

	case PreviousMsg:
		m.controller.Previous()
		return m, nil

	case ResetMsg:
		m.controller.Reset()
		m.fileStore.Clear()
		return m, nil

	case CalculationCompleteMsg:
		m.applyCalculation(msg.Result)
		return m, nil

	case tuimsg.Recalculate:
		return m, m.calculateCmd()

	case tuimsg.SubmitRequest:
		return m, m.submitCmd()

	case SubmittedMsg:
		m.results.SetSubmitted(msg.ID)
		m.fileStore.Clear()
		return m, nil

	case SubmitFailedMsg:
		m.results.SetSubmitError(msg.Err)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, m.updateScene(msg)
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		// Teardown cancels the autosave timers and flushes once more.
		m.saver.Stop()
		return m, tea.Quit, true

	case "pgdown", "ctrl+n":
		if m.controller.Continue() {
			model, cmd := m.enteredStep()
			return model, cmd, true
		}
		return m, nil, true

	case "pgup", "ctrl+p":
		m.controller.Previous()
		return m, nil, true

	case "alt+left":
		if m.controller.Back() {
			model, cmd := m.enteredStep()
			return model, cmd, true
		}
		return m, nil, true

	case "alt+right":
		if m.controller.Forward() {
			model, cmd := m.enteredStep()
			return model, cmd, true
		}
		return m, nil, true

	case "ctrl+r":
		m.controller.Reset()
		m.fileStore.Clear()
		return m, nil, true
	}
	return m, nil, false
}

// enteredStep runs step-entry effects; landing on the results step kicks
// off the calculation.
func (m Model) enteredStep() (Model, tea.Cmd) {
	if m.store.State().CurrentStep == domain.TotalSteps {
		loading := true
		m.store.UpdateResults(form.UpdateCalculationResults{IsLoading: &loading})
		return m, m.calculateCmd()
	}
	return m, nil
}

// applyCalculation merges the outcome into state through the reducer. A
// nil result leaves the rent fields empty and just clears the loading
// flag: the step renders "cannot calculate yet", not an error banner.
func (m Model) applyCalculation(result *calculation.Result) {
	if result == nil {
		loading := false
		m.store.UpdateResults(form.UpdateCalculationResults{IsLoading: &loading})
		return
	}
	updated := result.ApplyTo(m.store.State().CalculationResults)
	loading := false
	noError := ""
	m.store.UpdateResults(form.UpdateCalculationResults{
		DifficultyIndex: updated.DifficultyIndex,
		MedianRent:      updated.MedianRent,
		MinRent:         updated.MinRent,
		MaxRent:         updated.MaxRent,
		IsLoading:       &loading,
		Error:           &noError,
		ErrorCode:       &noError,
	})
}

func (m Model) updateScene(msg tea.Msg) tea.Cmd {
	switch m.store.State().CurrentStep {
	case 1:
		return m.propertyType.Update(msg)
	case 2:
		return m.details.Update(msg)
	case 3:
		return m.features.Update(msg)
	case 4:
		return m.energy.Update(msg)
	case 5:
		return m.address.Update(msg)
	case 6:
		return m.results.Update(msg)
	}
	return nil
}
