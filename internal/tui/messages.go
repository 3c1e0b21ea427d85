package tui

import (
	"github.com/vanmarkic/loyer-brussels/internal/calculation"
)

// Message types for the Bubble Tea update cycle.

// NavigateMsg asks the root model to move to a step via the controller.
type NavigateMsg struct {
	Step int
}

// ContinueMsg asks the root model to advance past the current step.
type ContinueMsg struct{}

// PreviousMsg asks the root model to retreat one step.
type PreviousMsg struct{}

// ResetMsg asks the root model to clear the form and start over.
type ResetMsg struct{}

// CalculationCompleteMsg carries the calculation outcome. Result is nil
// when the state was not yet calculable.
type CalculationCompleteMsg struct {
	Result *calculation.Result
}

// SubmittedMsg signals the record store accepted the submission.
type SubmittedMsg struct {
	ID string
}

// SubmitFailedMsg signals the submission failed with a structured error.
type SubmitFailedMsg struct {
	Err error
}

// ErrorMsg surfaces an error in the status area.
type ErrorMsg struct {
	Err error
}
