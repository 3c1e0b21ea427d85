package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRepeatInterval is the cadence of hold-to-repeat ticks.
const DefaultRepeatInterval = 150 * time.Millisecond

// HoldTickMsg drives one repeat tick of a held stepper.
type HoldTickMsg struct {
	ID string
}

// Stepper is a numeric increment/decrement control with hold-to-repeat.
// It never owns its value: Get reads the live value and Set writes it, so
// a manual edit that lands mid-hold is respected on the next tick instead
// of being overwritten from a value captured at hold-start.
type Stepper struct {
	ID    string
	Label string
	Unit  string

	// Min and Max bound the value; Max < Min means unbounded above.
	Min int
	Max int

	Step int
	Get  func() int
	Set  func(int)

	RepeatEvery time.Duration

	held      bool
	direction int
	focused   bool
}

// NewStepper builds a stepper over a live value reference.
func NewStepper(id, label string, min, max int, get func() int, set func(int)) *Stepper {
	return &Stepper{
		ID:          id,
		Label:       label,
		Min:         min,
		Max:         max,
		Step:        1,
		Get:         get,
		Set:         set,
		RepeatEvery: DefaultRepeatInterval,
	}
}

// Focus marks the stepper as the active control.
func (s *Stepper) Focus()        { s.focused = true }
func (s *Stepper) Blur()         { s.focused = false }
func (s *Stepper) Focused() bool { return s.focused }

// Held reports whether a press is currently being held.
func (s *Stepper) Held() bool { return s.held }

func (s *Stepper) clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if s.Max >= s.Min && v > s.Max {
		return s.Max
	}
	return v
}

func (s *Stepper) apply(direction int) {
	s.Set(s.clamp(s.Get() + direction*s.Step))
}

// Press applies one immediate step and arms hold-to-repeat in the given
// direction (+1 or -1). It returns the command that schedules the first
// repeat tick.
func (s *Stepper) Press(direction int) tea.Cmd {
	s.apply(direction)
	s.held = true
	s.direction = direction
	return s.tickCmd()
}

// Tick handles one repeat tick. A tick that arrives after Release is
// ignored, even if it was already queued when the hold ended; that is
// what keeps a released control from creeping further.
func (s *Stepper) Tick(msg HoldTickMsg) tea.Cmd {
	if !s.held || msg.ID != s.ID {
		return nil
	}
	s.apply(s.direction)
	return s.tickCmd()
}

// Release ends the hold. Pointer-up, window blur and visibility-hidden
// all funnel here.
func (s *Stepper) Release() {
	s.held = false
}

func (s *Stepper) tickCmd() tea.Cmd {
	id := s.ID
	return tea.Tick(s.RepeatEvery, func(time.Time) tea.Msg {
		return HoldTickMsg{ID: id}
	})
}

// View renders the control as "label  − value +".
func (s *Stepper) View() string {
	label := lipgloss.NewStyle().Width(24).Render(s.Label)
	value := fmt.Sprintf("− %d%s +", s.Get(), s.Unit)
	if s.focused {
		value = lipgloss.NewStyle().Bold(true).Render(value)
	}
	return label + " " + value
}
