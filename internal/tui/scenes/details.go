package scenes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/tui/components"
)

// DetailsModel is the second step: size, rooms, garages and condition.
// All numeric controls are hold-to-repeat steppers reading live state.
type DetailsModel struct {
	store    *form.Store
	steppers []*components.Stepper
	focused  int
}

// NewDetailsModel creates the step model over the shared store.
func NewDetailsModel(store *form.Store) *DetailsModel {
	m := &DetailsModel{store: store}

	state := func() *form.Store { return store }

	m.steppers = []*components.Stepper{
		components.NewStepper("size", "Living space", 0, 1000,
			func() int { return state().State().PropertyInfo.Size },
			func(v int) { store.UpdateProperty(form.UpdatePropertyInfo{Size: &v}) }),
		components.NewStepper("bedrooms", "Bedrooms", 0, 20,
			func() int { return state().State().PropertyInfo.Bedrooms },
			func(v int) { store.UpdateProperty(form.UpdatePropertyInfo{Bedrooms: &v}) }),
		components.NewStepper("bathrooms", "Bathrooms", 0, 10,
			func() int { return state().State().PropertyInfo.Bathrooms },
			func(v int) { store.UpdateProperty(form.UpdatePropertyInfo{Bathrooms: &v}) }),
		components.NewStepper("garages", "Garages", 0, 10,
			func() int { return state().State().PropertyInfo.NumberOfGarages },
			func(v int) { store.UpdateProperty(form.UpdatePropertyInfo{NumberOfGarages: &v}) }),
		components.NewStepper("state", "Condition (1-3)", 0, 3,
			func() int { return state().State().PropertyInfo.PropertyState },
			func(v int) { store.UpdateProperty(form.UpdatePropertyInfo{PropertyState: &v}) }),
	}
	m.steppers[0].Unit = " m²"
	m.steppers[0].Step = 1
	m.steppers[0].Focus()
	return m
}

// Update handles key input and repeat ticks for the step.
func (m *DetailsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.HoldTickMsg:
		for _, s := range m.steppers {
			if cmd := s.Tick(msg); cmd != nil {
				return cmd
			}
		}
		return nil

	case tea.KeyMsg:
		current := m.steppers[m.focused]
		switch msg.String() {
		case "up", "k":
			current.Release()
			current.Blur()
			if m.focused > 0 {
				m.focused--
			}
			m.steppers[m.focused].Focus()
		case "down", "j", "tab":
			current.Release()
			current.Blur()
			if m.focused < len(m.steppers)-1 {
				m.focused++
			}
			m.steppers[m.focused].Focus()
		case "right", "+", "=":
			return current.Press(1)
		case "left", "-":
			return current.Press(-1)
		default:
			// Any other key ends a hold; terminals have no key-up event.
			current.Release()
		}
	}
	return nil
}

// ReleaseAll stops every held stepper; the root model calls this on
// focus-loss and suspend signals.
func (m *DetailsModel) ReleaseAll() {
	for _, s := range m.steppers {
		s.Release()
	}
}

// View renders the stepper rows.
func (m *DetailsModel) View() string {
	var b strings.Builder
	b.WriteString("Tell us about the property.\n\n")
	for _, s := range m.steppers {
		b.WriteString(s.View() + "\n")
	}
	b.WriteString("\nLiving space and condition are required.\n")
	return b.String()
}
