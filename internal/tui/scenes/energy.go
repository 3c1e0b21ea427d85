package scenes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
)

var energyChoices = []domain.EnergyClass{
	domain.EnergyClassA,
	domain.EnergyClassB,
	domain.EnergyClassC,
	domain.EnergyClassD,
	domain.EnergyClassE,
	domain.EnergyClassF,
	domain.EnergyClassG,
}

// EnergyModel is the fourth step: the PEB certificate rating.
type EnergyModel struct {
	store  *form.Store
	cursor int
}

// NewEnergyModel creates the step model over the shared store.
func NewEnergyModel(store *form.Store) *EnergyModel {
	m := &EnergyModel{store: store}
	current := store.State().PropertyInfo.EnergyClass
	for i, c := range energyChoices {
		if c == current {
			m.cursor = i
		}
	}
	return m
}

// Update handles key input for the step. Pressing the letter of a class
// selects it directly.
func (m *EnergyModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(energyChoices)-1 {
			m.cursor++
		}
	case "enter", " ":
		choice := energyChoices[m.cursor]
		m.store.UpdateProperty(form.UpdatePropertyInfo{EnergyClass: &choice})
	default:
		letter := domain.EnergyClass(strings.ToUpper(key.String()))
		if domain.ValidEnergyClass(letter) {
			m.store.UpdateProperty(form.UpdatePropertyInfo{EnergyClass: &letter})
		}
	}
	return nil
}

// View renders the rating scale.
func (m *EnergyModel) View() string {
	var b strings.Builder
	b.WriteString("What is the PEB energy rating?\n\n")

	selected := m.store.State().PropertyInfo.EnergyClass
	for i, c := range energyChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "( )"
		if c == selected {
			mark = "(x)"
		}
		line := cursor + mark + " Class " + string(c)
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
