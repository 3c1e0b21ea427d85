package scenes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
)

// propertyTypeChoice pairs a grid value with its display label.
type propertyTypeChoice struct {
	Value domain.PropertyType
	Label string
}

var propertyTypeChoices = []propertyTypeChoice{
	{domain.PropertyTypeStudio, "Studio"},
	{domain.PropertyTypeApartment1, "Apartment, 1 bedroom"},
	{domain.PropertyTypeApartment2, "Apartment, 2 bedrooms"},
	{domain.PropertyTypeApartment3, "Apartment, 3+ bedrooms"},
	{domain.PropertyTypeHouse, "House"},
}

// PropertyTypeModel is the first step: choosing the dwelling type.
type PropertyTypeModel struct {
	store  *form.Store
	cursor int
}

// NewPropertyTypeModel creates the step model over the shared store.
func NewPropertyTypeModel(store *form.Store) *PropertyTypeModel {
	m := &PropertyTypeModel{store: store}
	// Start the cursor on the previously chosen type after a restore.
	current := store.State().PropertyInfo.PropertyType
	for i, choice := range propertyTypeChoices {
		if choice.Value == current {
			m.cursor = i
		}
	}
	return m
}

// Update handles key input for the step.
func (m *PropertyTypeModel) Update(msg tea.Msg) tea.Cmd {
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
		if m.cursor < len(propertyTypeChoices)-1 {
			m.cursor++
		}
	case "enter", " ":
		choice := propertyTypeChoices[m.cursor].Value
		m.store.UpdateProperty(form.UpdatePropertyInfo{PropertyType: &choice})
	}
	return nil
}

// View renders the choice list with the stored selection marked.
func (m *PropertyTypeModel) View() string {
	var b strings.Builder
	b.WriteString("What kind of property do you rent?\n\n")

	selected := m.store.State().PropertyInfo.PropertyType
	for i, choice := range propertyTypeChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "( )"
		if choice.Value == selected {
			mark = "(x)"
		}
		line := cursor + mark + " " + choice.Label
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
