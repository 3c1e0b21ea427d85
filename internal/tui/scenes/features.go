package scenes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
)

// featureQuestion binds a tri-state question to its state accessors.
type featureQuestion struct {
	Label string
	Get   func(domain.PropertyInfo) domain.TriState
	Set   func(*form.Store, domain.TriState)
}

func set(field func(*form.UpdatePropertyInfo, *domain.TriState)) func(*form.Store, domain.TriState) {
	return func(store *form.Store, v domain.TriState) {
		partial := form.UpdatePropertyInfo{}
		field(&partial, &v)
		store.UpdateProperty(partial)
	}
}

var featureQuestions = []featureQuestion{
	{"Central heating",
		func(p domain.PropertyInfo) domain.TriState { return p.CentralHeating },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.CentralHeating = v })},
	{"Thermal regulation",
		func(p domain.PropertyInfo) domain.TriState { return p.ThermalRegulation },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.ThermalRegulation = v })},
	{"Double glazing",
		func(p domain.PropertyInfo) domain.TriState { return p.DoubleGlazing },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.DoubleGlazing = v })},
	{"Second bathroom",
		func(p domain.PropertyInfo) domain.TriState { return p.SecondBathroom },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.SecondBathroom = v })},
	{"Recreational spaces",
		func(p domain.PropertyInfo) domain.TriState { return p.RecreationalSpaces },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.RecreationalSpaces = v })},
	{"Storage spaces",
		func(p domain.PropertyInfo) domain.TriState { return p.StorageSpaces },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.StorageSpaces = v })},
	{"Built before 2000",
		func(p domain.PropertyInfo) domain.TriState { return p.ConstructedBefore2000 },
		set(func(a *form.UpdatePropertyInfo, v *domain.TriState) { a.ConstructedBefore2000 = v })},
}

// FeaturesModel is the third step: the seven tri-state comfort questions.
// Every question must be explicitly answered yes or no before the guard
// lets the user continue; an unanswered question is not a no.
type FeaturesModel struct {
	store  *form.Store
	cursor int
}

// NewFeaturesModel creates the step model over the shared store.
func NewFeaturesModel(store *form.Store) *FeaturesModel {
	return &FeaturesModel{store: store}
}

// Update handles key input for the step.
func (m *FeaturesModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	question := featureQuestions[m.cursor]
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(featureQuestions)-1 {
			m.cursor++
		}
	case "y":
		question.Set(m.store, domain.Yes)
	case "n":
		question.Set(m.store, domain.No)
	case " ", "enter":
		// Toggle between yes and no; an unset question becomes yes.
		if question.Get(m.store.State().PropertyInfo).IsYes() {
			question.Set(m.store, domain.No)
		} else {
			question.Set(m.store, domain.Yes)
		}
	}
	return nil
}

// View renders the question list with unanswered questions highlighted.
func (m *FeaturesModel) View() string {
	var b strings.Builder
	b.WriteString("Which features does the property have? (y/n on each)\n\n")

	info := m.store.State().PropertyInfo
	for i, q := range featureQuestions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		answer := "—"
		switch q.Get(info) {
		case domain.Yes:
			answer = "yes"
		case domain.No:
			answer = "no"
		}
		line := cursor + lipgloss.NewStyle().Width(24).Render(q.Label) + " " + answer
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
