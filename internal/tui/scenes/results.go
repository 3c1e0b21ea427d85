package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/tui/tuimsg"
)

// resultsField enumerates the focusable controls of the results step.
type resultsField int

const (
	resultsFieldRent resultsField = iota
	resultsFieldEmail
)

// ResultsModel is the final step: the computed reference range, the
// comparison against the user's actual rent, and the contact funnel.
type ResultsModel struct {
	store *form.Store

	rent  textinput.Model
	email textinput.Model
	focus resultsField

	submittedID string
	submitErr   string
}

// NewResultsModel creates the step model over the shared store.
func NewResultsModel(store *form.Store) *ResultsModel {
	rent := textinput.New()
	rent.Placeholder = "950"
	rent.CharLimit = 12
	rent.SetValue(store.State().RentalInfo.ActualRent)
	rent.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.be"
	email.CharLimit = 80
	email.SetValue(store.State().UserProfile.Email)

	return &ResultsModel{store: store, rent: rent, email: email}
}

// SetSubmitted records the submission outcome for display.
func (m *ResultsModel) SetSubmitted(id string) {
	m.submittedID = id
	m.submitErr = ""
}

// SetSubmitError records a submission failure for display.
func (m *ResultsModel) SetSubmitError(err error) {
	m.submitErr = err.Error()
}

// Update handles key input for the step.
func (m *ResultsModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "tab":
		if m.focus == resultsFieldRent {
			m.focus = resultsFieldEmail
			m.rent.Blur()
			m.email.Focus()
		} else {
			m.focus = resultsFieldRent
			m.email.Blur()
			m.rent.Focus()
		}
		return nil
	case "ctrl+s":
		return func() tea.Msg { return tuimsg.SubmitRequest{} }
	}

	var cmd tea.Cmd
	switch m.focus {
	case resultsFieldRent:
		m.rent, cmd = m.rent.Update(key)
		value := m.rent.Value()
		m.store.UpdateRental(form.UpdateRentalInfo{ActualRent: &value})
	case resultsFieldEmail:
		m.email, cmd = m.email.Update(key)
		value := m.email.Value()
		m.store.UpdateProfile(form.UpdateUserProfile{Email: &value})
	}
	return cmd
}

// View renders the reference range, the comparison and the contact form.
func (m *ResultsModel) View() string {
	var b strings.Builder
	state := m.store.State()
	results := state.CalculationResults

	switch {
	case results.IsLoading:
		b.WriteString("Calculating the reference rent…\n")
	case results.MedianRent == nil:
		// Absence of a result is "not yet calculable", never an error.
		b.WriteString("The reference rent cannot be calculated yet.\n")
		b.WriteString("Go back and complete the property type, living space and address.\n")
		return b.String()
	default:
		b.WriteString("Reference rent for this property\n\n")
		b.WriteString(fmt.Sprintf("  Median:  %s €/month\n", results.MedianRent.StringFixed(0)))
		b.WriteString(fmt.Sprintf("  Range:   %s – %s €/month\n",
			results.MinRent.StringFixed(0), results.MaxRent.StringFixed(0)))
	}

	b.WriteString("\nYour current rent: " + m.rent.View() + "\n")

	if userRent, ok := calculation.ParseRent(state.RentalInfo.ActualRent); ok && results.MedianRent != nil {
		comparison := calculation.CompareRent(userRent, calculation.Result{
			MedianRent:  *results.MedianRent,
			MinimumRent: *results.MinRent,
			MaximumRent: *results.MaxRent,
		})
		b.WriteString(renderComparison(comparison))
	}

	b.WriteString("\nEmail (to be contacted by the tenants' union): " + m.email.View() + "\n")
	b.WriteString("Press ctrl+s to submit.\n")

	if m.submittedID != "" {
		b.WriteString("\nSubmitted, reference " + m.submittedID + ". Thank you!\n")
	}
	if m.submitErr != "" {
		b.WriteString("\nSubmission failed: " + m.submitErr + "\n")
	}
	return b.String()
}

func renderComparison(c calculation.Comparison) string {
	var label string
	switch c.Status {
	case calculation.StatusAbusive:
		label = "Your rent looks abusive"
	case calculation.StatusHigh:
		label = "Your rent is above the reference"
	case calculation.StatusBelow:
		label = "Your rent is below the reference"
	default:
		label = "Your rent is within the fair range"
	}
	return fmt.Sprintf("%s (%s € vs median, %s%%)\n",
		label, c.Difference.StringFixed(0), c.PercentageDifference.StringFixed(1))
}
