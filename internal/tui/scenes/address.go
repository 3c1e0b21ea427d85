package scenes

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/lookup"
)

// candidatesMsg carries lookup results back into the scene.
type candidatesMsg struct {
	Candidates []lookup.Candidate
	Err        error
}

// addressField enumerates the focusable controls of the address step.
type addressField int

const (
	fieldQuery addressField = iota
	fieldCandidates
	fieldNumber
)

// AddressModel is the fifth step: locating the dwelling. A free-text
// query resolves to candidates; picking one fills the postal code and
// street, and only the difficulty index of the pick feeds the
// calculation.
type AddressModel struct {
	store    *form.Store
	resolver lookup.Resolver

	query  textinput.Model
	number textinput.Model

	focus        addressField
	candidates   []lookup.Candidate
	cursor       int
	lookupNotice string
}

// NewAddressModel creates the step model over the shared store.
func NewAddressModel(store *form.Store, resolver lookup.Resolver) *AddressModel {
	query := textinput.New()
	query.Placeholder = "1050 Avenue Louise"
	query.Focus()
	query.CharLimit = 80

	number := textinput.New()
	number.Placeholder = "12"
	number.CharLimit = 10
	number.SetValue(store.State().PropertyInfo.StreetNumber)

	return &AddressModel{
		store:    store,
		resolver: resolver,
		query:    query,
		number:   number,
	}
}

// Update handles key input and lookup results for the step.
func (m *AddressModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case candidatesMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, lookup.ErrInsufficientQuery) {
				m.lookupNotice = "Enter a postal code or part of a street name."
			} else {
				// Lookup is enrichment only; a failing resolver never
				// blocks the form.
				m.lookupNotice = "Address lookup unavailable, enter details manually."
			}
			m.candidates = nil
			return nil
		}
		m.lookupNotice = ""
		m.candidates = msg.Candidates
		m.cursor = 0
		if len(m.candidates) > 0 {
			m.focus = fieldCandidates
			m.query.Blur()
		}
		return nil

	case tea.KeyMsg:
		switch m.focus {
		case fieldQuery:
			if msg.String() == "enter" {
				return m.resolveCmd(m.query.Value())
			}
			var cmd tea.Cmd
			m.query, cmd = m.query.Update(msg)
			return cmd

		case fieldCandidates:
			switch msg.String() {
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.candidates)-1 {
					m.cursor++
				}
			case "esc":
				m.focus = fieldQuery
				m.query.Focus()
			case "enter":
				m.pick(m.candidates[m.cursor])
				m.focus = fieldNumber
				m.number.Focus()
			}
			return nil

		case fieldNumber:
			if msg.String() == "esc" {
				m.focus = fieldQuery
				m.number.Blur()
				m.query.Focus()
				return nil
			}
			var cmd tea.Cmd
			m.number, cmd = m.number.Update(msg)
			value := m.number.Value()
			m.store.UpdateProperty(form.UpdatePropertyInfo{StreetNumber: &value})
			return cmd
		}
	}
	return nil
}

func (m *AddressModel) resolveCmd(query string) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		candidates, err := resolver.Resolve(context.Background(), query)
		return candidatesMsg{Candidates: candidates, Err: err}
	}
}

func (m *AddressModel) pick(c lookup.Candidate) {
	m.store.UpdateProperty(form.UpdatePropertyInfo{
		PostalCode: &c.Postcode,
		StreetName: &c.StreetName,
	})
}

// View renders the query box, candidate list and number input.
func (m *AddressModel) View() string {
	var b strings.Builder
	b.WriteString("Where is the property?\n\n")
	b.WriteString("Search: " + m.query.View() + "\n")
	if m.lookupNotice != "" {
		b.WriteString(m.lookupNotice + "\n")
	}

	for i, c := range m.candidates {
		cursor := "  "
		if m.focus == fieldCandidates && i == m.cursor {
			cursor = "> "
		}
		line := cursor + c.StreetName + ", " + c.Postcode
		if m.focus == fieldCandidates && i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line + "\n")
	}

	info := m.store.State().PropertyInfo
	if info.StreetName != "" {
		b.WriteString("\nSelected: " + info.StreetName + ", " + info.PostalCode + "\n")
		b.WriteString("Number: " + m.number.View() + "\n")
	}
	return b.String()
}
