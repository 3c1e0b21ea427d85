package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/navigation"
	"github.com/vanmarkic/loyer-brussels/internal/session"
)

// View renders the active step between a title bar and a status bar.
func (m Model) View() string {
	var content string
	switch m.store.State().CurrentStep {
	case 1:
		content = m.propertyType.View()
	case 2:
		content = m.details.View()
	case 3:
		content = m.features.View()
	case 4:
		content = m.energy.View()
	case 5:
		content = m.address.View()
	case 6:
		content = m.results.View()
	default:
		content = "Unknown step"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	state := m.store.State()
	title := TitleStyle.Render("Brussels rent calculator")
	step := SubtitleStyle.Render(fmt.Sprintf("step %d/%d · %s",
		state.CurrentStep, domain.TotalSteps,
		navigation.StepSlug(state.CurrentStep)))

	restored := ""
	if m.restored {
		restored = SubtitleStyle.Render("· resumed session")
	}
	return title + step + restored + "\n"
}

func (m Model) renderStatusBar() string {
	var parts []string

	state := m.store.State()
	parts = append(parts, fmt.Sprintf("%d%% complete", session.CompletionPercent(state)))

	if !navigation.CanAdvance(state) && state.CurrentStep < domain.TotalSteps {
		parts = append(parts, BlockedStyle.Render("answer all questions to continue"))
	}

	if m.err != nil {
		parts = append(parts, ErrorStyle.Render(m.err.Error()))
	}

	help := HelpKeyStyle.Render("pgdn") + HelpDescStyle.Render(" next · ") +
		HelpKeyStyle.Render("pgup") + HelpDescStyle.Render(" back · ") +
		HelpKeyStyle.Render("alt+←/→") + HelpDescStyle.Render(" history · ") +
		HelpKeyStyle.Render("ctrl+r") + HelpDescStyle.Render(" reset · ") +
		HelpKeyStyle.Render("ctrl+c") + HelpDescStyle.Render(" quit")
	parts = append(parts, help)

	return "\n" + StatusBarStyle.Render(strings.Join(parts, "  |  "))
}
