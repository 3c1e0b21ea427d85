package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/lookup"
	"github.com/vanmarkic/loyer-brussels/internal/navigation"
	"github.com/vanmarkic/loyer-brussels/internal/session"
	"github.com/vanmarkic/loyer-brussels/internal/submission"
	"github.com/vanmarkic/loyer-brussels/internal/tui/scenes"
)

// Model is the root application state: the one form store, the
// navigation controller and autosaver that share its lifetime, and one
// scene model per step. Scene models hold the store by reference and
// dispatch through it; state never lives in a scene.
type Model struct {
	store      *form.Store
	controller *navigation.Controller
	fileStore  *session.FileStore
	saver      *session.Autosaver
	engine     *calculation.Engine
	service    *submission.Service

	propertyType *scenes.PropertyTypeModel
	details      *scenes.DetailsModel
	features     *scenes.FeaturesModel
	energy       *scenes.EnergyModel
	address      *scenes.AddressModel
	results      *scenes.ResultsModel

	width  int
	height int

	restored bool
	err      error
}

// Deps are the collaborators the TUI needs; they are constructed once at
// bootstrap and injected, so the TUI never creates a second store.
type Deps struct {
	Store      *form.Store
	Controller *navigation.Controller
	FileStore  *session.FileStore
	Saver      *session.Autosaver
	Engine     *calculation.Engine
	Resolver   lookup.Resolver
	Service    *submission.Service
	Restored   bool
}

// NewModel assembles the root model and its step scenes.
func NewModel(deps Deps) Model {
	return Model{
		store:      deps.Store,
		controller: deps.Controller,
		fileStore:  deps.FileStore,
		saver:      deps.Saver,
		engine:     deps.Engine,
		service:    deps.Service,
		restored:   deps.Restored,

		propertyType: scenes.NewPropertyTypeModel(deps.Store),
		details:      scenes.NewDetailsModel(deps.Store),
		features:     scenes.NewFeaturesModel(deps.Store),
		energy:       scenes.NewEnergyModel(deps.Store),
		address:      scenes.NewAddressModel(deps.Store, deps.Resolver),
		results:      scenes.NewResultsModel(deps.Store),

		width:  80,
		height: 24,
	}
}

// Init starts the autosaver alongside the program.
func (m Model) Init() tea.Cmd {
	m.saver.Start()
	return nil
}

// calculateCmd runs the pure calculation off the update loop and reports
// back; a nil result means "not yet calculable".
func (m Model) calculateCmd() tea.Cmd {
	engine := m.engine
	state := m.store.State()
	return func() tea.Msg {
		return CalculationCompleteMsg{Result: engine.ReferenceRent(state)}
	}
}

// submitCmd flattens state into a record and submits it.
func (m Model) submitCmd() tea.Cmd {
	service := m.service
	record := submission.NewRecord(m.store.State())
	return func() tea.Msg {
		id, err := service.Submit(context.Background(), record)
		if err != nil {
			return SubmitFailedMsg{Err: err}
		}
		return SubmittedMsg{ID: id}
	}
}
