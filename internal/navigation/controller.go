package navigation

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vanmarkic/loyer-brussels/internal/form"
)

// historyEntry is one pushed navigation state. Each forward push carries
// the target step, so walking back through history always knows which
// step the entry showed without reparsing anything.
type historyEntry struct {
	Step int
	Path string
}

// Controller mediates all step movement so the current step in form
// state, the current path, and the history stack can never disagree:
// they are three views of one state machine with this one transition
// function. Browser-style Back and Forward reconcile state to the entry
// they land on instead of fighting it.
type Controller struct {
	store  *form.Store
	locale string
	logger zerolog.Logger

	mu      sync.Mutex
	history []historyEntry
	index   int
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithControllerLogger attaches a structured logger.
func WithControllerLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a controller over the session's form store. The
// history stack is seeded with the store's current step, which is the
// restored step when the store was bootstrapped from a snapshot — a
// direct jump validated against the route table.
func NewController(store *form.Store, locale string, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		locale: locale,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	step := store.State().CurrentStep
	path, ok := StepURL(step, locale)
	if !ok {
		step = 1
		path, _ = StepURL(1, locale)
	}
	c.history = []historyEntry{{Step: step, Path: path}}
	c.index = 0
	return c
}

// CurrentPath returns the path of the active history entry.
func (c *Controller) CurrentPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history[c.index].Path
}

// CurrentStep returns the step of the active history entry.
func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history[c.index].Step
}

// NavigateToStep pushes a new history entry for the step and advances the
// form state to match, as one operation. Out-of-range steps are a no-op:
// no route change, no dispatch. Navigating without also updating the
// step in state is the defect class this method exists to close.
func (c *Controller) NavigateToStep(step int) bool {
	path, ok := StepURL(step, c.locale)
	if !ok {
		c.logger.Warn().Int("step", step).Msg("refusing navigation to out-of-range step")
		return false
	}

	c.mu.Lock()
	// A push discards any forward entries, like a browser does.
	c.history = append(c.history[:c.index+1], historyEntry{Step: step, Path: path})
	c.index = len(c.history) - 1
	c.mu.Unlock()

	c.store.SetCurrentStep(step)
	c.logger.Debug().Int("step", step).Str("path", path).Msg("navigated")
	return true
}

// Continue advances to the next step if the current step's required
// fields are valid. Validity is computed from live state at call time.
func (c *Controller) Continue() bool {
	state := c.store.State()
	if !CanAdvance(state) {
		c.logger.Debug().Int("step", state.CurrentStep).Msg("continue blocked by incomplete step")
		return false
	}
	return c.NavigateToStep(state.CurrentStep + 1)
}

// Previous retreats one step. It is unguarded; at step 1 it is a no-op
// because step 0 is out of range.
func (c *Controller) Previous() bool {
	return c.NavigateToStep(c.store.State().CurrentStep - 1)
}

// Back walks one entry back through history, popstate style: it adopts
// the step the landed-on entry carries rather than recomputing anything.
// Data is untouched, so the user sees exactly the step and answers they
// had. Returns false at the oldest entry.
func (c *Controller) Back() bool {
	c.mu.Lock()
	if c.index == 0 {
		c.mu.Unlock()
		return false
	}
	c.index--
	entry := c.history[c.index]
	c.mu.Unlock()

	c.store.SetCurrentStep(entry.Step)
	c.logger.Debug().Int("step", entry.Step).Msg("history back")
	return true
}

// Forward walks one entry forward through history. Returns false at the
// newest entry.
func (c *Controller) Forward() bool {
	c.mu.Lock()
	if c.index >= len(c.history)-1 {
		c.mu.Unlock()
		return false
	}
	c.index++
	entry := c.history[c.index]
	c.mu.Unlock()

	c.store.SetCurrentStep(entry.Step)
	c.logger.Debug().Int("step", entry.Step).Msg("history forward")
	return true
}

// Reset returns to step 1 with a cleared form and a collapsed history
// stack. The caller clears the persisted snapshot alongside.
func (c *Controller) Reset() {
	c.store.Reset()

	path, _ := StepURL(1, c.locale)
	c.mu.Lock()
	c.history = []historyEntry{{Step: 1, Path: path}}
	c.index = 0
	c.mu.Unlock()
}
