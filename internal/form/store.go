package form

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// Store is the single long-lived owner of a session's FormState. It is
// constructed exactly once per session, at bootstrap, and outlives every
// step view; step views hold a reference and dispatch through it, never a
// private copy. Dispatches are serialized by a mutex so subscribers
// always observe a consistent sequence of states.
type Store struct {
	mu    sync.RWMutex
	state domain.FormState

	clock  func() time.Time
	logger zerolog.Logger

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(domain.FormState)
}

// Option configures a Store at construction.
type Option func(*Store)

// WithClock replaces the wall clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithLogger attaches a structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates a store seeded with the given state. Callers that can
// restore a session must seed from the decoded snapshot here, at
// construction, never dispatch a restore after handing the store out:
// the first readable state must already be the restored one.
func NewStore(initial domain.FormState, opts ...Option) *Store {
	s := &Store{
		state:  initial,
		clock:  time.Now,
		logger: zerolog.Nop(),
		subs:   make(map[int]func(domain.FormState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current form state.
func (s *Store) State() domain.FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs an action through the reducer and notifies subscribers.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action, s.clock())
	next := s.state
	s.mu.Unlock()

	s.logger.Debug().
		Str("session_id", next.SessionID).
		Int("step", next.CurrentStep).
		Type("action", action).
		Msg("action dispatched")

	s.notify(next)
}

// Subscribe registers a listener called after every dispatch with the new
// state. The returned function removes the listener; it is safe to call
// more than once.
func (s *Store) Subscribe(fn func(domain.FormState)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(state domain.FormState) {
	s.subMu.Lock()
	listeners := make([]func(domain.FormState), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// Convenience setters. Every context that exposes navigation must also
// expose the step setter; a missing step setter turns "continue" into a
// silent no-op, which is exactly the defect these wrappers exist to
// prevent.

// SetCurrentStep jumps to an explicit step.
func (s *Store) SetCurrentStep(step int) {
	s.Dispatch(SetCurrentStep{Step: step})
}

// AdvanceStep moves forward one step.
func (s *Store) AdvanceStep() {
	s.Dispatch(NextStep{})
}

// RetreatStep moves back one step.
func (s *Store) RetreatStep() {
	s.Dispatch(PrevStep{})
}

// UpdateProperty merges a property-info partial.
func (s *Store) UpdateProperty(partial UpdatePropertyInfo) {
	s.Dispatch(partial)
}

// UpdateRental merges a rental-info partial.
func (s *Store) UpdateRental(partial UpdateRentalInfo) {
	s.Dispatch(partial)
}

// UpdateHousehold merges a household-info partial.
func (s *Store) UpdateHousehold(partial UpdateHouseholdInfo) {
	s.Dispatch(partial)
}

// UpdateIssues merges a property-issues partial.
func (s *Store) UpdateIssues(partial UpdatePropertyIssues) {
	s.Dispatch(partial)
}

// UpdateProfile merges a user-profile partial.
func (s *Store) UpdateProfile(partial UpdateUserProfile) {
	s.Dispatch(partial)
}

// UpdateResults merges a calculation-results partial.
func (s *Store) UpdateResults(partial UpdateCalculationResults) {
	s.Dispatch(partial)
}

// Reset clears the form and regenerates the session id, so the cleared
// session cannot be resumed through its old snapshot.
func (s *Store) Reset() {
	s.Dispatch(ResetForm{NewSessionID: domain.NewSessionID()})
}

// Restore replaces the state with a persisted snapshot, falling back to a
// fresh session when the snapshot fails validation.
func (s *Store) Restore(snapshot domain.FormState) {
	s.Dispatch(RestoreSession{
		Snapshot:          snapshot,
		FallbackSessionID: domain.NewSessionID(),
	})
}
