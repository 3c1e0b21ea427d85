package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

func newTestStore() *Store {
	return NewStore(testState(), WithClock(func() time.Time { return t1 }))
}

func TestStoreDispatchAndRead(t *testing.T) {
	store := newTestStore()

	size := 72
	store.UpdateProperty(UpdatePropertyInfo{Size: &size})

	state := store.State()
	assert.Equal(t, 72, state.PropertyInfo.Size)
	assert.Equal(t, t1, state.LastUpdated)
}

func TestStoreSeededStateIsFirstReadableState(t *testing.T) {
	snapshot := testState()
	snapshot.CurrentStep = 3
	snapshot.PropertyInfo.Size = 64

	store := NewStore(snapshot)

	// No dispatch has happened yet; the very first read must already be
	// the seeded snapshot, not hardcoded defaults.
	assert.Equal(t, snapshot, store.State())
}

func TestStoreSubscribersSeeEveryDispatch(t *testing.T) {
	store := newTestStore()

	var seen []int
	unsubscribe := store.Subscribe(func(s domain.FormState) {
		seen = append(seen, s.CurrentStep)
	})

	store.SetCurrentStep(2)
	store.AdvanceStep()
	store.RetreatStep()

	require.Equal(t, []int{2, 3, 2}, seen)

	unsubscribe()
	store.SetCurrentStep(5)
	assert.Len(t, seen, 3, "no notifications after unsubscribe")

	// Unsubscribe twice is harmless.
	unsubscribe()
}

func TestStoreStepSetterExists(t *testing.T) {
	// Navigation must always be able to advance the step in state; the
	// setter being missing turns "continue" into a silent no-op.
	store := newTestStore()
	store.SetCurrentStep(4)
	assert.Equal(t, 4, store.State().CurrentStep)
}

func TestStoreResetRegeneratesSessionID(t *testing.T) {
	store := newTestStore()
	before := store.State().SessionID

	store.Reset()

	after := store.State().SessionID
	assert.NotEmpty(t, after)
	assert.NotEqual(t, before, after)
}

func TestStoreRestoreFallsBackOnInvalidSnapshot(t *testing.T) {
	store := newTestStore()

	bad := testState()
	bad.SessionID = ""
	store.Restore(bad)

	state := store.State()
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, 1, state.CurrentStep)
}
