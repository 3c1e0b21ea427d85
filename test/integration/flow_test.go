package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/navigation"
	"github.com/vanmarkic/loyer-brussels/internal/session"
	"github.com/vanmarkic/loyer-brussels/internal/submission"
)

// TestCalculatorFlow walks a full session: a fresh bootstrap, the user
// answering every step, a save, a simulated restart that restores the
// session, then calculation and submission.
func TestCalculatorFlow(t *testing.T) {
	dir := t.TempDir()

	fileStore := session.NewFileStore(dir)
	store, restored := session.Bootstrap(fileStore)
	require.False(t, restored, "nothing persisted yet")
	sessionID := store.State().SessionID
	require.NotEmpty(t, sessionID)

	controller := navigation.NewController(store, "fr")

	// Step 1: dwelling type.
	propertyType := domain.PropertyTypeApartment1
	store.UpdateProperty(form.UpdatePropertyInfo{PropertyType: &propertyType})
	require.True(t, controller.Continue())

	// Step 2: size and condition.
	size := 50
	condition := 2
	store.UpdateProperty(form.UpdatePropertyInfo{Size: &size, PropertyState: &condition})
	require.True(t, controller.Continue())

	// Step 3: every comfort question answered, a mix of yes and no.
	yes, no := domain.Yes, domain.No
	store.UpdateProperty(form.UpdatePropertyInfo{
		CentralHeating:        &yes,
		ThermalRegulation:     &no,
		DoubleGlazing:         &yes,
		SecondBathroom:        &no,
		RecreationalSpaces:    &no,
		StorageSpaces:         &no,
		ConstructedBefore2000: &no,
	})
	require.True(t, controller.Continue())

	// Step 4: energy class.
	energy := domain.EnergyClassD
	store.UpdateProperty(form.UpdatePropertyInfo{EnergyClass: &energy})
	require.True(t, controller.Continue())

	// Step 5: address.
	postal, street, number := "1180", "Avenue Brugmann", "52"
	store.UpdateProperty(form.UpdatePropertyInfo{
		PostalCode:   &postal,
		StreetName:   &street,
		StreetNumber: &number,
	})
	require.True(t, controller.Continue())
	require.Equal(t, domain.TotalSteps, store.State().CurrentStep)

	// Persist and simulate an application restart.
	fileStore.Save(store.State())

	fileStore2 := session.NewFileStore(dir)
	store2, restored := session.Bootstrap(fileStore2)
	require.True(t, restored, "the snapshot survives the restart")
	assert.Equal(t, sessionID, store2.State().SessionID)
	assert.Equal(t, domain.TotalSteps, store2.State().CurrentStep)
	assert.Equal(t, 50, store2.State().PropertyInfo.Size)
	assert.Equal(t, domain.Yes, store2.State().PropertyInfo.CentralHeating)

	controller2 := navigation.NewController(store2, "fr")
	assert.Equal(t, "/fr/calculator/results", controller2.CurrentPath(),
		"the restored step is a direct jump, not a walk from step 1")

	// Calculate on the restored state and merge the result.
	engine := calculation.NewEngine()
	result := engine.ReferenceRent(store2.State())
	require.NotNil(t, result)
	// 16 * 50 * 1.2 + 20 + 15 = 995
	assert.Equal(t, "995", result.MedianRent.String())

	store2.UpdateResults(form.UpdateCalculationResults{
		DifficultyIndex: &result.DifficultyIndex,
		MedianRent:      &result.MedianRent,
		MinRent:         &result.MinimumRent,
		MaxRent:         &result.MaximumRent,
	})

	rent, ok := calculation.ParseRent("€ 1400")
	require.True(t, ok)
	comparison := calculation.CompareRent(rent, *result)
	assert.Equal(t, calculation.StatusAbusive, comparison.Status)

	// Submit.
	email := "tenant@example.be"
	store2.UpdateProfile(form.UpdateUserProfile{Email: &email})

	recordStore := submission.NewMemoryStore()
	svc := submission.NewService(recordStore, nil, zerolog.Nop())
	id, err := svc.Submit(context.Background(), submission.NewRecord(store2.State()))
	require.NoError(t, err)

	stored, ok := recordStore.Get(id)
	require.True(t, ok)
	assert.Equal(t, sessionID, stored.SessionID)
	require.NotNil(t, stored.MedianRent)
	assert.Equal(t, "995", stored.MedianRent.String())
}

// TestAutosaveAcrossRestart exercises the debounced autosaver instead of
// an explicit save, then confirms the snapshot restores.
func TestAutosaveAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	fileStore := session.NewFileStore(dir)
	store, _ := session.Bootstrap(fileStore)

	saver := session.NewAutosaver(store, fileStore,
		session.WithDebounce(10*time.Millisecond),
		session.WithInterval(time.Hour),
	)
	saver.Start()

	propertyType := domain.PropertyTypeStudio
	size := 30
	store.UpdateProperty(form.UpdatePropertyInfo{PropertyType: &propertyType, Size: &size})

	assert.Eventually(t, func() bool {
		return fileStore.Load() != nil
	}, time.Second, 5*time.Millisecond, "debounce fires without an explicit flush")

	saver.Stop()

	store2, restored := session.Bootstrap(session.NewFileStore(dir))
	require.True(t, restored)
	assert.Equal(t, domain.PropertyTypeStudio, store2.State().PropertyInfo.PropertyType)
	assert.Equal(t, 30, store2.State().PropertyInfo.Size)
}

// TestExpiredSessionStartsFresh covers the 24h expiry on restore.
func TestExpiredSessionStartsFresh(t *testing.T) {
	dir := t.TempDir()

	past := time.Now().Add(-25 * time.Hour)
	writeStore := session.NewFileStore(dir, session.WithStoreClock(func() time.Time { return past }))
	stale := domain.NewFormState(domain.NewSessionID(), past)
	stale.CurrentStep = 4
	stale.PropertyInfo.PropertyType = domain.PropertyTypeHouse
	writeStore.Save(stale)

	store, restored := session.Bootstrap(session.NewFileStore(dir))
	require.False(t, restored, "a 25 hour old snapshot is expired")
	assert.Equal(t, 1, store.State().CurrentStep)
	assert.NotEqual(t, stale.SessionID, store.State().SessionID)
}

// TestResetClearsStateAndSnapshot covers the full reset path the TUI
// binds to ctrl+r: reducer reset plus snapshot removal.
func TestResetClearsStateAndSnapshot(t *testing.T) {
	dir := t.TempDir()

	fileStore := session.NewFileStore(dir)
	store, _ := session.Bootstrap(fileStore)
	controller := navigation.NewController(store, "fr")
	oldID := store.State().SessionID

	propertyType := domain.PropertyTypeHouse
	store.UpdateProperty(form.UpdatePropertyInfo{PropertyType: &propertyType})
	fileStore.Save(store.State())

	controller.Reset()
	fileStore.Clear()

	assert.Equal(t, domain.PropertyTypeUnset, store.State().PropertyInfo.PropertyType)
	assert.NotEqual(t, oldID, store.State().SessionID, "a cleared session is not resumable")

	_, restored := session.Bootstrap(session.NewFileStore(dir))
	assert.False(t, restored, "the snapshot is gone")
}
