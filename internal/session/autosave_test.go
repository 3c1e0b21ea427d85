package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanmarkic/loyer-brussels/internal/form"
)

func newAutosaveFixture(t *testing.T, opts ...AutosaverOption) (*form.Store, *FileStore, *Autosaver) {
	t.Helper()
	fileStore := NewFileStore(t.TempDir())
	formStore := form.NewStore(sampleState())

	opts = append([]AutosaverOption{
		WithDebounce(20 * time.Millisecond),
		WithInterval(time.Hour), // keep the fallback out of the way
	}, opts...)
	saver := NewAutosaver(formStore, fileStore, opts...)
	t.Cleanup(saver.Stop)
	return formStore, fileStore, saver
}

func TestAutosaverSavesAfterDebounce(t *testing.T) {
	formStore, fileStore, saver := newAutosaveFixture(t)
	saver.Start()

	size := 85
	formStore.UpdateProperty(form.UpdatePropertyInfo{Size: &size})

	require.Eventually(t, func() bool {
		loaded := fileStore.Load()
		return loaded != nil && loaded.PropertyInfo.Size == 85
	}, time.Second, 10*time.Millisecond, "debounced save should land")
}

func TestAutosaverDebounceCoalescesBursts(t *testing.T) {
	formStore, fileStore, saver := newAutosaveFixture(t)
	saver.Start()

	// A burst of edits; only the final value matters once the debounce
	// window closes.
	for size := 10; size <= 90; size += 10 {
		s := size
		formStore.UpdateProperty(form.UpdatePropertyInfo{Size: &s})
	}

	require.Eventually(t, func() bool {
		loaded := fileStore.Load()
		return loaded != nil && loaded.PropertyInfo.Size == 90
	}, time.Second, 10*time.Millisecond, "last write wins")
}

func TestAutosaverIntervalFallback(t *testing.T) {
	fileStore := NewFileStore(t.TempDir(), WithStoreClock(fixedClock(now)))
	formStore := form.NewStore(sampleState())
	saver := NewAutosaver(formStore, fileStore,
		WithDebounce(time.Hour), // debounce never fires
		WithInterval(20*time.Millisecond))
	t.Cleanup(saver.Stop)
	saver.Start()

	require.Eventually(t, func() bool {
		return fileStore.Load() != nil
	}, time.Second, 10*time.Millisecond, "interval save is the fallback path")
}

func TestAutosaverFlushIsSynchronous(t *testing.T) {
	formStore, fileStore, saver := newAutosaveFixture(t)
	saver.Start()

	size := 42
	formStore.UpdateProperty(form.UpdatePropertyInfo{Size: &size})

	// No waiting: a page-hide style flush must persist immediately.
	saver.Flush()

	loaded := fileStore.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, 42, loaded.PropertyInfo.Size)
}

func TestAutosaverStopSavesAndIsIdempotent(t *testing.T) {
	formStore, fileStore, saver := newAutosaveFixture(t)
	saver.Start()

	size := 77
	formStore.UpdateProperty(form.UpdatePropertyInfo{Size: &size})

	saver.Stop()
	saver.Stop()

	loaded := fileStore.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, 77, loaded.PropertyInfo.Size, "teardown performs a final save")
}

func TestAutosaverStopCancelsTimers(t *testing.T) {
	formStore, fileStore, saver := newAutosaveFixture(t)
	saver.Start()
	saver.Stop()

	fileStore.Clear()

	// Changes after Stop must not reach storage; a leaked timer saving
	// into a torn-down session is a correctness bug.
	size := 99
	formStore.UpdateProperty(form.UpdatePropertyInfo{Size: &size})
	time.Sleep(60 * time.Millisecond)

	assert.Nil(t, fileStore.Load())
}
