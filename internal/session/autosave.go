package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
)

const (
	// DefaultDebounce batches rapid edits into one save.
	DefaultDebounce = time.Second
	// DefaultInterval is the fallback periodic save cadence.
	DefaultInterval = 30 * time.Second
)

// Autosaver snapshots the form store on three triggers: a debounce timer
// after the last state change, a fixed fallback interval, and a
// synchronous Flush on suspend or teardown. A single goroutine owns both
// timers, so saves are serialized and the last write always reflects the
// latest state at call time. Stop is idempotent and guarantees the timers
// are cancelled; a leaked timer would keep saving into a torn-down
// session.
type Autosaver struct {
	formStore *form.Store
	fileStore *FileStore

	debounce time.Duration
	interval time.Duration
	logger   zerolog.Logger

	changes     chan struct{}
	stop        chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	unsubscribe func()
}

// AutosaverOption configures an Autosaver.
type AutosaverOption func(*Autosaver)

// WithDebounce overrides the debounce delay.
func WithDebounce(d time.Duration) AutosaverOption {
	return func(a *Autosaver) { a.debounce = d }
}

// WithInterval overrides the fallback save interval.
func WithInterval(d time.Duration) AutosaverOption {
	return func(a *Autosaver) { a.interval = d }
}

// WithAutosaverLogger attaches a structured logger.
func WithAutosaverLogger(logger zerolog.Logger) AutosaverOption {
	return func(a *Autosaver) { a.logger = logger }
}

// NewAutosaver wires an autosaver between a form store and a file store.
// Call Start to begin saving and Stop (or defer Stop) to tear down.
func NewAutosaver(formStore *form.Store, fileStore *FileStore, opts ...AutosaverOption) *Autosaver {
	a := &Autosaver{
		formStore: formStore,
		fileStore: fileStore,
		debounce:  DefaultDebounce,
		interval:  DefaultInterval,
		logger:    zerolog.Nop(),
		changes:   make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start subscribes to form changes and launches the save loop.
func (a *Autosaver) Start() {
	a.unsubscribe = a.formStore.Subscribe(func(_ domain.FormState) {
		// Coalesce bursts; the loop only needs to know a change happened.
		select {
		case a.changes <- struct{}{}:
		default:
		}
	})
	a.wg.Add(1)
	go a.run()
}

// Flush saves the current state synchronously. Call it on suspend or
// page-hide signals, where asynchronous work is not guaranteed to run to
// completion.
func (a *Autosaver) Flush() {
	a.fileStore.Save(a.formStore.State())
}

// Stop cancels the timers, performs a final synchronous save, and
// releases the subscription. Safe to call multiple times.
func (a *Autosaver) Stop() {
	a.stopOnce.Do(func() {
		close(a.stop)
		a.wg.Wait()
		if a.unsubscribe != nil {
			a.unsubscribe()
		}
		a.Flush()
	})
}

func (a *Autosaver) run() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	// The debounce timer starts stopped; the first change arms it.
	debounce := time.NewTimer(a.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-a.changes:
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(a.debounce)

		case <-debounce.C:
			a.save("debounce")

		case <-ticker.C:
			a.save("interval")

		case <-a.stop:
			return
		}
	}
}

func (a *Autosaver) save(trigger string) {
	state := a.formStore.State()
	a.fileStore.Save(state)
	a.logger.Debug().
		Str("trigger", trigger).
		Str("session_id", state.SessionID).
		Msg("session saved")
}
