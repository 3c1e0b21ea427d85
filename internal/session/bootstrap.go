package session

import (
	"time"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
)

// Bootstrap constructs the session's one form store, seeded from the
// persisted snapshot when a valid, unexpired one exists and from a fresh
// initial state otherwise. Seeding happens here, synchronously, before
// the store is handed to anything else: the very first readable state is
// already the restored one. Constructing stores anywhere else and
// restoring afterwards reintroduces the bug where each navigation
// silently discards prior answers.
func Bootstrap(fileStore *FileStore, opts ...form.Option) (*form.Store, bool) {
	if snapshot := fileStore.Load(); snapshot != nil {
		return form.NewStore(*snapshot, opts...), true
	}
	initial := domain.NewFormState(domain.NewSessionID(), time.Now())
	return form.NewStore(initial, opts...), false
}
