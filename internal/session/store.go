package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
)

// DefaultQuotaBytes bounds the snapshot file. A snapshot this form can
// produce is a few KB; the quota exists so a runaway writer degrades to
// no-persistence instead of filling the disk.
const DefaultQuotaBytes = 512 * 1024

var errSnapshotTooLarge = errors.New("snapshot exceeds storage quota")

// FileStore persists the session snapshot as a single JSON file, the way
// the browser kept a single keyed entry. Every operation degrades: a
// store that cannot read or write logs and carries on, it never surfaces
// a failure to the form.
type FileStore struct {
	mu         sync.Mutex
	dir        string
	enabled    bool
	maxAge     time.Duration
	quotaBytes int64
	clock      func() time.Time
	logger     zerolog.Logger
}

// StoreOption configures a FileStore.
type StoreOption func(*FileStore)

// WithMaxAge overrides the 24h snapshot lifetime, for tests.
func WithMaxAge(maxAge time.Duration) StoreOption {
	return func(s *FileStore) { s.maxAge = maxAge }
}

// WithQuota overrides the storage quota in bytes.
func WithQuota(bytes int64) StoreOption {
	return func(s *FileStore) { s.quotaBytes = bytes }
}

// WithStoreClock replaces the wall clock, for tests.
func WithStoreClock(clock func() time.Time) StoreOption {
	return func(s *FileStore) { s.clock = clock }
}

// WithStoreLogger attaches a structured logger.
func WithStoreLogger(logger zerolog.Logger) StoreOption {
	return func(s *FileStore) { s.logger = logger }
}

// NewFileStore creates a snapshot store under dir, creating the directory
// if needed. When the directory cannot be created the store comes up
// disabled: saves and loads become logged no-ops, matching how the form
// behaves when client-side storage is unavailable.
func NewFileStore(dir string, opts ...StoreOption) *FileStore {
	s := &FileStore{
		dir:        dir,
		enabled:    true,
		maxAge:     MaxSessionAge,
		quotaBytes: DefaultQuotaBytes,
		clock:      time.Now,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		s.enabled = false
		s.logger.Warn().Err(err).Str("dir", dir).
			Msg("session storage unavailable, continuing without persistence")
	}
	return s
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, StorageKey+".json")
}

// Save writes the snapshot. Failures are logged and swallowed; the form
// must keep working with in-memory state only.
func (s *FileStore) Save(state domain.FormState) {
	if !s.enabled {
		return
	}

	data, err := EncodeSnapshot(state)
	if err != nil {
		s.logger.Warn().Err(err).Msg("snapshot encode failed, skipping save")
		return
	}
	if int64(len(data)) > s.quotaBytes {
		s.logger.Warn().Err(errSnapshotTooLarge).Int("size", len(data)).
			Msg("snapshot too large, skipping save")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot write failed, continuing without persistence")
	}
}

// Load reads, decodes and age-checks the stored snapshot. It returns nil
// when the snapshot is absent, unparsable, fails shape validation, or is
// older than the maximum session age; expired and corrupt snapshots are
// removed so they are not offered again.
func (s *FileStore) Load() *domain.FormState {
	if !s.enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Msg("snapshot read failed")
		}
		return nil
	}

	state, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding corrupt snapshot")
		s.removeLocked()
		return nil
	}
	if err := form.ValidateSnapshot(state); err != nil {
		s.logger.Warn().Err(err).Msg("discarding malformed snapshot")
		s.removeLocked()
		return nil
	}
	if s.clock().Sub(state.LastUpdated) > s.maxAge {
		s.logger.Info().Str("session_id", state.SessionID).
			Msg("discarding expired snapshot")
		s.removeLocked()
		return nil
	}

	state = form.NormalizeSnapshot(state)
	return &state
}

// Clear removes the stored snapshot. Used on form reset and on an
// explicit "start fresh".
func (s *FileStore) Clear() {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked()
}

func (s *FileStore) removeLocked() {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Msg("snapshot remove failed")
	}
}

// Enabled reports whether the store can persist at all.
func (s *FileStore) Enabled() bool {
	return s.enabled
}
