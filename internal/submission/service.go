package submission

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Machine-readable failure codes surfaced to callers alongside messages.
const (
	CodeDatabaseError = "DATABASE_ERROR"
	CodeSystemError   = "SYSTEM_ERROR"
)

// Error is a structured submission failure.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrInvalidRecord rejects records that fail pre-submission validation.
var ErrInvalidRecord = errors.New("invalid submission record")

// Store persists submission records durably and returns the generated
// identifier. Implementations translate their own failures into *Error
// with a DATABASE_ERROR or SYSTEM_ERROR code.
type Store interface {
	Insert(ctx context.Context, record Record) (id string, err error)
}

// Notifier sends a best-effort notification about a stored submission.
// Failures are logged and never propagate: a record counts as submitted
// even when its notification could not be sent.
type Notifier interface {
	Notify(ctx context.Context, id string, record Record) error
}

// Service validates, stores and announces submissions.
type Service struct {
	store    Store
	notifier Notifier
	logger   zerolog.Logger
}

// NewService wires a submission service. notifier may be nil.
func NewService(store Store, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{store: store, notifier: notifier, logger: logger}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the record before any collaborator is touched. These
// are user-facing validation errors, surfaced inline, never thrown
// across the core.
func Validate(record Record) error {
	if record.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRecord)
	}
	if !emailPattern.MatchString(record.Email) {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidRecord, record.Email)
	}
	if record.PostalCode == "" {
		return fmt.Errorf("%w: postal code is required", ErrInvalidRecord)
	}
	if record.PropertyType == "" {
		return fmt.Errorf("%w: property type is required", ErrInvalidRecord)
	}
	return nil
}

// Submit validates and stores the record, then notifies best-effort.
func (s *Service) Submit(ctx context.Context, record Record) (string, error) {
	if err := Validate(record); err != nil {
		return "", err
	}

	id, err := s.store.Insert(ctx, record)
	if err != nil {
		return "", err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, id, record); err != nil {
			s.logger.Warn().Err(err).Str("submission_id", id).
				Msg("notification failed, submission kept")
		}
	}

	s.logger.Info().Str("submission_id", id).Str("session_id", record.SessionID).
		Msg("submission stored")
	return id, nil
}

// MemoryStore is the in-process record store used by the CLI and tests.
type MemoryStore struct {
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Insert assigns a ULID and keeps the record in memory.
func (m *MemoryStore) Insert(_ context.Context, record Record) (string, error) {
	if m.records == nil {
		return "", &Error{Code: CodeSystemError, Message: "store not initialized"}
	}
	id := ulid.Make().String()
	m.records[id] = record
	return id, nil
}

// Get returns a stored record by id.
func (m *MemoryStore) Get(id string) (Record, bool) {
	record, ok := m.records[id]
	return record, ok
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int { return len(m.records) }
