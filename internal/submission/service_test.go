package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

func validRecord() Record {
	return Record{
		SessionID:    "01SUB00000000000000000000",
		Email:        "tenant@example.be",
		PropertyType: "apartment-1",
		PostalCode:   "1050",
		Size:         50,
	}
}

type stubNotifier struct {
	err    error
	called int
	lastID string
}

func (n *stubNotifier) Notify(_ context.Context, id string, _ Record) error {
	n.called++
	n.lastID = id
	return n.err
}

type failingStore struct{ err error }

func (s failingStore) Insert(context.Context, Record) (string, error) {
	return "", s.err
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	store := NewMemoryStore()
	notifier := &stubNotifier{}
	svc := NewService(store, notifier, zerolog.Nop())

	id, err := svc.Submit(context.Background(), validRecord())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, "tenant@example.be", stored.Email)
	assert.Equal(t, 1, notifier.called)
	assert.Equal(t, id, notifier.lastID)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing email", func(r *Record) { r.Email = "" }},
		{"malformed email", func(r *Record) { r.Email = "not-an-email" }},
		{"email with spaces", func(r *Record) { r.Email = "a b@example.be" }},
		{"missing postal code", func(r *Record) { r.PostalCode = "" }},
		{"missing property type", func(r *Record) { r.PropertyType = "" }},
	}

	store := NewMemoryStore()
	svc := NewService(store, nil, zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			_, err := svc.Submit(context.Background(), record)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
	assert.Zero(t, store.Len(), "invalid records never reach the store")
}

func TestSubmitNotifierFailureDoesNotFailSubmission(t *testing.T) {
	store := NewMemoryStore()
	notifier := &stubNotifier{err: errors.New("smtp down")}
	svc := NewService(store, notifier, zerolog.Nop())

	id, err := svc.Submit(context.Background(), validRecord())
	require.NoError(t, err, "notification is best-effort")
	_, ok := store.Get(id)
	assert.True(t, ok)
}

func TestSubmitStoreFailurePropagates(t *testing.T) {
	storeErr := &Error{Code: CodeDatabaseError, Message: "insert failed"}
	notifier := &stubNotifier{}
	svc := NewService(failingStore{err: storeErr}, notifier, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validRecord())
	require.Error(t, err)

	var subErr *Error
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, CodeDatabaseError, subErr.Code)
	assert.Zero(t, notifier.called, "no notification for a record that was not stored")
}

func TestSubmitNilNotifier(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, zerolog.Nop())
	_, err := svc.Submit(context.Background(), validRecord())
	assert.NoError(t, err)
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("disk full")
	err := &Error{Code: CodeSystemError, Message: "cannot write", Err: cause}

	assert.Equal(t, "SYSTEM_ERROR: cannot write: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &Error{Code: CodeDatabaseError, Message: "insert failed"}
	assert.Equal(t, "DATABASE_ERROR: insert failed", bare.Error())
}

func TestNewRecordFlattensDeterministically(t *testing.T) {
	state := domain.NewFormState("01SUB00000000000000000000", time.Now())
	state.PropertyInfo.PropertyType = domain.PropertyTypeApartment2
	state.PropertyInfo.Size = 85
	state.PropertyInfo.PostalCode = "1000"
	state.UserProfile.Email = "tenant@example.be"
	state.RentalInfo.ActualRent = "950,50"
	state.PropertyIssues.HealthIssues = []string{"humidity", "mold"}
	state.PropertyIssues.MajorDefects = []string{"broken heating"}

	first := NewRecord(state)
	second := NewRecord(state)
	assert.Equal(t, first, second)

	assert.Equal(t, "apartment-2", first.PropertyType)
	assert.Equal(t, "humidity;mold", first.HealthIssues)
	assert.Equal(t, "broken heating", first.MajorDefects)
	assert.Equal(t, "950,50", first.ActualRent)
	assert.Nil(t, first.MedianRent, "no calculation yet means no rent columns")
}
